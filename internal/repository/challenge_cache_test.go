package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/models"
	mock_repository "github.com/alipala/mytacoai-mobile/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChallengeCacheMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *ChallengeCacheR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return NewChallengeCacheRepository(&kvStore{db: db})
}

func TestChallengeCacheR_SetChallengeCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newChallengeCacheMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "challenge_cache:beginner", gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	err := repo.SetChallengeCache(context.Background(), models.ChallengeCacheEntry{
		Level:      "Beginner",
		Challenges: []models.Challenge{{ID: "c1"}},
		CachedAt:   time.Now(),
	})
	assert.NoError(t, err)
}

func TestChallengeCacheR_ChallengeCache(t *testing.T) {
	t.Parallel()

	cachedAt := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	stored, err := json.Marshal(models.ChallengeCacheEntry{
		Level:      "beginner",
		Challenges: []models.Challenge{{ID: "c1"}, {ID: "c2"}},
		CachedAt:   cachedAt,
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newChallengeCacheMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "challenge_cache:beginner").
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*string) = string(stored)
				return nil
			})
	})

	entry, ok, err := repo.ChallengeCache(context.Background(), "beginner")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, entry.Challenges, 2)
	assert.True(t, cachedAt.Equal(entry.CachedAt))
}

func TestChallengeCacheR_CachedLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []string
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), `challenge\_cache:%`).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*[]string) = []string{"challenge_cache:advanced", "challenge_cache:beginner"}
						return nil
					})
			},
			want: []string{"advanced", "beginner"},
		},
		{
			name: "database error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("boom"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newChallengeCacheMock(t, ctrl, tt.f)

			got, err := repo.CachedLevels(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
