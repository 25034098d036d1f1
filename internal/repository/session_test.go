package repository

import (
	"context"
	"database/sql"
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

func newSessionMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *SessionR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return NewSessionRepository(&kvStore{db: db}, "active_challenge_session")
}

func TestSessionR_SaveSession(t *testing.T) {
	t.Parallel()

	session := models.ChallengeSession{ID: "s1", UserID: "u1", CurrentCombo: 3}

	tests := []struct {
		name    string
		userID  string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name:   "success: fixed key",
			userID: "",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "active_challenge_session", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, args ...any) (sql.Result, error) {
						var got models.ChallengeSession
						require.NoError(t, json.Unmarshal([]byte(args[1].(string)), &got))
						assert.Equal(t, "s1", got.ID)
						assert.Equal(t, 3, got.CurrentCombo)
						return nil, nil
					})
			},
		},
		{
			name:   "success: per-user key",
			userID: "42",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "active_challenge_session:42", gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
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

			repo := newSessionMock(t, ctrl, tt.f)

			err := repo.SaveSession(context.Background(), tt.userID, session)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSessionR_LoadSession(t *testing.T) {
	t.Parallel()

	completed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	stored, err := json.Marshal(models.ChallengeSession{ID: "s1", CompletedAt: &completed})
	require.NoError(t, err)

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantOK  bool
		wantErr bool
	}{
		{
			name: "success: dates parsed back",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "active_challenge_session").
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*string) = string(stored)
						return nil
					})
			},
			wantOK: true,
		},
		{
			name: "no stored session",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantOK: false,
		},
		{
			name: "corrupt record",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*string) = "{not json"
						return nil
					})
			},
			wantErr: true,
		},
		{
			name: "database error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("locked"))
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

			repo := newSessionMock(t, ctrl, tt.f)

			got, ok, err := repo.LoadSession(context.Background(), "")
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "s1", got.ID)
				require.NotNil(t, got.CompletedAt)
				assert.True(t, completed.Equal(*got.CompletedAt))
			}
		})
	}
}

func TestSessionR_DeleteSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newSessionMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "active_challenge_session:7").Return(nil, nil)
	})

	assert.NoError(t, repo.DeleteSession(context.Background(), "7"))
}
