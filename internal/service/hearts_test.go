package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/client"
	"github.com/alipala/mytacoai-mobile/internal/config"
	"github.com/alipala/mytacoai-mobile/internal/models"
	mock_service "github.com/alipala/mytacoai-mobile/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testHeartsConfig = config.HeartsConfig{
	RequestTimeout:   time.Second,
	UndoTimeout:      time.Second,
	AnalyticsTimeout: time.Second,
}

func newHeartMock(ctrl *gomock.Controller, setupMock func(*mock_service.MockAPII)) *HeartS {
	api := mock_service.NewMockAPII(ctrl)
	if setupMock != nil {
		setupMock(api)
	}
	return NewHeartService(api, testHeartsConfig, zap.NewNop())
}

func TestHeartS_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockAPII)
		want    models.HeartPool
		wantErr error
	}{
		{
			name: "success",
			f: func(api *mock_service.MockAPII) {
				api.EXPECT().HeartStatus(gomock.Any(), "grammar").Return(models.HeartPool{MaxHearts: 5, CurrentHearts: 3}, nil)
			},
			want: models.HeartPool{MaxHearts: 5, CurrentHearts: 3},
		},
		{
			name: "unauthenticated",
			f: func(api *mock_service.MockAPII) {
				api.EXPECT().HeartStatus(gomock.Any(), "grammar").Return(models.HeartPool{}, &client.APIError{StatusCode: 401, Kind: client.ErrUnauthenticated})
			},
			wantErr: client.ErrUnauthenticated,
		},
		{
			name: "server unreachable",
			f: func(api *mock_service.MockAPII) {
				api.EXPECT().HeartStatus(gomock.Any(), "grammar").Return(models.HeartPool{}, client.ErrUnreachable)
			},
			wantErr: client.ErrUnreachable,
		},
		{
			name: "call carries its own deadline",
			f: func(api *mock_service.MockAPII) {
				api.EXPECT().HeartStatus(gomock.Any(), "grammar").
					DoAndReturn(func(ctx context.Context, _ string) (models.HeartPool, error) {
						deadline, ok := ctx.Deadline()
						assert.True(t, ok)
						assert.WithinDuration(t, time.Now().Add(testHeartsConfig.RequestTimeout), deadline, 100*time.Millisecond)
						return models.HeartPool{IsUnlimited: true}, nil
					})
			},
			want: models.HeartPool{IsUnlimited: true},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := newHeartMock(ctrl, tt.f)

			got, err := h.Status(context.Background(), "grammar")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeartS_Consume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		isCorrect bool
		f         func(*mock_service.MockAPII)
		want      models.ConsumeResponse
		wantErr   bool
	}{
		{
			name:      "wrong answer spends a heart",
			isCorrect: false,
			f: func(api *mock_service.MockAPII) {
				api.EXPECT().ConsumeHeart(gomock.Any(), "grammar", false, "s1", "c1").
					Return(models.ConsumeResponse{HeartsRemaining: 2}, nil)
			},
			want: models.ConsumeResponse{HeartsRemaining: 2},
		},
		{
			name:      "shield absorbs",
			isCorrect: false,
			f: func(api *mock_service.MockAPII) {
				api.EXPECT().ConsumeHeart(gomock.Any(), "grammar", false, "s1", "c1").
					Return(models.ConsumeResponse{HeartsRemaining: 3, ShieldUsed: true}, nil)
			},
			want: models.ConsumeResponse{HeartsRemaining: 3, ShieldUsed: true},
		},
		{
			name:      "rejected",
			isCorrect: true,
			f: func(api *mock_service.MockAPII) {
				api.EXPECT().ConsumeHeart(gomock.Any(), "grammar", true, "s1", "c1").
					Return(models.ConsumeResponse{}, &client.APIError{StatusCode: 422, Kind: client.ErrServerRejected})
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

			h := newHeartMock(ctrl, tt.f)

			got, err := h.Consume(context.Background(), "grammar", tt.isCorrect, "s1", "c1")
			if tt.wantErr {
				assert.ErrorIs(t, err, client.ErrServerRejected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeartS_Undo(t *testing.T) {
	t.Parallel()

	t.Run("concurrent calls share one request and replay", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		release := make(chan struct{})
		h := newHeartMock(ctrl, func(api *mock_service.MockAPII) {
			api.EXPECT().UndoHeart(gomock.Any(), "grammar", "c1").
				DoAndReturn(func(_ context.Context, _, _ string) (models.UndoResult, error) {
					<-release
					return models.UndoResult{Success: true, HeartsRestored: 1}, nil
				}).Times(1)
		})

		var wg sync.WaitGroup
		results := make([]models.UndoResult, 4)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				res, err := h.Undo(context.Background(), "grammar", "c1")
				assert.NoError(t, err)
				results[i] = res
			}(i)
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		for _, res := range results {
			assert.True(t, res.Success)
			assert.Equal(t, 1, res.HeartsRestored)
		}

		res, err := h.Undo(context.Background(), "grammar", "c1")
		require.NoError(t, err)
		assert.True(t, res.Success)
	})

	t.Run("unsuccessful result is not replayed", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := newHeartMock(ctrl, func(api *mock_service.MockAPII) {
			gomock.InOrder(
				api.EXPECT().UndoHeart(gomock.Any(), "grammar", "c2").Return(models.UndoResult{Success: false}, nil),
				api.EXPECT().UndoHeart(gomock.Any(), "grammar", "c2").Return(models.UndoResult{Success: true, HeartsRestored: 1}, nil),
			)
		})

		res, err := h.Undo(context.Background(), "grammar", "c2")
		require.NoError(t, err)
		assert.False(t, res.Success)

		res, err = h.Undo(context.Background(), "grammar", "c2")
		require.NoError(t, err)
		assert.True(t, res.Success)
	})

	t.Run("bounded by undo timeout", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		api := mock_service.NewMockAPII(ctrl)
		api.EXPECT().UndoHeart(gomock.Any(), "grammar", "c3").
			DoAndReturn(func(ctx context.Context, _, _ string) (models.UndoResult, error) {
				<-ctx.Done()
				return models.UndoResult{}, client.ErrTimeout
			})
		h := NewHeartService(api, config.HeartsConfig{RequestTimeout: time.Second, UndoTimeout: 10 * time.Millisecond, AnalyticsTimeout: time.Second}, zap.NewNop())

		_, err := h.Undo(context.Background(), "grammar", "c3")
		assert.ErrorIs(t, err, client.ErrTimeout)
	})
}

func TestHeartS_Analytics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHeartMock(ctrl, func(api *mock_service.MockAPII) {
		api.EXPECT().LogSessionEnded(gomock.Any(), models.SessionEndedEvent{SessionID: "s1", Reason: "user_quit"}).
			Return(errors.New("analytics down"))
		api.EXPECT().LogModal(gomock.Any(), models.ModalEvent{Modal: "out_of_hearts", Action: "dismissed"}).
			DoAndReturn(func(context.Context, models.ModalEvent) error {
				panic("boom")
			})
	})

	h.LogSessionEndedEarly(models.SessionEndedEvent{SessionID: "s1", Reason: "user_quit"})
	h.LogModalInteraction(models.ModalEvent{Modal: "out_of_hearts", Action: "dismissed"})

	assert.True(t, h.Wait(time.Second))
}
