package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/config"
	"github.com/alipala/mytacoai-mobile/internal/models"
	"github.com/alipala/mytacoai-mobile/internal/storage/cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// HeartS fronts the remote lives service. Status and Consume errors propagate;
// analytics calls run detached and their failures are only logged.
type HeartS struct {
	api              HeartsAPII
	requestTimeout   time.Duration
	undoTimeout      time.Duration
	analyticsTimeout time.Duration

	undoGroup singleflight.Group
	undone    *cache.Cache[string, models.UndoResult]
	tasks     sync.WaitGroup

	log *zap.Logger
}

func NewHeartService(api HeartsAPII, cfg config.HeartsConfig, log *zap.Logger) *HeartS {
	return &HeartS{
		api:              api,
		requestTimeout:   cfg.RequestTimeout,
		undoTimeout:      cfg.UndoTimeout,
		analyticsTimeout: cfg.AnalyticsTimeout,
		undone:           cache.NewCache[string, models.UndoResult](),
		log:              log,
	}
}

func (h *HeartS) Status(ctx context.Context, challengeType string) (models.HeartPool, error) {
	ctx, cancel := h.withRequestTimeout(ctx)
	defer cancel()

	pool, err := h.api.HeartStatus(ctx, challengeType)
	if err != nil {
		return models.HeartPool{}, fmt.Errorf("failed to get heart status for %s: %w", challengeType, err)
	}
	return pool, nil
}

// Consume reports one answered challenge. The server decides whether a heart
// was actually spent.
func (h *HeartS) Consume(ctx context.Context, challengeType string, isCorrect bool, sessionID, challengeID string) (models.ConsumeResponse, error) {
	ctx, cancel := h.withRequestTimeout(ctx)
	defer cancel()

	resp, err := h.api.ConsumeHeart(ctx, challengeType, isCorrect, sessionID, challengeID)
	if err != nil {
		return models.ConsumeResponse{}, fmt.Errorf("failed to consume heart: %w", err)
	}

	if resp.ShieldUsed {
		h.log.Info("shield absorbed wrong answer",
			zap.String("session_id", sessionID),
			zap.String("challenge_id", challengeID))
	}
	return resp, nil
}

// Undo asks the server to refund the heart spent on challengeID. Concurrent
// calls for the same challenge share one request and a successful result is
// replayed for later calls.
func (h *HeartS) Undo(ctx context.Context, challengeType, challengeID string) (models.UndoResult, error) {
	key := challengeType + "/" + challengeID
	if res, ok := h.undone.Get(key); ok {
		return res, nil
	}

	v, err, _ := h.undoGroup.Do(key, func() (interface{}, error) {
		if res, ok := h.undone.Get(key); ok {
			return res, nil
		}

		undoCtx, cancel := context.WithTimeout(ctx, h.undoTimeout)
		defer cancel()

		res, err := h.api.UndoHeart(undoCtx, challengeType, challengeID)
		if err != nil {
			return models.UndoResult{}, err
		}
		if res.Success {
			h.undone.Set(key, res)
		}
		return res, nil
	})
	if err != nil {
		return models.UndoResult{}, fmt.Errorf("failed to undo heart: %w", err)
	}
	return v.(models.UndoResult), nil
}

func (h *HeartS) withRequestTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.requestTimeout)
}

func (h *HeartS) LogSessionEndedEarly(event models.SessionEndedEvent) {
	h.detach("session_ended", func(ctx context.Context) error {
		return h.api.LogSessionEnded(ctx, event)
	})
}

func (h *HeartS) LogModalInteraction(event models.ModalEvent) {
	h.detach("modal", func(ctx context.Context) error {
		return h.api.LogModal(ctx, event)
	})
}

// Wait blocks until detached calls finish or timeout passes. It reports
// whether everything finished.
func (h *HeartS) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		h.tasks.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (h *HeartS) detach(event string, call func(ctx context.Context) error) {
	h.tasks.Add(1)
	go func() {
		defer h.tasks.Done()
		defer func() {
			if r := recover(); r != nil {
				h.log.Warn("analytics call panicked", zap.String("event", event), zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), h.analyticsTimeout)
		defer cancel()

		if err := call(ctx); err != nil {
			h.log.Warn("analytics call failed", zap.String("event", event), zap.Error(err))
		}
	}()
}
