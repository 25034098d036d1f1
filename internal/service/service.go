package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/config"
	"github.com/alipala/mytacoai-mobile/internal/models"
	"go.uber.org/zap"
)

type HeartsAPII interface {
	HeartStatus(ctx context.Context, challengeType string) (models.HeartPool, error)
	ConsumeHeart(ctx context.Context, challengeType string, isCorrect bool, sessionID, challengeID string) (models.ConsumeResponse, error)
	UndoHeart(ctx context.Context, challengeType, challengeID string) (models.UndoResult, error)
	LogSessionEnded(ctx context.Context, event models.SessionEndedEvent) error
	LogModal(ctx context.Context, event models.ModalEvent) error
}

type ChallengesAPII interface {
	DailyChallenges(ctx context.Context, level, language string, limit int) ([]models.Challenge, error)
	ChallengesByType(ctx context.Context, challengeType, level, language string, limit int) ([]models.Challenge, error)
	ChallengeCounts(ctx context.Context) (models.ChallengeCounts, error)
	ChallengeLanguages(ctx context.Context) ([]models.SupportedLanguage, error)
}

type AchievementsAPII interface {
	CompleteSession(ctx context.Context, req models.CompleteSessionRequest) (models.CompleteSessionResponse, error)
}

type APII interface {
	HeartsAPII
	ChallengesAPII
	AchievementsAPII
}

type SessionRI interface {
	SaveSession(ctx context.Context, userID string, session models.ChallengeSession) error
	LoadSession(ctx context.Context, userID string) (models.ChallengeSession, bool, error)
	DeleteSession(ctx context.Context, userID string) error
}

type ChallengeCacheRI interface {
	ChallengeCache(ctx context.Context, level string) (models.ChallengeCacheEntry, bool, error)
	SetChallengeCache(ctx context.Context, entry models.ChallengeCacheEntry) error
	DeleteChallengeCache(ctx context.Context, level string) error
	CachedLevels(ctx context.Context) ([]string, error)
}

type RepositoryI interface {
	SessionRI
	ChallengeCacheRI
}

type Service struct {
	*HeartS
	*SupplyS

	api  APII
	repo RepositoryI
	cfg  *config.Config
	log  *zap.Logger

	mu     sync.Mutex
	stores []*SessionStore
}

func InitServices(api APII, repo RepositoryI, cfg *config.Config, log *zap.Logger) *Service {
	return &Service{
		HeartS:  NewHeartService(api, cfg.Hearts, log),
		SupplyS: NewSupplyService(api, repo, cfg.Supply, log),
		api:     api,
		repo:    repo,
		cfg:     cfg,
		log:     log,
	}
}

// NewSessionStore builds the session engine for one user. An empty userID
// uses the fixed storage key.
func (s *Service) NewSessionStore(userID string) *SessionStore {
	store := NewSessionStore(SessionDeps{
		Hearts:       s.HeartS,
		Supply:       s.SupplyS,
		Achievements: s.api,
		Repo:         s.repo,
		Evaluator:    NewAchievementEvaluator(),
		XP:           s.cfg.XP,
		UndoWindow:   s.cfg.Session.UndoWindow,
		Finalize:     s.cfg.Session.FinalizeTimeout,
		BatchSize:    s.cfg.Supply.BatchSize,
		UserID:       userID,
		Log:          s.log,
	})

	s.mu.Lock()
	s.stores = append(s.stores, store)
	s.mu.Unlock()

	return store
}

// Wait drains background completion reports of every session store and the
// detached analytics calls. It reports false if timeout passed first.
func (s *Service) Wait(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)

	s.mu.Lock()
	stores := slices.Clone(s.stores)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		for _, store := range stores {
			store.Wait()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		return false
	}
	return s.HeartS.Wait(time.Until(deadline))
}
