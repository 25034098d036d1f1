package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/bank"
	"github.com/alipala/mytacoai-mobile/internal/client"
	"github.com/alipala/mytacoai-mobile/internal/config"
	"github.com/alipala/mytacoai-mobile/internal/models"
	"go.uber.org/zap"
)

// DailyChallengeType marks a mixed batch served by the daily endpoint.
const DailyChallengeType = "daily"

type SupplyRequest struct {
	Level         string
	ChallengeType string
	// LanguageOverride requests a language other than the user's default.
	// Overridden batches bypass the cache in both directions.
	LanguageOverride string
	Limit            int
}

func (r SupplyRequest) daily() bool {
	return r.ChallengeType == "" || r.ChallengeType == DailyChallengeType
}

// SupplyS serves challenge batches from cache, the personalization API or the
// static bank, in that order, and tags each batch with the tier used.
type SupplyS struct {
	api  ChallengesAPII
	repo ChallengeCacheRI
	cfg  config.SupplyConfig
	now  func() time.Time
	log  *zap.Logger
}

func NewSupplyService(api ChallengesAPII, repo ChallengeCacheRI, cfg config.SupplyConfig, log *zap.Logger) *SupplyS {
	return &SupplyS{
		api:  api,
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
		log:  log,
	}
}

func (s *SupplyS) Fetch(ctx context.Context, req SupplyRequest) (models.ChallengeBatch, error) {
	level := strings.ToLower(req.Level)

	if req.LanguageOverride == "" {
		if batch, ok := s.fromCache(ctx, level, req); ok {
			return batch, nil
		}
	}

	if s.cfg.Personalization {
		challenges, err := s.fetchRemote(ctx, req)
		switch {
		case err != nil:
			s.log.Warn("personalized challenges unavailable, using local bank",
				zap.String("level", level),
				zap.String("challenge_type", req.ChallengeType),
				zap.Error(err))
		case len(challenges) == 0:
			s.log.Warn("personalized challenges empty, using local bank", zap.String("level", level))
		default:
			return s.store(ctx, level, req, challenges, models.SourceAPI), nil
		}
	}

	challengeType := req.ChallengeType
	if req.daily() {
		challengeType = ""
	}
	challenges, err := bank.ForLevel(level, challengeType, s.limit(req))
	if err != nil {
		return models.ChallengeBatch{}, fmt.Errorf("failed to load local bank: %w", err)
	}
	if len(challenges) == 0 {
		return models.ChallengeBatch{}, fmt.Errorf("%w: level %q type %q", ErrNoChallenges, level, req.ChallengeType)
	}

	return s.store(ctx, level, req, challenges, models.SourceMock), nil
}

func (s *SupplyS) Counts(ctx context.Context) (models.ChallengeCounts, error) {
	counts, err := s.api.ChallengeCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge counts: %w", err)
	}
	return counts, nil
}

func (s *SupplyS) Languages(ctx context.Context) ([]models.SupportedLanguage, error) {
	langs, err := s.api.ChallengeLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge languages: %w", err)
	}
	return langs, nil
}

// Invalidate drops the cached batch for level, or every cached batch when level
// is empty.
func (s *SupplyS) Invalidate(ctx context.Context, level string) error {
	levels := []string{strings.ToLower(level)}
	if level == "" {
		var err error
		if levels, err = s.repo.CachedLevels(ctx); err != nil {
			return err
		}
	}

	for _, l := range levels {
		if err := s.repo.DeleteChallengeCache(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

func (s *SupplyS) limit(req SupplyRequest) int {
	if req.Limit > 0 {
		return req.Limit
	}
	return s.cfg.BatchSize
}

func (s *SupplyS) fromCache(ctx context.Context, level string, req SupplyRequest) (models.ChallengeBatch, bool) {
	entry, ok, err := s.repo.ChallengeCache(ctx, level)
	if err != nil {
		s.log.Warn("failed to read challenge cache", zap.String("level", level), zap.Error(err))
		return models.ChallengeBatch{}, false
	}
	if !ok || len(entry.Challenges) == 0 {
		return models.ChallengeBatch{}, false
	}
	if !strings.EqualFold(entry.Level, level) || entry.ChallengeType != normalizeType(req.ChallengeType) {
		return models.ChallengeBatch{}, false
	}
	if s.now().Sub(entry.CachedAt) >= s.cfg.CacheTTL {
		return models.ChallengeBatch{}, false
	}

	return models.ChallengeBatch{
		Challenges: entry.Challenges,
		Source:     models.SourceCache,
		FetchedAt:  entry.CachedAt,
	}, true
}

func (s *SupplyS) store(ctx context.Context, level string, req SupplyRequest, challenges []models.Challenge, source models.ChallengeSource) models.ChallengeBatch {
	now := s.now()
	if req.LanguageOverride == "" {
		err := s.repo.SetChallengeCache(ctx, models.ChallengeCacheEntry{
			Level:         level,
			ChallengeType: normalizeType(req.ChallengeType),
			Challenges:    challenges,
			CachedAt:      now,
		})
		if err != nil {
			s.log.Warn("failed to write challenge cache", zap.String("level", level), zap.Error(err))
		}
	}

	return models.ChallengeBatch{Challenges: challenges, Source: source, FetchedAt: now}
}

// fetchRemote calls the personalization API, retrying timeouts and 5xx
// responses with exponential backoff. Client errors are returned at once.
func (s *SupplyS) fetchRemote(ctx context.Context, req SupplyRequest) ([]models.Challenge, error) {
	timeout := s.cfg.DailyTimeout
	call := func(ctx context.Context) ([]models.Challenge, error) {
		return s.api.DailyChallenges(ctx, req.Level, req.LanguageOverride, s.limit(req))
	}
	if !req.daily() {
		timeout = s.cfg.ByTypeTimeout
		call = func(ctx context.Context) ([]models.Challenge, error) {
			return s.api.ChallengesByType(ctx, req.ChallengeType, req.Level, req.LanguageOverride, s.limit(req))
		}
	}

	for attempt := 0; ; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		challenges, err := call(attemptCtx)
		cancel()
		if err == nil {
			return challenges, nil
		}

		if !client.IsRetryable(err) || attempt >= s.cfg.MaxRetries {
			return nil, err
		}

		delay := s.cfg.RetryBaseDelay << attempt
		s.log.Info("retrying challenge fetch",
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func normalizeType(challengeType string) string {
	if challengeType == DailyChallengeType {
		return ""
	}
	return challengeType
}
