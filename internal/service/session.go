package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HeartEconomyI interface {
	Status(ctx context.Context, challengeType string) (models.HeartPool, error)
	Consume(ctx context.Context, challengeType string, isCorrect bool, sessionID, challengeID string) (models.ConsumeResponse, error)
	Undo(ctx context.Context, challengeType, challengeID string) (models.UndoResult, error)
	LogSessionEndedEarly(event models.SessionEndedEvent)
}

type ChallengeSupplyI interface {
	Fetch(ctx context.Context, req SupplyRequest) (models.ChallengeBatch, error)
}

type SessionDeps struct {
	Hearts       HeartEconomyI
	Supply       ChallengeSupplyI
	Achievements AchievementsAPII
	Repo         SessionRI
	Evaluator    *AchievementEvaluator
	XP           models.XPConfig
	UndoWindow   time.Duration
	Finalize     time.Duration
	BatchSize    int
	UserID       string
	Log          *zap.Logger
}

type StartParams struct {
	UserID           string
	Language         string
	Level            string
	ChallengeType    string
	Source           string
	LanguageOverride string
	// Challenges, when set, are used as-is (review sessions) instead of
	// fetching a fresh batch.
	Challenges []models.Challenge
}

type AnswerResult struct {
	Session models.ChallengeSession
	XP      models.XPResult
	Consume *models.ConsumeResponse
	// ConsumeErr is set when the hearts service could not be reached; the
	// answer is still scored locally.
	ConsumeErr error
	EndedEarly bool
	Stats      *models.SessionStats
}

// SessionStore owns the single in-progress ChallengeSession. Every mutation is
// applied to the latest committed record under mu and persisted before it is
// committed; network calls run outside the lock and re-read the record when
// they return.
type SessionStore struct {
	hearts       HeartEconomyI
	supply       ChallengeSupplyI
	achievements AchievementsAPII
	repo         SessionRI
	evaluator    *AchievementEvaluator

	xp         models.XPConfig
	undoWindow time.Duration
	finalize   time.Duration
	batchSize  int
	userID     string

	now func() time.Time
	log *zap.Logger

	mu         sync.Mutex
	current    *models.ChallengeSession
	starting   bool
	finalizing bool
	inFlight   string
	lastStats  *models.SessionStats

	tasks sync.WaitGroup
}

func NewSessionStore(deps SessionDeps) *SessionStore {
	evaluator := deps.Evaluator
	if evaluator == nil {
		evaluator = NewAchievementEvaluator()
	}
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionStore{
		hearts:       deps.Hearts,
		supply:       deps.Supply,
		achievements: deps.Achievements,
		repo:         deps.Repo,
		evaluator:    evaluator,
		xp:           deps.XP,
		undoWindow:   deps.UndoWindow,
		finalize:     deps.Finalize,
		batchSize:    deps.BatchSize,
		userID:       deps.UserID,
		now:          time.Now,
		log:          log.With(zap.String("user_id", deps.UserID)),
	}
}

func (s *SessionStore) Start(ctx context.Context, p StartParams) (models.ChallengeSession, error) {
	s.mu.Lock()
	if s.current != nil || s.starting || s.finalizing {
		s.mu.Unlock()
		return models.ChallengeSession{}, ErrSessionInProgress
	}
	s.starting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.starting = false
		s.mu.Unlock()
	}()

	pool, err := s.hearts.Status(ctx, p.ChallengeType)
	if err != nil {
		return models.ChallengeSession{}, err
	}
	if !pool.HasHearts() {
		s.log.Info("session start blocked, no hearts",
			zap.String("challenge_type", p.ChallengeType),
			zap.Int("minutes_to_next", pool.Refill.MinutesToNext))
		return models.ChallengeSession{}, ErrNoHeartsAvailable
	}

	challenges := p.Challenges
	var source models.ChallengeSource
	if len(challenges) == 0 {
		batch, err := s.supply.Fetch(ctx, SupplyRequest{
			Level:            p.Level,
			ChallengeType:    p.ChallengeType,
			LanguageOverride: p.LanguageOverride,
			Limit:            s.batchSize,
		})
		if err != nil {
			return models.ChallengeSession{}, fmt.Errorf("failed to get challenges: %w", err)
		}
		challenges, source = batch.Challenges, batch.Source
	}
	if len(challenges) == 0 {
		return models.ChallengeSession{}, ErrNoChallenges
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.ChallengeSession{}, fmt.Errorf("failed to generate session id: %w", err)
	}

	userID := p.UserID
	if userID == "" {
		userID = s.userID
	}

	now := s.now()
	session := models.ChallengeSession{
		ID:                    id.String(),
		UserID:                userID,
		Language:              p.Language,
		Level:                 p.Level,
		ChallengeType:         p.ChallengeType,
		Source:                p.Source,
		Challenges:            append([]models.Challenge(nil), challenges...),
		ChallengeSource:       source,
		IncorrectChallengeIDs: []string{},
		AnswerTimes:           []float64{},
		CurrentCombo:          1,
		MaxCombo:              1,
		Hearts:                pool,
		Active:                true,
		StartedAt:             now,
		ChallengeStartedAt:    now,
	}

	s.mu.Lock()
	s.persistLocked(ctx, session)
	s.current = &session
	s.mu.Unlock()

	s.log.Info("session started",
		zap.String("session_id", session.ID),
		zap.String("challenge_type", session.ChallengeType),
		zap.String("source", string(source)),
		zap.Int("challenges", len(session.Challenges)),
		zap.Int("hearts", pool.CurrentHearts))

	return session.Clone(), nil
}

// Answer scores the current challenge. Calls that do not match the current,
// unanswered challenge of an active session are ignored with ErrStaleInput.
func (s *SessionStore) Answer(ctx context.Context, challengeID string, isCorrect bool) (AnswerResult, error) {
	s.mu.Lock()
	if reason := s.staleReasonLocked(challengeID); reason != "" {
		s.mu.Unlock()
		s.log.Warn("ignoring stale answer", zap.String("challenge_id", challengeID), zap.String("reason", reason))
		return AnswerResult{}, ErrStaleInput
	}
	s.inFlight = challengeID
	sessionID := s.current.ID
	challengeType := s.current.ChallengeType
	combo := s.current.CurrentCombo
	answeredAt := s.now()
	elapsed := max(answeredAt.Sub(s.current.ChallengeStartedAt).Seconds(), 0)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.inFlight == challengeID {
			s.inFlight = ""
		}
		s.mu.Unlock()
	}()

	xp := ComputeXP(isCorrect, elapsed, combo, s.xp)

	consume, consumeErr := s.hearts.Consume(ctx, challengeType, isCorrect, sessionID, challengeID)
	if consumeErr != nil {
		s.log.Warn("heart consumption failed, scoring locally",
			zap.String("session_id", sessionID),
			zap.String("challenge_id", challengeID),
			zap.Error(consumeErr))
	}

	session, err := s.update(ctx, func(session *models.ChallengeSession) error {
		if session.ID != sessionID || s.finalizing {
			return ErrStaleInput
		}

		session.CompletedChallenges++
		if isCorrect {
			session.CorrectAnswers++
		} else {
			session.WrongAnswers++
			session.IncorrectChallengeIDs = append(session.IncorrectChallengeIDs, challengeID)
		}
		session.CurrentCombo = NextCombo(isCorrect, session.CurrentCombo)
		session.MaxCombo = max(session.MaxCombo, session.CurrentCombo)
		session.TotalXP += xp.TotalXP
		session.AnswerTimes = append(session.AnswerTimes, round2(elapsed))
		session.CurrentAnswered = true
		session.LastAnswer = &models.LastAnswer{
			ChallengeID: challengeID,
			IsCorrect:   isCorrect,
			AnsweredAt:  answeredAt,
		}

		if consumeErr == nil {
			resp := consume
			session.LastConsume = &resp
			session.Hearts.CurrentHearts = consume.HeartsRemaining
			session.Hearts.ShieldActive = consume.ShieldActive
			session.Hearts.CurrentStreak = consume.CurrentStreak
			session.Hearts.Refill = consume.Refill
			session.RefillWaiting = consume.OutOfHearts
		}
		return nil
	})
	if err != nil {
		s.log.Warn("dropping answer for a session that changed meanwhile",
			zap.String("session_id", sessionID),
			zap.String("challenge_id", challengeID),
			zap.Error(err))
		return AnswerResult{}, ErrStaleInput
	}

	result := AnswerResult{Session: session, XP: xp, ConsumeErr: consumeErr}
	if consumeErr == nil {
		result.Consume = &consume
	}

	if consumeErr == nil && consume.OutOfHearts {
		stats, err := s.finalizeSession(ctx, models.OutcomeEndedEarly, sessionID)
		if err != nil {
			s.log.Info("out of hearts but session already finalized", zap.String("session_id", sessionID))
			return result, nil
		}
		result.EndedEarly = true
		result.Stats = &stats
		result.Session.Active = false
		result.Session.EndedEarly = true
	}

	return result, nil
}

func (s *SessionStore) staleReasonLocked(challengeID string) string {
	cur := s.current
	switch {
	case cur == nil || !cur.Active || s.finalizing:
		return "no active session"
	case cur.Paused:
		return "session paused"
	case s.inFlight != "":
		return "answer in flight"
	case cur.CurrentAnswered:
		return "challenge already answered"
	}

	current, ok := cur.CurrentChallenge()
	if !ok || current.ID != challengeID {
		return "challenge mismatch"
	}
	return ""
}

// NextChallenge advances to the next challenge. Passing the last one marks the
// session completed; stats are produced by End.
func (s *SessionStore) NextChallenge(ctx context.Context) (models.ChallengeSession, error) {
	return s.update(ctx, func(session *models.ChallengeSession) error {
		if !session.Active || s.finalizing {
			return ErrNoActiveSession
		}
		if session.Paused {
			return ErrSessionPaused
		}

		now := s.now()
		session.CurrentIndex++
		session.CurrentAnswered = false
		if session.CurrentIndex >= len(session.Challenges) {
			session.CurrentIndex = len(session.Challenges)
			session.Active = false
			session.CompletedAt = &now
			return nil
		}
		session.ChallengeStartedAt = now
		return nil
	})
}

func (s *SessionStore) Pause(ctx context.Context) error {
	_, err := s.update(ctx, func(session *models.ChallengeSession) error {
		if !session.Active || s.finalizing {
			return ErrNoActiveSession
		}
		session.Paused = true
		return nil
	})
	return err
}

// Resume unpauses the session and restarts the answer clock so paused time is
// not counted.
func (s *SessionStore) Resume(ctx context.Context) error {
	_, err := s.update(ctx, func(session *models.ChallengeSession) error {
		if !session.Active || s.finalizing {
			return ErrNoActiveSession
		}
		if !session.Paused {
			return nil
		}
		session.Paused = false
		session.ChallengeStartedAt = s.now()
		return nil
	})
	return err
}

// Undo forgives the immediately preceding wrong answer while the undo window
// is open. Repeat calls replay the first result.
func (s *SessionStore) Undo(ctx context.Context) (models.UndoResult, error) {
	s.mu.Lock()
	cur := s.current
	if cur == nil || !cur.Active || s.finalizing {
		s.mu.Unlock()
		return models.UndoResult{}, ErrNoActiveSession
	}
	last := cur.LastAnswer
	if last == nil || last.IsCorrect || !cur.CurrentAnswered || s.now().Sub(last.AnsweredAt) > s.undoWindow {
		s.mu.Unlock()
		return models.UndoResult{}, ErrUndoUnavailable
	}
	sessionID, challengeType, challengeID := cur.ID, cur.ChallengeType, last.ChallengeID
	s.mu.Unlock()

	res, err := s.hearts.Undo(ctx, challengeType, challengeID)
	if err != nil {
		s.log.Warn("undo failed", zap.String("challenge_id", challengeID), zap.Error(err))
		return models.UndoResult{}, err
	}
	if !res.Success {
		return res, nil
	}

	_, err = s.update(ctx, func(session *models.ChallengeSession) error {
		if session.ID != sessionID || session.LastAnswer == nil || session.LastAnswer.ChallengeID != challengeID {
			return ErrStaleInput
		}
		if session.LastAnswer.Undone {
			return nil
		}
		session.LastAnswer.Undone = true
		if res.HeartPool.MaxHearts > 0 || res.HeartPool.IsUnlimited {
			session.Hearts = res.HeartPool
		} else {
			session.Hearts.CurrentHearts += res.HeartsRestored
			if res.ShieldRestored {
				session.Hearts.ShieldActive = true
			}
			if res.StreakRestored > 0 {
				session.Hearts.CurrentStreak = res.StreakRestored
			}
		}
		session.RefillWaiting = !session.Hearts.HasHearts()
		return nil
	})
	if err != nil {
		return res, err
	}
	return res, nil
}

// Restore loads a session persisted before a restart. It reports whether a
// session is now held in memory.
func (s *SessionStore) Restore(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return true, nil
	}

	session, ok, err := s.repo.LoadSession(ctx, s.userID)
	if err != nil {
		return false, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return false, nil
	}

	if session.Finalized {
		if err := s.repo.DeleteSession(ctx, s.userID); err != nil {
			s.log.Warn("failed to clear finalized session", zap.String("session_id", session.ID), zap.Error(err))
		}
		s.log.Info("discarded finalized session", zap.String("session_id", session.ID))
		return false, nil
	}

	if session.Active {
		session.ChallengeStartedAt = s.now()
	}
	s.current = &session

	s.log.Info("session restored",
		zap.String("session_id", session.ID),
		zap.Int("current_index", session.CurrentIndex),
		zap.String("state", string(session.State())))
	return true, nil
}

func (s *SessionStore) Current() (models.ChallengeSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.ChallengeSession{}, false
	}
	return s.current.Clone(), true
}

func (s *SessionStore) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.State()
}

// LastStats returns the summary of the most recently finalized session.
func (s *SessionStore) LastStats() (models.SessionStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastStats == nil {
		return models.SessionStats{}, false
	}
	return *s.lastStats, true
}

// Wait blocks until detached finalization work has finished.
func (s *SessionStore) Wait() {
	s.tasks.Wait()
}

// update applies fn to a copy of the latest session, persists the result and
// commits it. fn runs with mu held.
func (s *SessionStore) update(ctx context.Context, fn func(session *models.ChallengeSession) error) (models.ChallengeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.ChallengeSession{}, ErrNoActiveSession
	}

	next := s.current.Clone()
	if err := fn(&next); err != nil {
		return models.ChallengeSession{}, err
	}

	s.persistLocked(ctx, next)
	s.current = &next
	return next.Clone(), nil
}

func (s *SessionStore) persistLocked(ctx context.Context, session models.ChallengeSession) {
	if err := s.repo.SaveSession(ctx, s.userID, session); err != nil {
		s.log.Warn("failed to persist session locally", zap.String("session_id", session.ID), zap.Error(err))
	}
}
