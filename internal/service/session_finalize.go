package service

import (
	"context"
	"fmt"

	"github.com/alipala/mytacoai-mobile/internal/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	endReasonOutOfHearts = "out_of_hearts"
	endReasonUserQuit    = "user_quit"
)

// End finalizes an active, paused or completed session. Backend failures fall
// back to locally computed stats; the session is cleared either way.
func (s *SessionStore) End(ctx context.Context) (models.SessionStats, error) {
	return s.finalizeSession(ctx, models.OutcomeCompleted, "")
}

// EndEarly finalizes after heart exhaustion and waits for the backend so the
// summary shows confirmed stats.
func (s *SessionStore) EndEarly(ctx context.Context) (models.SessionStats, error) {
	return s.finalizeSession(ctx, models.OutcomeEndedEarly, "")
}

// Quit clears the session and returns local stats at once. Completion is
// reported to the backend in the background.
func (s *SessionStore) Quit(ctx context.Context) (models.SessionStats, error) {
	session, err := s.claim("")
	if err != nil {
		return models.SessionStats{}, err
	}

	session = s.seal(session, models.OutcomeQuit)
	s.persistSealed(ctx, session)
	stats := s.evaluator.Stats(session, models.OutcomeQuit, s.now())

	s.hearts.LogSessionEndedEarly(endedEvent(session, endReasonUserQuit))
	s.clear(ctx, stats)

	s.tasks.Add(1)
	go func() {
		defer s.tasks.Done()

		confirmed := s.persistCompletion(context.Background(), session, stats)

		s.mu.Lock()
		if s.lastStats != nil && s.lastStats.SessionID == confirmed.SessionID {
			s.lastStats = &confirmed
		}
		s.mu.Unlock()
	}()

	return stats, nil
}

// finalizeSession runs at most once per session: claim fails for every caller
// after the first. expectedID, when set, restricts finalization to that session.
func (s *SessionStore) finalizeSession(ctx context.Context, outcome models.SessionOutcome, expectedID string) (models.SessionStats, error) {
	session, err := s.claim(expectedID)
	if err != nil {
		return models.SessionStats{}, err
	}

	session = s.seal(session, outcome)
	s.persistSealed(ctx, session)
	stats := s.evaluator.Stats(session, outcome, s.now())

	if outcome == models.OutcomeEndedEarly {
		s.hearts.LogSessionEndedEarly(endedEvent(session, endReasonOutOfHearts))
	}

	stats = s.persistCompletion(ctx, session, stats)
	s.clear(ctx, stats)

	s.log.Info("session finalized",
		zap.String("session_id", session.ID),
		zap.String("outcome", string(outcome)),
		zap.Int("correct", stats.Correct),
		zap.Int("wrong", stats.Wrong),
		zap.Int("total_xp", stats.TotalXP),
		zap.Bool("persisted", stats.Persisted))

	return stats, nil
}

// claim marks the current session as finalizing and returns a copy of it.
func (s *SessionStore) claim(expectedID string) (models.ChallengeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.finalizing {
		return models.ChallengeSession{}, ErrNoActiveSession
	}
	if expectedID != "" && s.current.ID != expectedID {
		return models.ChallengeSession{}, ErrNoActiveSession
	}

	s.finalizing = true
	return s.current.Clone(), nil
}

func (s *SessionStore) seal(session models.ChallengeSession, outcome models.SessionOutcome) models.ChallengeSession {
	session.Active = false
	session.Paused = false
	session.Finalized = true
	if session.CompletedAt == nil {
		now := s.now()
		session.CompletedAt = &now
	}
	if outcome == models.OutcomeEndedEarly {
		session.EndedEarly = true
		session.EarlyTermination = true
		session.RefillWaiting = true
	}
	if outcome == models.OutcomeQuit {
		session.EarlyTermination = true
	}
	return session
}

// persistSealed stores the sealed record before completion is reported, so a
// record left behind by a failed delete is discarded on restore.
func (s *SessionStore) persistSealed(ctx context.Context, session models.ChallengeSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked(ctx, session)
}

// persistCompletion reports the finished session. On success the backend's
// achievements and XP replace the local ones.
func (s *SessionStore) persistCompletion(ctx context.Context, session models.ChallengeSession, stats models.SessionStats) models.SessionStats {
	ctx, cancel := context.WithTimeout(ctx, s.finalize)
	defer cancel()

	resp, err := s.achievements.CompleteSession(ctx, models.CompleteSessionRequest{
		SessionID:      session.ID,
		ChallengeType:  session.ChallengeType,
		Language:       session.Language,
		Level:          session.Level,
		TotalAnswers:   session.CompletedChallenges,
		CorrectAnswers: session.CorrectAnswers,
		WrongAnswers:   session.WrongAnswers,
		MaxCombo:       session.MaxCombo,
		TotalXP:        session.TotalXP,
		AnswerTimes:    session.AnswerTimes,
		Achievements:   lo.Map(stats.Achievements, func(a models.SessionAchievement, _ int) string { return a.ID }),
		EndedEarly:     session.EndedEarly,
	})
	if err != nil {
		s.log.Warn("keeping local session stats",
			zap.String("session_id", session.ID),
			zap.Error(fmt.Errorf("%w: %w", ErrPersistenceFailure, err)))
		return stats
	}

	stats.Persisted = true
	if resp.Achievements != nil {
		stats.Achievements = resp.Achievements
		stats.BonusXP = resp.BonusXP
	}
	if resp.TotalXP > 0 {
		stats.TotalXP = resp.TotalXP
	}
	return stats
}

// clear drops the session from memory and local storage and records stats as
// the last result.
func (s *SessionStore) clear(ctx context.Context, stats models.SessionStats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteSession(ctx, s.userID); err != nil {
		s.log.Warn("failed to clear persisted session", zap.String("session_id", stats.SessionID), zap.Error(err))
	}

	s.current = nil
	s.finalizing = false
	s.inFlight = ""
	s.lastStats = &stats
}

func endedEvent(session models.ChallengeSession, reason string) models.SessionEndedEvent {
	return models.SessionEndedEvent{
		ChallengeType:       session.ChallengeType,
		SessionID:           session.ID,
		Reason:              reason,
		ChallengesCompleted: session.CompletedChallenges,
		ChallengesTotal:     len(session.Challenges),
		HeartsRemaining:     session.Hearts.CurrentHearts,
	}
}
