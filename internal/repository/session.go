package repository

import (
	"context"

	"github.com/alipala/mytacoai-mobile/internal/models"
)

type SessionR struct {
	kv  *kvStore
	key string
}

func NewSessionRepository(kv *kvStore, key string) *SessionR {
	return &SessionR{kv: kv, key: key}
}

func (s *SessionR) sessionKey(userID string) string {
	if userID == "" {
		return s.key
	}
	return s.key + ":" + userID
}

func (s *SessionR) SaveSession(ctx context.Context, userID string, session models.ChallengeSession) error {
	return s.kv.put(ctx, s.sessionKey(userID), session)
}

func (s *SessionR) LoadSession(ctx context.Context, userID string) (models.ChallengeSession, bool, error) {
	var session models.ChallengeSession
	ok, err := s.kv.get(ctx, s.sessionKey(userID), &session)
	if err != nil || !ok {
		return models.ChallengeSession{}, false, err
	}
	return session, true, nil
}

func (s *SessionR) DeleteSession(ctx context.Context, userID string) error {
	return s.kv.delete(ctx, s.sessionKey(userID))
}
