package client

import (
	"context"
	"net/url"

	"github.com/alipala/mytacoai-mobile/internal/models"
)

type HeartsAPI struct {
	base *baseClient
}

func NewHeartsAPI(base *baseClient) *HeartsAPI {
	return &HeartsAPI{base: base}
}

type consumeRequest struct {
	ChallengeType string `json:"challenge_type"`
	IsCorrect     bool   `json:"is_correct"`
	SessionID     string `json:"session_id"`
	ChallengeID   string `json:"challenge_id,omitempty"`
}

type undoRequest struct {
	ChallengeType string `json:"challenge_type"`
	ChallengeID   string `json:"challenge_id"`
}

func (h *HeartsAPI) HeartStatus(ctx context.Context, challengeType string) (models.HeartPool, error) {
	var pool models.HeartPool
	if err := h.base.get(ctx, "/api/hearts/status/"+url.PathEscape(challengeType), nil, &pool); err != nil {
		return models.HeartPool{}, err
	}
	return pool, nil
}

func (h *HeartsAPI) ConsumeHeart(ctx context.Context, challengeType string, isCorrect bool, sessionID, challengeID string) (models.ConsumeResponse, error) {
	var resp models.ConsumeResponse
	err := h.base.post(ctx, "/api/hearts/consume", consumeRequest{
		ChallengeType: challengeType,
		IsCorrect:     isCorrect,
		SessionID:     sessionID,
		ChallengeID:   challengeID,
	}, &resp)
	if err != nil {
		return models.ConsumeResponse{}, err
	}
	return resp, nil
}

func (h *HeartsAPI) UndoHeart(ctx context.Context, challengeType, challengeID string) (models.UndoResult, error) {
	var resp models.UndoResult
	err := h.base.post(ctx, "/api/hearts/undo", undoRequest{
		ChallengeType: challengeType,
		ChallengeID:   challengeID,
	}, &resp)
	if err != nil {
		return models.UndoResult{}, err
	}
	return resp, nil
}

func (h *HeartsAPI) LogSessionEnded(ctx context.Context, event models.SessionEndedEvent) error {
	return h.base.post(ctx, "/api/hearts/log-session-ended", event, nil)
}

func (h *HeartsAPI) LogModal(ctx context.Context, event models.ModalEvent) error {
	return h.base.post(ctx, "/api/hearts/log-modal", event, nil)
}
