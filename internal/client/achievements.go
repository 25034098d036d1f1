package client

import (
	"context"

	"github.com/alipala/mytacoai-mobile/internal/models"
)

type AchievementsAPI struct {
	base *baseClient
}

func NewAchievementsAPI(base *baseClient) *AchievementsAPI {
	return &AchievementsAPI{base: base}
}

func (a *AchievementsAPI) CompleteSession(ctx context.Context, req models.CompleteSessionRequest) (models.CompleteSessionResponse, error) {
	var resp models.CompleteSessionResponse
	if err := a.base.post(ctx, "/api/achievements/sessions/complete", req, &resp); err != nil {
		return models.CompleteSessionResponse{}, err
	}
	return resp, nil
}
