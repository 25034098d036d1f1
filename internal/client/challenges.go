package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/alipala/mytacoai-mobile/internal/models"
)

type ChallengesAPI struct {
	base *baseClient
}

func NewChallengesAPI(base *baseClient) *ChallengesAPI {
	return &ChallengesAPI{base: base}
}

type challengesResponse struct {
	Challenges []models.Challenge `json:"challenges"`
}

type countsResponse struct {
	Counts models.ChallengeCounts `json:"counts"`
}

type languagesResponse struct {
	Languages []models.SupportedLanguage `json:"languages"`
}

func challengeQuery(level, language string, limit int) url.Values {
	q := url.Values{}
	if level != "" {
		q.Set("level", level)
	}
	if language != "" {
		q.Set("language", language)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func (c *ChallengesAPI) DailyChallenges(ctx context.Context, level, language string, limit int) ([]models.Challenge, error) {
	var resp challengesResponse
	if err := c.base.get(ctx, "/api/challenges/daily", challengeQuery(level, language, limit), &resp); err != nil {
		return nil, err
	}
	return resp.Challenges, nil
}

func (c *ChallengesAPI) ChallengesByType(ctx context.Context, challengeType, level, language string, limit int) ([]models.Challenge, error) {
	var resp challengesResponse
	path := "/api/challenges/by-type/" + url.PathEscape(challengeType)
	if err := c.base.get(ctx, path, challengeQuery(level, language, limit), &resp); err != nil {
		return nil, err
	}
	return resp.Challenges, nil
}

func (c *ChallengesAPI) ChallengeCounts(ctx context.Context) (models.ChallengeCounts, error) {
	var resp countsResponse
	if err := c.base.get(ctx, "/api/challenges/counts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Counts, nil
}

func (c *ChallengesAPI) ChallengeLanguages(ctx context.Context) ([]models.SupportedLanguage, error) {
	var resp languagesResponse
	if err := c.base.get(ctx, "/api/challenges/languages", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Languages, nil
}
