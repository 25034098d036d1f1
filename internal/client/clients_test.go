package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClients(t *testing.T, handler http.HandlerFunc) Clients {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return InitClients(srv.URL, "token", time.Second)
}

func TestHeartsAPI_HeartStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		want     models.HeartPool
		wantKind error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"max_hearts":5,"current_hearts":3,"shield_active":true,"current_streak":2,"refill":{"minutes_to_next":12}}`,
			want: models.HeartPool{
				MaxHearts:     5,
				CurrentHearts: 3,
				ShieldActive:  true,
				CurrentStreak: 2,
				Refill:        models.RefillInfo{MinutesToNext: 12},
			},
		},
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"detail":"bad token"}`,
			wantKind: ErrUnauthenticated,
		},
		{
			name:     "bad request",
			status:   http.StatusBadRequest,
			body:     `{"detail":"unknown type"}`,
			wantKind: ErrServerRejected,
		},
		{
			name:     "server error",
			status:   http.StatusBadGateway,
			wantKind: ErrTransientServer,
		},
		{
			name:     "gateway timeout",
			status:   http.StatusGatewayTimeout,
			wantKind: ErrTimeout,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/hearts/status/vocabulary", r.URL.Path)
				assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := c.HeartStatus(context.Background(), "vocabulary")
			if tt.wantKind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantKind)
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.status, apiErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeartsAPI_ConsumeHeart(t *testing.T) {
	t.Parallel()

	c := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/hearts/consume", r.URL.Path)

		var req consumeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, consumeRequest{ChallengeType: "grammar", IsCorrect: false, SessionID: "s1", ChallengeID: "c1"}, req)

		_, _ = w.Write([]byte(`{"hearts_remaining":0,"out_of_hearts":true,"refill":{"minutes_to_next":30}}`))
	})

	got, err := c.ConsumeHeart(context.Background(), "grammar", false, "s1", "c1")
	require.NoError(t, err)
	assert.True(t, got.OutOfHearts)
	assert.Equal(t, 0, got.HeartsRemaining)
	assert.Equal(t, 30, got.Refill.MinutesToNext)
}

func TestBaseClient_MissingToken(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := InitClients(srv.URL, "", time.Second)
	_, err := c.HeartStatus(context.Background(), "vocabulary")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.False(t, called)
}

func TestBaseClient_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := InitClients(srv.URL, "token", time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.DailyChallenges(ctx, "beginner", "", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.True(t, IsRetryable(err))
}

func TestBaseClient_DefaultTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"challenges":[]}`))
	}))
	defer srv.Close()

	c := InitClients(srv.URL, "token", 50*time.Millisecond)

	_, err := c.DailyChallenges(context.Background(), "beginner", "", 5)
	assert.ErrorIs(t, err, ErrTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = c.DailyChallenges(ctx, "beginner", "", 5)
	assert.NoError(t, err)
}

func TestChallengesAPI_Queries(t *testing.T) {
	t.Parallel()

	c := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/challenges/daily":
			assert.Equal(t, "beginner", r.URL.Query().Get("level"))
			assert.Equal(t, "es", r.URL.Query().Get("language"))
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`{"challenges":[{"id":"d1","type":"vocabulary"}]}`))
		case "/api/challenges/by-type/listening":
			_, _ = w.Write([]byte(`{"challenges":[{"id":"l1","type":"listening"},{"id":"l2","type":"listening"}]}`))
		case "/api/challenges/counts":
			_, _ = w.Write([]byte(`{"counts":{"vocabulary":12,"listening":4}}`))
		case "/api/challenges/languages":
			_, _ = w.Write([]byte(`{"languages":[{"code":"es","name":"Spanish"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()

	daily, err := c.DailyChallenges(ctx, "beginner", "es", 5)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, "d1", daily[0].ID)

	byType, err := c.ChallengesByType(ctx, "listening", "", "", 0)
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	counts, err := c.ChallengeCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, counts["vocabulary"])

	langs, err := c.ChallengeLanguages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.SupportedLanguage{{Code: "es", Name: "Spanish"}}, langs)
}

func TestAchievementsAPI_CompleteSession(t *testing.T) {
	t.Parallel()

	unlocked := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/achievements/sessions/complete", r.URL.Path)

		var req models.CompleteSessionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "s1", req.SessionID)
		assert.Equal(t, []string{"combo_starter"}, req.Achievements)

		_ = json.NewEncoder(w).Encode(models.CompleteSessionResponse{
			SessionID: "s1",
			TotalXP:   120,
			BonusXP:   15,
			Achievements: []models.SessionAchievement{
				{ID: "combo_starter", XPBonus: 15, UnlockedAt: unlocked},
			},
		})
	})

	got, err := c.CompleteSession(context.Background(), models.CompleteSessionRequest{
		SessionID:    "s1",
		Achievements: []string{"combo_starter"},
	})
	require.NoError(t, err)
	assert.Equal(t, 15, got.BonusXP)
	require.Len(t, got.Achievements, 1)
	assert.True(t, unlocked.Equal(got.Achievements[0].UnlockedAt))
}
