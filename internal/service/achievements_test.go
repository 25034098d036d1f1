package service

import (
	"testing"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func achievementIDs(list []models.SessionAchievement) []string {
	return lo.Map(list, func(a models.SessionAchievement, _ int) string { return a.ID })
}

func TestAchievementEvaluator_Evaluate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   AchievementInput
		want []string
	}{
		{
			name: "empty session unlocks nothing",
			in:   AchievementInput{},
			want: []string{},
		},
		{
			name: "flawless fast run",
			in:   AchievementInput{Completed: 6, Accuracy: 100, AverageTime: 2.5, TotalTime: 15, MaxCombo: 7},
			want: []string{"perfect_session", "sharp_shooter", "speed_demon", "combo_starter"},
		},
		{
			name: "long combo with mistakes",
			in:   AchievementInput{Completed: 14, Wrong: 3, Accuracy: 78.6, AverageTime: 8, TotalTime: 112, MaxCombo: 10},
			want: []string{"combo_starter", "combo_master", "resilient"},
		},
		{
			name: "slow marathon",
			in:   AchievementInput{Completed: 20, Wrong: 10, Accuracy: 50, AverageTime: 16, TotalTime: 320, MaxCombo: 3},
			want: []string{"marathon"},
		},
		{
			name: "too short for accuracy awards",
			in:   AchievementInput{Completed: 4, Accuracy: 100, AverageTime: 1, TotalTime: 4, MaxCombo: 5},
			want: []string{"combo_starter"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewAchievementEvaluator().Evaluate(tt.in, now)
			assert.Equal(t, tt.want, achievementIDs(got))
			for _, a := range got {
				assert.Equal(t, now, a.UnlockedAt)
				assert.Positive(t, a.XPBonus)
			}
		})
	}
}

func TestAchievementEvaluator_OrderIndependent(t *testing.T) {
	t.Parallel()

	in := AchievementInput{Completed: 10, Wrong: 0, Accuracy: 100, AverageTime: 2, TotalTime: 301, MaxCombo: 11}
	now := time.Now()

	forward := NewAchievementEvaluator().Evaluate(in, now)
	reversed := &AchievementEvaluator{rules: lo.Reverse(append([]achievementRule(nil), achievementRules...))}

	assert.ElementsMatch(t, achievementIDs(forward), achievementIDs(reversed.Evaluate(in, now)))
}

func TestAchievementEvaluator_Stats(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	session := models.ChallengeSession{
		ID: "s1",
		Challenges: []models.Challenge{
			{ID: "c1", Prompt: "uno", Answer: "one"},
			{ID: "c2", Prompt: "dos", Answer: "two"},
			{ID: "c3", Prompt: "tres", Answer: "three"},
			{ID: "c4", Prompt: "cuatro", Answer: "four"},
		},
		CompletedChallenges:   3,
		CorrectAnswers:        2,
		WrongAnswers:          1,
		IncorrectChallengeIDs: []string{"c2"},
		AnswerTimes:           []float64{2, 4, 3},
		MaxCombo:              2,
		TotalXP:               25,
	}

	got := NewAchievementEvaluator().Stats(session, models.OutcomeQuit, now)

	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, models.OutcomeQuit, got.Outcome)
	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 3, got.Completed)
	assert.Equal(t, 66.67, got.Accuracy)
	assert.Equal(t, 3.0, got.AverageTime)
	assert.Equal(t, 9.0, got.TotalTime)
	assert.Equal(t, 25, got.TotalXP)
	assert.Equal(t, 0, got.BonusXP)
	require.Len(t, got.MissedChallenges, 1)
	assert.Equal(t, models.MissedChallenge{ID: "c2", Prompt: "dos", Answer: "two"}, got.MissedChallenges[0])
	assert.Empty(t, got.Achievements)
	assert.False(t, got.Persisted)
}
