package service

import (
	"math"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/models"
	"github.com/samber/lo"
)

// AchievementInput is the aggregate view of a finished session that achievement
// rules are evaluated against.
type AchievementInput struct {
	Completed   int
	Wrong       int
	MaxCombo    int
	Accuracy    float64
	AverageTime float64
	TotalTime   float64
}

type achievementRule struct {
	template  models.SessionAchievement
	satisfied func(in AchievementInput) bool
}

// Rules are independent of each other; order only fixes the output order.
var achievementRules = []achievementRule{
	{
		template: models.SessionAchievement{
			ID:          "perfect_session",
			Title:       "Perfect Session",
			Description: "Finish at least 5 challenges without a mistake",
			Icon:        "trophy",
			XPBonus:     50,
		},
		satisfied: func(in AchievementInput) bool { return in.Completed >= 5 && in.Wrong == 0 },
	},
	{
		template: models.SessionAchievement{
			ID:          "sharp_shooter",
			Title:       "Sharp Shooter",
			Description: "Reach 90% accuracy over at least 5 challenges",
			Icon:        "target",
			XPBonus:     20,
		},
		satisfied: func(in AchievementInput) bool { return in.Completed >= 5 && in.Accuracy >= 90 },
	},
	{
		template: models.SessionAchievement{
			ID:          "speed_demon",
			Title:       "Speed Demon",
			Description: "Average 3 seconds or less per answer",
			Icon:        "flash",
			XPBonus:     25,
		},
		satisfied: func(in AchievementInput) bool { return in.Completed >= 5 && in.AverageTime <= 3 },
	},
	{
		template: models.SessionAchievement{
			ID:          "combo_starter",
			Title:       "Combo Starter",
			Description: "Reach a 5x combo",
			Icon:        "flame",
			XPBonus:     15,
		},
		satisfied: func(in AchievementInput) bool { return in.MaxCombo >= 5 },
	},
	{
		template: models.SessionAchievement{
			ID:          "combo_master",
			Title:       "Combo Master",
			Description: "Reach a 10x combo",
			Icon:        "bonfire",
			XPBonus:     40,
		},
		satisfied: func(in AchievementInput) bool { return in.MaxCombo >= 10 },
	},
	{
		template: models.SessionAchievement{
			ID:          "resilient",
			Title:       "Resilient",
			Description: "Keep 70% accuracy despite 3 or more mistakes",
			Icon:        "shield",
			XPBonus:     20,
		},
		satisfied: func(in AchievementInput) bool { return in.Wrong >= 3 && in.Accuracy >= 70 },
	},
	{
		template: models.SessionAchievement{
			ID:          "marathon",
			Title:       "Marathon",
			Description: "Spend 5 minutes or more answering",
			Icon:        "time",
			XPBonus:     30,
		},
		satisfied: func(in AchievementInput) bool { return in.TotalTime >= 300 },
	},
}

type AchievementEvaluator struct {
	rules []achievementRule
}

func NewAchievementEvaluator() *AchievementEvaluator {
	return &AchievementEvaluator{rules: achievementRules}
}

// Evaluate returns every satisfied achievement stamped with unlockedAt.
func (e *AchievementEvaluator) Evaluate(in AchievementInput, unlockedAt time.Time) []models.SessionAchievement {
	unlocked := make([]models.SessionAchievement, 0)
	for _, r := range e.rules {
		if !r.satisfied(in) {
			continue
		}
		a := r.template
		a.UnlockedAt = unlockedAt
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// Stats derives the session summary and evaluates achievements against it.
func (e *AchievementEvaluator) Stats(session models.ChallengeSession, outcome models.SessionOutcome, now time.Time) models.SessionStats {
	totalTime := lo.Sum(session.AnswerTimes)
	averageTime := 0.0
	if len(session.AnswerTimes) > 0 {
		averageTime = totalTime / float64(len(session.AnswerTimes))
	}

	accuracy := 0.0
	if session.CompletedChallenges > 0 {
		accuracy = float64(session.CorrectAnswers) / float64(session.CompletedChallenges) * 100
	}

	byID := lo.KeyBy(session.Challenges, func(c models.Challenge) string { return c.ID })
	missed := lo.FilterMap(session.IncorrectChallengeIDs, func(id string, _ int) (models.MissedChallenge, bool) {
		c, ok := byID[id]
		if !ok {
			return models.MissedChallenge{}, false
		}
		return models.MissedChallenge{ID: c.ID, Prompt: c.Prompt, Answer: c.Answer}, true
	})

	in := AchievementInput{
		Completed:   session.CompletedChallenges,
		Wrong:       session.WrongAnswers,
		MaxCombo:    session.MaxCombo,
		Accuracy:    accuracy,
		AverageTime: averageTime,
		TotalTime:   totalTime,
	}
	achievements := e.Evaluate(in, now)

	return models.SessionStats{
		SessionID:        session.ID,
		Outcome:          outcome,
		Total:            len(session.Challenges),
		Completed:        session.CompletedChallenges,
		Correct:          session.CorrectAnswers,
		Wrong:            session.WrongAnswers,
		Accuracy:         round2(accuracy),
		AverageTime:      round2(averageTime),
		TotalTime:        round2(totalTime),
		MaxCombo:         session.MaxCombo,
		TotalXP:          session.TotalXP,
		BonusXP:          lo.SumBy(achievements, func(a models.SessionAchievement) int { return a.XPBonus }),
		MissedChallenges: missed,
		Achievements:     achievements,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
