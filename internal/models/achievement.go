package models

import "time"

type SessionAchievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	XPBonus     int       `json:"xp_bonus"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

type SessionOutcome string

const (
	OutcomeCompleted  SessionOutcome = "completed"
	OutcomeEndedEarly SessionOutcome = "ended_early"
	OutcomeQuit       SessionOutcome = "quit"
)

type MissedChallenge struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// SessionStats is derived from a finished session and never mutated afterwards.
type SessionStats struct {
	SessionID        string               `json:"session_id"`
	Outcome          SessionOutcome       `json:"outcome"`
	Total            int                  `json:"total"`
	Completed        int                  `json:"completed"`
	Correct          int                  `json:"correct"`
	Wrong            int                  `json:"wrong"`
	Accuracy         float64              `json:"accuracy"`
	AverageTime      float64              `json:"average_time"`
	TotalTime        float64              `json:"total_time"`
	MaxCombo         int                  `json:"max_combo"`
	TotalXP          int                  `json:"total_xp"`
	BonusXP          int                  `json:"bonus_xp"`
	MissedChallenges []MissedChallenge    `json:"missed_challenges"`
	Achievements     []SessionAchievement `json:"achievements"`
	Persisted        bool                 `json:"persisted"`
}

type CompleteSessionRequest struct {
	SessionID      string    `json:"session_id"`
	ChallengeType  string    `json:"challenge_type"`
	Language       string    `json:"language"`
	Level          string    `json:"level"`
	TotalAnswers   int       `json:"total_answers"`
	CorrectAnswers int       `json:"correct_answers"`
	WrongAnswers   int       `json:"wrong_answers"`
	MaxCombo       int       `json:"max_combo"`
	TotalXP        int       `json:"total_xp"`
	AnswerTimes    []float64 `json:"answer_times"`
	Achievements   []string  `json:"achievements"`
	EndedEarly     bool      `json:"ended_early"`
}

type CompleteSessionResponse struct {
	SessionID    string               `json:"session_id"`
	TotalXP      int                  `json:"total_xp"`
	BonusXP      int                  `json:"bonus_xp"`
	Achievements []SessionAchievement `json:"achievements"`
}
