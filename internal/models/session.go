package models

import (
	"slices"
	"time"
)

type SessionState string

const (
	StateNoSession SessionState = "no_session"
	StateActive    SessionState = "active"
	StatePaused    SessionState = "paused"
	StateCompleted SessionState = "completed"
)

// LastAnswer remembers the most recent answer so a wrong one can be forgiven.
type LastAnswer struct {
	ChallengeID string    `json:"challenge_id"`
	IsCorrect   bool      `json:"is_correct"`
	AnsweredAt  time.Time `json:"answered_at"`
	Undone      bool      `json:"undone"`
}

// ChallengeSession is the persisted record of one session. Finalized is set
// once completion reporting has begun; such a record is never resumed.
type ChallengeSession struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Language      string `json:"language"`
	Level         string `json:"level"`
	ChallengeType string `json:"challenge_type"`
	Source        string `json:"source,omitempty"`

	Challenges      []Challenge     `json:"challenges"`
	ChallengeSource ChallengeSource `json:"challenge_source"`
	CurrentIndex    int             `json:"current_index"`
	CurrentAnswered bool            `json:"current_answered"`

	CompletedChallenges   int       `json:"completed_challenges"`
	CorrectAnswers        int       `json:"correct_answers"`
	WrongAnswers          int       `json:"wrong_answers"`
	IncorrectChallengeIDs []string  `json:"incorrect_challenge_ids"`
	AnswerTimes           []float64 `json:"answer_times"`

	CurrentCombo int `json:"current_combo"`
	MaxCombo     int `json:"max_combo"`
	TotalXP      int `json:"total_xp"`

	Hearts           HeartPool        `json:"hearts"`
	LastConsume      *ConsumeResponse `json:"last_consume,omitempty"`
	LastAnswer       *LastAnswer      `json:"last_answer,omitempty"`
	RefillWaiting    bool             `json:"refill_waiting"`
	EarlyTermination bool             `json:"early_termination"`

	Active             bool       `json:"active"`
	Paused             bool       `json:"paused"`
	EndedEarly         bool       `json:"ended_early"`
	Finalized          bool       `json:"finalized"`
	StartedAt          time.Time  `json:"started_at"`
	ChallengeStartedAt time.Time  `json:"challenge_started_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

func (s *ChallengeSession) CurrentChallenge() (Challenge, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Challenges) {
		return Challenge{}, false
	}
	return s.Challenges[s.CurrentIndex], true
}

func (s *ChallengeSession) State() SessionState {
	switch {
	case s == nil:
		return StateNoSession
	case s.CompletedAt != nil:
		return StateCompleted
	case s.Paused:
		return StatePaused
	case s.Active:
		return StateActive
	default:
		return StateNoSession
	}
}

// Clone returns a deep copy so callers never share slices with the stored record.
func (s ChallengeSession) Clone() ChallengeSession {
	c := s
	c.Challenges = slices.Clone(s.Challenges)
	c.IncorrectChallengeIDs = slices.Clone(s.IncorrectChallengeIDs)
	c.AnswerTimes = slices.Clone(s.AnswerTimes)
	if s.LastConsume != nil {
		lc := *s.LastConsume
		c.LastConsume = &lc
	}
	if s.LastAnswer != nil {
		la := *s.LastAnswer
		c.LastAnswer = &la
	}
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		c.CompletedAt = &t
	}
	return c
}
