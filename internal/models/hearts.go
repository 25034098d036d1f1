package models

import "time"

type RefillInfo struct {
	MinutesToNext int        `json:"minutes_to_next"`
	NextRefillAt  *time.Time `json:"next_refill_at,omitempty"`
}

// HeartPool is a cached snapshot of the remote lives pool for one challenge type.
type HeartPool struct {
	MaxHearts     int        `json:"max_hearts"`
	CurrentHearts int        `json:"current_hearts"`
	IsUnlimited   bool       `json:"is_unlimited"`
	ShieldActive  bool       `json:"shield_active"`
	CurrentStreak int        `json:"current_streak"`
	Refill        RefillInfo `json:"refill"`
}

func (h HeartPool) HasHearts() bool {
	return h.IsUnlimited || h.CurrentHearts > 0
}

type ConsumeResponse struct {
	HeartsRemaining int        `json:"hearts_remaining"`
	ShieldActive    bool       `json:"shield_active"`
	ShieldUsed      bool       `json:"shield_used"`
	CurrentStreak   int        `json:"current_streak"`
	OutOfHearts     bool       `json:"out_of_hearts"`
	Refill          RefillInfo `json:"refill"`
}

type UndoResult struct {
	Success        bool      `json:"success"`
	HeartsRestored int       `json:"hearts_restored"`
	ShieldRestored bool      `json:"shield_restored"`
	StreakRestored int       `json:"streak_restored"`
	HeartPool      HeartPool `json:"heart_pool"`
}

type SessionEndedEvent struct {
	ChallengeType       string `json:"challenge_type"`
	SessionID           string `json:"session_id"`
	Reason              string `json:"reason"`
	ChallengesCompleted int    `json:"challenges_completed"`
	ChallengesTotal     int    `json:"challenges_total"`
	HeartsRemaining     int    `json:"hearts_remaining"`
}

type ModalEvent struct {
	ChallengeType string `json:"challenge_type"`
	Modal         string `json:"modal"`
	Action        string `json:"action"`
	SessionID     string `json:"session_id,omitempty"`
}
