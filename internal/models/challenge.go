package models

import "time"

type ChallengeSource string

const (
	SourceAPI   ChallengeSource = "api"
	SourceMock  ChallengeSource = "mock"
	SourceCache ChallengeSource = "cache"
)

type Challenge struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Language    string   `json:"language"`
	Level       string   `json:"level"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// ChallengeBatch is a set of challenges tagged with the tier that served it.
type ChallengeBatch struct {
	Challenges []Challenge     `json:"challenges"`
	Source     ChallengeSource `json:"source"`
	FetchedAt  time.Time       `json:"fetched_at"`
}

type ChallengeCacheEntry struct {
	Level         string      `json:"level"`
	ChallengeType string      `json:"challenge_type,omitempty"`
	Challenges    []Challenge `json:"challenges"`
	CachedAt      time.Time   `json:"cached_at"`
}

type ChallengeCounts map[string]int

type SupportedLanguage struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
