// Package bank holds the static question bank served when the personalization
// API is disabled or unreachable.
package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/alipala/mytacoai-mobile/internal/models"
	"github.com/samber/lo"
)

//go:embed challenges.json
var raw []byte

var (
	once    sync.Once
	byLevel map[string][]models.Challenge
	loadErr error
)

func load() {
	var all []models.Challenge
	if err := json.Unmarshal(raw, &all); err != nil {
		loadErr = fmt.Errorf("failed to decode question bank: %w", err)
		return
	}
	byLevel = lo.GroupBy(all, func(c models.Challenge) string {
		return strings.ToLower(c.Level)
	})
}

// ForLevel returns the bank's challenges for a level, optionally narrowed to one
// challenge type and capped at limit (0 means no cap). Unknown levels fall back
// to beginner.
func ForLevel(level, challengeType string, limit int) ([]models.Challenge, error) {
	once.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}

	items, ok := byLevel[strings.ToLower(level)]
	if !ok {
		items = byLevel["beginner"]
	}

	if challengeType != "" {
		items = lo.Filter(items, func(c models.Challenge, _ int) bool {
			return c.Type == challengeType
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	out := make([]models.Challenge, len(items))
	copy(out, items)
	return out, nil
}

func Levels() []string {
	once.Do(load)
	return lo.Keys(byLevel)
}
