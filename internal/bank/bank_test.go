package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		level         string
		challengeType string
		limit         int
		check         func(*testing.T, int, string)
	}{
		{
			name:  "beginner full bank",
			level: "beginner",
			check: func(t *testing.T, n int, _ string) { assert.Equal(t, 8, n) },
		},
		{
			name:  "case insensitive level",
			level: "ADVANCED",
			check: func(t *testing.T, n int, lvl string) {
				assert.Equal(t, 5, n)
				assert.Equal(t, "advanced", lvl)
			},
		},
		{
			name:          "filtered by type",
			level:         "beginner",
			challengeType: "grammar",
			check:         func(t *testing.T, n int, _ string) { assert.Equal(t, 3, n) },
		},
		{
			name:  "limit applied",
			level: "intermediate",
			limit: 2,
			check: func(t *testing.T, n int, _ string) { assert.Equal(t, 2, n) },
		},
		{
			name:  "unknown level falls back to beginner",
			level: "expert",
			check: func(t *testing.T, n int, lvl string) {
				assert.Equal(t, 8, n)
				assert.Equal(t, "beginner", lvl)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ForLevel(tt.level, tt.challengeType, tt.limit)
			require.NoError(t, err)
			require.NotEmpty(t, got)
			tt.check(t, len(got), got[0].Level)
			if tt.challengeType != "" {
				for _, c := range got {
					assert.Equal(t, tt.challengeType, c.Type)
				}
			}
		})
	}
}

func TestForLevel_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first, err := ForLevel("beginner", "", 0)
	require.NoError(t, err)
	first[0].ID = "mutated"

	second, err := ForLevel("beginner", "", 0)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].ID)
}

func TestLevels(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t, []string{"beginner", "intermediate", "advanced"}, Levels())
}
