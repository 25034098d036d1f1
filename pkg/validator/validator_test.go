package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storage struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite3 postgres"`
	DSN    string `mapstructure:"dsn" validate:"required"`
}

type settings struct {
	Storage storage `mapstructure:"storage"`
	Retries int     `validate:"min=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      interface{}
		wantErr []string
	}{
		{
			name: "valid",
			in:   settings{Storage: storage{Driver: "sqlite3", DSN: "file::memory:"}},
		},
		{
			name: "reports config keys",
			in:   settings{Storage: storage{Driver: "mysql"}, Retries: -1},
			wantErr: []string{
				"Field: storage.driver, Tag: oneof, Param: sqlite3 postgres",
				"Field: storage.dsn, Tag: required",
				"Field: Retries, Tag: min, Param: 0",
			},
		},
		{
			name:    "not a struct",
			in:      42,
			wantErr: []string{"validation failed"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
