package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"setup-cli/pkg/models"
)

func TestDetectFrom(t *testing.T) {
	tests := []struct {
		name        string
		environment map[string]string
		want        models.Mode
	}{
		{name: "test selects automated", environment: map[string]string{EnvVar: "test"}, want: models.ModeAutomated},
		{name: "unset is interactive", environment: map[string]string{}, want: models.ModeInteractive},
		{name: "production is interactive", environment: map[string]string{EnvVar: "production"}, want: models.ModeInteractive},
		{name: "match is case sensitive", environment: map[string]string{EnvVar: "TEST"}, want: models.ModeInteractive},
		{name: "other variables ignored", environment: map[string]string{"NODE_ENV": "test"}, want: models.ModeInteractive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFrom(tt.environment)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_ProcessEnvironment(t *testing.T) {
	t.Setenv(EnvVar, "test")

	got, err := Detect()
	require.NoError(t, err)
	assert.Equal(t, models.ModeAutomated, got)
	assert.Equal(t, "automated", got.String())
}
