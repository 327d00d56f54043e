package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("MAX_INPUT_LENGTH", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultMaxInputLength, cfg.MaxInputLength)
	assert.False(t, cfg.IsProduction())
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"valid value", "250", 250},
		{"non-numeric falls back", "lots", defaultMaxInputLength},
		{"zero falls back", "0", defaultMaxInputLength},
		{"negative falls back", "-5", defaultMaxInputLength},
		{"empty falls back", "", defaultMaxInputLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MAX_INPUT_LENGTH", tt.value)
			assert.Equal(t, tt.expected, Load().MaxInputLength)
		})
	}
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	assert.True(t, Load().IsProduction())
}
