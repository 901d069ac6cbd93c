package config

import (
	"path/filepath"
	"testing"

	"github.com/propgo/roadmap-engine/internal/calculation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, calculation.DefaultBaseYear, s.Engine.BaseYear)
	assert.Equal(t, "0.0.0.0:8080", s.Server.Addr())
	assert.Equal(t, "info", s.Logging.Level)
	assert.Equal(t, "text", s.Logging.Format)

	rules := s.Rules()
	defaults := calculation.DefaultRules()
	assert.Equal(t, defaults.BaseYear, rules.BaseYear)
	assert.True(t, defaults.DepositBuffer.Equal(rules.DepositBuffer))
	assert.True(t, defaults.MaxDSR.Equal(rules.MaxDSR))
}

func TestLoadSettings_File(t *testing.T) {
	s, err := LoadSettings("testdata/settings.yaml")
	require.NoError(t, err)

	assert.Equal(t, 2027, s.Engine.BaseYear)
	assert.Equal(t, 9090, s.Server.Port)
	assert.Equal(t, "0.0.0.0", s.Server.Host)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "json", s.Logging.Format)

	rules := s.Rules()
	assert.Equal(t, 2027, rules.BaseYear)
	assert.Equal(t, 2027, rules.AbsoluteYear(1))
	assert.True(t, rules.DepositBuffer.Equal(decimal.NewFromInt(50000)))
}

func TestLoadSettings_EnvOverride(t *testing.T) {
	t.Setenv("ROADMAP_SERVER_PORT", "7070")
	t.Setenv("ROADMAP_ENGINE_BASE_YEAR", "2031")

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, 7070, s.Server.Port)
	assert.Equal(t, 2031, s.Engine.BaseYear)
}

func TestLoadSettings_Errors(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("ROADMAP_ENGINE_BASE_YEAR", "25")
	_, err = LoadSettings("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_year")
}
