package config

import (
	"fmt"
	"strings"

	"github.com/propgo/roadmap-engine/internal/calculation"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Settings is the application configuration for the CLI and server
type Settings struct {
	Engine  EngineSettings  `mapstructure:"engine"`
	Server  ServerSettings  `mapstructure:"server"`
	Logging LoggingSettings `mapstructure:"logging"`
}

// EngineSettings overrides selected lending rules
type EngineSettings struct {
	BaseYear      int     `mapstructure:"base_year"`
	DepositBuffer float64 `mapstructure:"deposit_buffer"`
	MaxDSR        float64 `mapstructure:"max_dsr"` // Percent
	Debug         bool    `mapstructure:"debug"`
}

// ServerSettings holds HTTP listener settings
type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns host:port
func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingSettings holds logging settings
type LoggingSettings struct {
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // "text" or "json"
}

// LoadSettings reads settings from path (optional) and ROADMAP_* environment
// variables, e.g. ROADMAP_SERVER_PORT.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ROADMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if s.Engine.BaseYear < 1900 {
		return nil, fmt.Errorf("engine.base_year must be a calendar year, got %d", s.Engine.BaseYear)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.base_year", calculation.DefaultBaseYear)
	v.SetDefault("engine.deposit_buffer", 40000)
	v.SetDefault("engine.max_dsr", 80)
	v.SetDefault("engine.debug", false)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Rules builds projector rules from the defaults plus engine overrides
func (s *Settings) Rules() calculation.Rules {
	rules := calculation.DefaultRules()
	rules.BaseYear = s.Engine.BaseYear
	rules.DepositBuffer = decimal.NewFromFloat(s.Engine.DepositBuffer)
	rules.MaxDSR = decimal.NewFromFloat(s.Engine.MaxDSR)
	return rules
}
