package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	CheckTimeout    time.Duration `env:"CHECK_TIMEOUT,default=0s" validate:"gte=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=10s" validate:"gt=0"`
	CharReplacement string        `env:"CHARACTER_REPLACEMENT,default=*"`
	CensoredWords   string        `env:"CENSORED_WORDS"`
	DebugPort       int           `env:"DEBUG_PORT,default=0" validate:"gte=0,lte=65535"`
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	config.LogLevel = strings.ToUpper(config.LogLevel)
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}

// ExtraCensoredWords splits CENSORED_WORDS on commas.
func (c Config) ExtraCensoredWords() []string {
	if strings.TrimSpace(c.CensoredWords) == "" {
		return nil
	}
	return strings.Split(c.CensoredWords, ",")
}
