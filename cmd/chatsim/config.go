package main

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// SimConfig drives the simulation. Pipeline settings live in internal.Config.
type SimConfig struct {
	Producers int `envconfig:"SIM_PRODUCERS" default:"4" validate:"gte=1"`
	Messages  int `envconfig:"SIM_MESSAGES" default:"25" validate:"gte=1"`
	Worlds    int `envconfig:"SIM_WORLDS" default:"2" validate:"gte=1"`
	// SIM_CANCEL_RATIO is the share of events cancelled by their producer before posting
	CancelRatio float64 `envconfig:"SIM_CANCEL_RATIO" default:"0.1" validate:"gte=0,lte=1"`
	// SIM_MAX_CHECK_DELAY bounds the random latency of the slow permission check
	MaxCheckDelay time.Duration `envconfig:"SIM_MAX_CHECK_DELAY" default:"50ms" validate:"gte=0"`
	DrainTimeout  time.Duration `envconfig:"SIM_DRAIN_TIMEOUT" default:"5s" validate:"gt=0"`
	// SIM_MUTED lists participant names whose events are cancelled by the mute listener
	Muted []string `envconfig:"SIM_MUTED" default:"player-0"`
	// SIM_COLOURS enables colorized output for the summary
	Colours bool `envconfig:"SIM_COLOURS" default:"true"`
}

func LoadSimConfig() (SimConfig, error) {
	var cfg SimConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return SimConfig{}, err
	}
	return cfg, validator.New().Struct(cfg)
}
