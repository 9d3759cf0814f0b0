package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)

	config, err := LoadConfig()
	req.NoError(err)

	req.Equal("INFO", config.LogLevel)
	req.Equal(time.Duration(0), config.CheckTimeout)
	req.Equal(200*time.Millisecond, config.RestartInterval)
	req.Equal(10*time.Second, config.MetricInterval)
	req.Nil(config.ExtraCensoredWords())
	req.Zero(config.DebugPort)

	r, err := config.CharacterRune()
	req.NoError(err)
	req.Equal('*', r)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CHECK_TIMEOUT", "2s")
	t.Setenv("CENSORED_WORDS", "troll,spam")
	t.Setenv("CHARACTER_REPLACEMENT", "#")

	config, err := LoadConfig()
	req.NoError(err)

	req.Equal("DEBUG", config.LogLevel)
	req.Equal(2*time.Second, config.CheckTimeout)
	req.Equal([]string{"troll", "spam"}, config.ExtraCensoredWords())
	r, err := config.CharacterRune()
	req.NoError(err)
	req.Equal('#', r)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "LOUD")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestConfig_CharacterRune_MustBeSingle(t *testing.T) {
	_, err := Config{CharReplacement: "**"}.CharacterRune()
	require.Error(t, err)
}

func TestLoadConfig_InvalidDebugPort(t *testing.T) {
	t.Setenv("DEBUG_PORT", "70000")

	_, err := LoadConfig()
	require.Error(t, err)
}
