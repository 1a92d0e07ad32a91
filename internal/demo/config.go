package demo

import (
	"fmt"
	"strings"
	"time"
)

// Preset controls demo playback pacing.
type Preset string

const (
	PresetQuick  Preset = "quick"
	PresetMedium Preset = "medium"
	PresetSlow   Preset = "slow"
)

func ParsePreset(value string) (Preset, error) {
	switch Preset(strings.ToLower(strings.TrimSpace(value))) {
	case PresetQuick, PresetMedium, PresetSlow:
		return Preset(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid demo preset %q (valid: quick, medium, slow)", value)
	}
}

// Config controls demo playback behavior.
type Config struct {
	Scenario  Scenario
	Preset    Preset
	StepDelay time.Duration
}

var (
	mediumStepDelay = 400 * time.Millisecond
	slowStepDelay   = 1500 * time.Millisecond
)

// NewConfig builds a playback config for a scenario at the given pace.
func NewConfig(scenario Scenario, preset Preset) (Config, error) {
	if _, err := Script(scenario); err != nil {
		return Config{}, err
	}

	var delay time.Duration
	switch preset {
	case PresetQuick:
		delay = 0
	case PresetMedium:
		delay = mediumStepDelay
	case PresetSlow:
		delay = slowStepDelay
	default:
		return Config{}, fmt.Errorf("unknown demo preset %q", preset)
	}

	return Config{
		Scenario:  scenario,
		Preset:    preset,
		StepDelay: delay,
	}, nil
}
