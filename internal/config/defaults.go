package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/blockfall.yaml.
func Default() Config {
	return Config{
		Gravity: GravityConfig{
			Interval:    800 * time.Millisecond,
			MinInterval: time.Millisecond,
			AccelNum:    499,
			AccelDen:    500,
		},
		DAS: DASConfig{
			Delay: 60 * time.Millisecond,
		},
		Spawn: SpawnConfig{
			Column: 3,
			Row:    18,
		},
		Preview: 5,
		Terminal: TerminalConfig{
			TickRate:     60,
			ReleaseAfter: 90 * time.Millisecond,
		},
		Window: WindowConfig{
			CellSize: 28,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
