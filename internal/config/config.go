// Package config provides YAML-based configuration loading for the engine
// timings and the hosts around it.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Grid bounds the spawn position is validated against.
const (
	gridWidth  = 10
	gridHeight = 20
	maxPreview = 14 // two full bags
)

// Config contains all blockfall settings.
type Config struct {
	Gravity  GravityConfig  `yaml:"gravity"`
	DAS      DASConfig      `yaml:"das"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Preview  int            `yaml:"preview"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
}

// GravityConfig defines the gravity tick and its acceleration.
type GravityConfig struct {
	Interval    time.Duration `yaml:"interval"`
	MinInterval time.Duration `yaml:"min_interval"`
	AccelNum    int64         `yaml:"accel_num"`
	AccelDen    int64         `yaml:"accel_den"`
}

// DASConfig defines delayed auto-shift timing.
type DASConfig struct {
	Delay time.Duration `yaml:"delay"`
}

// SpawnConfig is where new pieces appear (rotation is always 0).
type SpawnConfig struct {
	Column int `yaml:"column"`
	Row    int `yaml:"row"`
}

// TerminalConfig tunes the terminal host.
type TerminalConfig struct {
	TickRate     int           `yaml:"tick_rate"`
	ReleaseAfter time.Duration `yaml:"release_after"`
}

// WindowConfig tunes the window host.
type WindowConfig struct {
	CellSize int `yaml:"cell_size"`
}

// Validate reports every setting that would break the engine or a host.
func (c Config) Validate() error {
	var errs []error

	if c.Gravity.Interval <= 0 {
		errs = append(errs, fmt.Errorf("gravity.interval must be positive, got %s", c.Gravity.Interval))
	}
	if c.Gravity.MinInterval <= 0 {
		errs = append(errs, fmt.Errorf("gravity.min_interval must be positive, got %s", c.Gravity.MinInterval))
	}
	if c.Gravity.AccelNum <= 0 || c.Gravity.AccelDen <= 0 || c.Gravity.AccelNum > c.Gravity.AccelDen {
		errs = append(errs, fmt.Errorf("gravity acceleration %d/%d must be in (0, 1]", c.Gravity.AccelNum, c.Gravity.AccelDen))
	}
	if c.DAS.Delay < 0 {
		errs = append(errs, fmt.Errorf("das.delay must not be negative, got %s", c.DAS.Delay))
	}
	if c.Spawn.Column < 0 || c.Spawn.Column >= gridWidth || c.Spawn.Row < 0 || c.Spawn.Row >= gridHeight {
		errs = append(errs, fmt.Errorf("spawn (%d, %d) is outside the %dx%d grid", c.Spawn.Column, c.Spawn.Row, gridWidth, gridHeight))
	}
	if c.Preview < 0 || c.Preview > maxPreview {
		errs = append(errs, fmt.Errorf("preview must be in [0, %d], got %d", maxPreview, c.Preview))
	}
	if c.Terminal.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("terminal.tick_rate must be positive, got %d", c.Terminal.TickRate))
	}
	if c.Terminal.ReleaseAfter <= 0 {
		errs = append(errs, fmt.Errorf("terminal.release_after must be positive, got %s", c.Terminal.ReleaseAfter))
	}
	if c.Window.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("window.cell_size must be positive, got %d", c.Window.CellSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
