// Package config loads cochange settings from file, environment and
// defaults via viper.
package config

import (
	"errors"
	"fmt"
)

// Default values applied when neither config file nor environment set a key.
const (
	// DefaultHistoryWindow is the maximum number of leading commits walked
	// from the branch tip.
	DefaultHistoryWindow = 1000

	// DefaultReportTop is the number of top coupled pairs shown in the
	// terminal summary.
	DefaultReportTop = 20

	// DefaultOutputDir is where the CSV artifacts are written.
	DefaultOutputDir = "."
)

// ErrWindowTooSmall indicates a history window too small to form a single
// commit transition.
var ErrWindowTooSmall = errors.New("history window must be at least 2 commits")

// ErrTopNegative indicates a negative report row cap.
var ErrTopNegative = errors.New("report top must not be negative")

// Config is the top-level cochange configuration.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	History HistoryConfig `mapstructure:"history"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Report  ReportConfig  `mapstructure:"report"`
}

// HistoryConfig bounds the commit walk.
type HistoryConfig struct {
	Window int `mapstructure:"window"`
}

// FilterConfig holds the path rejection patterns. Empty means the built-in
// default pattern set.
type FilterConfig struct {
	Reject []string `mapstructure:"reject"`
}

// OutputConfig controls where and how artifacts are written.
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`
	Compress bool   `mapstructure:"compress"`
	Plot     bool   `mapstructure:"plot"`
}

// ReportConfig controls the terminal summary.
type ReportConfig struct {
	Top int `mapstructure:"top"`
}

// Validate checks value bounds.
func (c *Config) Validate() error {
	if c.History.Window < 2 {
		return fmt.Errorf("%w: got %d", ErrWindowTooSmall, c.History.Window)
	}

	if c.Report.Top < 0 {
		return fmt.Errorf("%w: got %d", ErrTopNegative, c.Report.Top)
	}

	return nil
}
