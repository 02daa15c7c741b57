// Package config loads wordiz settings from flags, environment variables
// and an optional YAML file.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	// Lang is the UI language; glosses are chosen for it too.
	Lang string `mapstructure:"lang" validate:"required,oneof=tr en de uk es"`

	// DataDir replaces the embedded unit library when set.
	DataDir string `mapstructure:"data_dir"`

	// Unit preselects a unit by name.
	Unit string `mapstructure:"unit"`

	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Practice PracticeConfig `mapstructure:"practice" validate:"required"`
}

// LogConfig controls the structured log output.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	// File receives the log. The TUI owns the terminal, so logs never go
	// to stdout.
	File string `mapstructure:"file" validate:"required"`
}

// PracticeConfig tunes the session engine.
type PracticeConfig struct {
	AutoAdvance        time.Duration `mapstructure:"auto_advance" validate:"gt=0,lte=10s"`
	RecallPresets      []int         `mapstructure:"recall_presets" validate:"required,min=1,dive,gte=1"`
	RecognitionPresets []int         `mapstructure:"recognition_presets" validate:"required,min=1,dive,gte=1"`
}
