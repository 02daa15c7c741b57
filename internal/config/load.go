package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalidConfig wraps every loading or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is prepended to every environment variable, e.g. WORDIZ_LANG.
const EnvPrefix = "WORDIZ"

const appDir = "wordiz"

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config file. It must exist when set.
	File string

	// Overrides are applied above every other source. Keys use dotted
	// paths ("practice.auto_advance"). Flags feed in here.
	Overrides map[string]any
}

// Load reads configuration in priority order: overrides, WORDIZ_*
// environment variables, the config file, then defaults.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, opts.File, err)
		}
	} else if path := DefaultFile(); path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows; bind the rest.
	for _, key := range []string{"data_dir", "unit"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("%w: bind %s: %v", ErrInvalidConfig, key, err)
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Lang = strings.ToLower(strings.TrimSpace(cfg.Lang))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("lang", "en")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(stateDir(), appDir, "wordiz.log"))
	v.SetDefault("practice.auto_advance", "800ms")
	v.SetDefault("practice.recall_presets", []int{10, 20, 50})
	v.SetDefault("practice.recognition_presets", []int{10, 15, 20})
}

// DefaultFile returns the config file looked up when none is given, or ""
// if no config directory can be determined.
func DefaultFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, appDir, "config.yaml")
}

// stateDir follows the XDG base directory layout.
func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}
	return os.TempDir()
}
