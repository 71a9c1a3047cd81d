package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Spring models understood by Spring.Model.
const (
	ModelLinear = "linear"
	ModelDamped = "damped"
)

// Config holds application configuration.
type Config struct {
	Spring SpringConfig
	UI     UIConfig
	Log    LogConfig
}

// SpringConfig selects and tunes the snap animation.
type SpringConfig struct {
	Model     string
	Frequency float64
	Damping   float64
}

// UIConfig holds presentation settings.
type UIConfig struct {
	FPS   int
	Style string
	Mouse string
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	File string
}

// Load reads configuration from file and env. Env var overrides use prefix MDSHEET_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("spring.model", ModelLinear)
	v.SetDefault("spring.frequency", 6.0)
	v.SetDefault("spring.damping", 1.0)
	v.SetDefault("ui.fps", 60)
	v.SetDefault("ui.style", "tokyo-night")
	v.SetDefault("ui.mouse", "cell")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MDSHEET_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "mdsheet"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MDSHEET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Spring.Model = strings.ToLower(strings.TrimSpace(c.Spring.Model))
	c.UI.Mouse = strings.ToLower(strings.TrimSpace(c.UI.Mouse))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Spring.Model {
	case ModelLinear, ModelDamped:
	default:
		return fmt.Errorf("invalid spring.model %q: want %q or %q", c.Spring.Model, ModelLinear, ModelDamped)
	}
	if c.Spring.Frequency <= 0 || c.Spring.Damping < 0 {
		return fmt.Errorf("invalid spring parameters: frequency %v, damping %v", c.Spring.Frequency, c.Spring.Damping)
	}
	if c.UI.FPS < 1 || c.UI.FPS > 240 {
		return fmt.Errorf("invalid ui.fps %d: want 1..240", c.UI.FPS)
	}
	switch c.UI.Mouse {
	case "cell", "all":
	default:
		return fmt.Errorf("invalid ui.mouse %q: want \"cell\" or \"all\"", c.UI.Mouse)
	}
	return nil
}
