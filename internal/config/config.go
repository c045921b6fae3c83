package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// WindowConfig holds the window settings
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

type Config struct {
	Window           WindowConfig `json:"window" mapstructure:"window"`
	TargetFPS        int          `json:"targetFPS" mapstructure:"targetFPS"`
	Scene            string       `json:"scene" mapstructure:"scene"`
	MouseSensitivity float32      `json:"mouseSensitivity" mapstructure:"mouseSensitivity"`
	Seed             uint64       `json:"seed" mapstructure:"seed"`
	LogLevel         string       `json:"logLevel" mapstructure:"logLevel"`
	Debug            bool         `json:"debug" mapstructure:"debug"`
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "demos3d")
	viper.SetDefault("targetFPS", 120)
	viper.SetDefault("scene", "obstacle")
	viper.SetDefault("mouseSensitivity", 0.1)
	viper.SetDefault("seed", 0)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("debug", false)
}

// Load sets defaults and, when path is not empty, reads the JSON config
// file at path on top of them.
func Load(path string) error {
	SetDefaults()
	if path == "" {
		return nil
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// NewFlagSet declares the command line flags.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("scene", "obstacle", "scene to run (obstacle, shooter, simple)")
	fs.String("config", "", "path to a JSON config file")
	fs.String("log-level", "info", "log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	fs.Bool("debug", false, "start with collider outlines on")
	return fs
}

// BindFlags makes explicitly set flags override file and default values.
func BindFlags(fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"scene":    "scene",
		"logLevel": "log-level",
		"debug":    "debug",
	}
	for key, flag := range bindings {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// Get decodes the current settings.
func Get() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
