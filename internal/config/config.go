package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage   StorageConfig
	Questions QuestionsConfig
	Log       LogConfig
	UI        UIConfig
}

// StorageConfig holds sqlite settings. An empty Path keeps everything in memory.
type StorageConfig struct {
	Path string
}

// QuestionsConfig points at an optional bank file replacing the built-in seed.
type QuestionsConfig struct {
	File string
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Welcome string
	NoColor bool `mapstructure:"no_color"`
}

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// Path returns the config file location. QUIZGAME_CONFIG overrides the default.
func Path() string {
	if p := os.Getenv("QUIZGAME_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(home(), ".config", "quizgame", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.path", "")
	v.SetDefault("questions.file", "")
	v.SetDefault("log.path", filepath.Join(home(), ".local", "state", "quizgame", "quizgame.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.welcome", "Welcome to the Quiz Game")
	v.SetDefault("ui.no_color", false)
}

// Defaults returns the configuration used when neither file nor env set a key.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from file and env. Env var overrides use prefix QUIZGAME_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("QUIZGAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// a missing file is fine; a malformed one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("questions.file", cfg.Questions.File)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.welcome", cfg.UI.Welcome)
	v.Set("ui.no_color", cfg.UI.NoColor)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// WriteDefault saves Defaults to Path when no config file exists yet and
// reports whether it wrote one.
func WriteDefault() (bool, error) {
	if _, err := os.Stat(Path()); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if err := Save(Defaults()); err != nil {
		return false, err
	}
	return true, nil
}
