package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "aperture/internal/platform/errors"
)

const (
	EnvPrefix = "APERTURE"
	stateDir  = ".aperture"
)

type Config struct {
	VaultPath        string
	DBPath           string
	LogPath          string
	LogLevel         string
	SummarySentences int
	NewsInterval     time.Duration
	SplashDelay      time.Duration
	WelcomeDelay     time.Duration
	SignupDelay      time.Duration
	DemoEmail        string
	DemoPassword     string
}

// StateDir is where aperture keeps files that are not part of the vault notes.
func StateDir(vaultPath string) string {
	return filepath.Join(vaultPath, stateDir)
}

// Load resolves configuration for a vault: defaults, then
// <vault>/.aperture/config.yaml, then <vault>/.env, then APERTURE_* variables.
func Load(vaultPath string) (Config, error) {
	if strings.TrimSpace(vaultPath) == "" {
		return Config{}, fmt.Errorf("vault path is required")
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("db_path", filepath.Join(StateDir(vaultPath), "aperture.db"))
	v.SetDefault("log_path", filepath.Join(StateDir(vaultPath), "logs", "aperture.log"))
	v.SetDefault("log_level", "info")
	v.SetDefault("summary_sentences", 3)
	v.SetDefault("news_interval", 3*time.Second)
	v.SetDefault("splash_delay", 2*time.Second)
	v.SetDefault("welcome_delay", 3*time.Second)
	v.SetDefault("signup_delay", 2*time.Second)
	v.SetDefault("demo_email", "")
	v.SetDefault("demo_password", "")

	v.SetConfigFile(filepath.Join(StateDir(vaultPath), "config.yaml"))
	if err := v.ReadInConfig(); err != nil && !isMissingFile(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	dotEnvPath := filepath.Join(vaultPath, ".env")
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("stat %s: %w", dotEnvPath, err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfg := Config{
		VaultPath:        vaultPath,
		DBPath:           v.GetString("db_path"),
		LogPath:          v.GetString("log_path"),
		LogLevel:         strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		SummarySentences: v.GetInt("summary_sentences"),
		NewsInterval:     v.GetDuration("news_interval"),
		SplashDelay:      v.GetDuration("splash_delay"),
		WelcomeDelay:     v.GetDuration("welcome_delay"),
		SignupDelay:      v.GetDuration("signup_delay"),
		DemoEmail:        strings.TrimSpace(v.GetString("demo_email")),
		DemoPassword:     v.GetString("demo_password"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SummarySentences <= 0 {
		return fmt.Errorf("summary_sentences must be positive: %w", apperrors.ErrInvalidInput)
	}
	for name, d := range map[string]time.Duration{
		"news_interval": c.NewsInterval,
		"splash_delay":  c.SplashDelay,
		"welcome_delay": c.WelcomeDelay,
		"signup_delay":  c.SignupDelay,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive: %w", name, apperrors.ErrInvalidInput)
		}
	}
	return nil
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
