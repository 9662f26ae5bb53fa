// Package config loads sfltran settings from an optional YAML/TOML/JSON file
// and SFLTRAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "SFLTRAN"

type OllamaConfig struct {
	URL   string `mapstructure:"url"`
	Model string `mapstructure:"model"`
}

type GoogleConfig struct {
	Credentials string `mapstructure:"credentials"`
	ProjectID   string `mapstructure:"project_id"`
	APIKey      string `mapstructure:"api_key"`
}

type MyMemoryConfig struct {
	Email string `mapstructure:"email"`
}

type Config struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	Services    []string      `mapstructure:"services"`
	Register    string        `mapstructure:"register"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts"`

	// DetectLanguages narrows "auto" source detection; empty means all.
	DetectLanguages []string `mapstructure:"detect_languages"`

	Ollama   OllamaConfig   `mapstructure:"ollama"`
	Google   GoogleConfig   `mapstructure:"google"`
	MyMemory MyMemoryConfig `mapstructure:"mymemory"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetDefault("services", []string{"stub"})
	v.SetDefault("register", "")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("max_attempts", 1)
	v.SetDefault("detect_languages", []string{})
	v.SetDefault("ollama.url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.2")
	v.SetDefault("google.credentials", "")
	v.SetDefault("google.project_id", "")
	v.SetDefault("google.api_key", "")
	v.SetDefault("mymemory.email", "")
}

// Load reads configFile when given, otherwise looks for .sfltran.* in the
// working directory and $HOME. A missing default file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".sfltran")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}
