// Package config provides configuration loading and validation for the
// pipeline and server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration. Secrets come from the
// environment; source definitions come from a YAML file.
type Config struct {
	// Storage
	DatabaseURL string `validate:"required"`
	RedisURL    string

	// Telegram
	TelegramBotToken string
	TelegramChatID   string

	// Server
	Port       int    `validate:"min=1,max=65535"`
	CronSecret string

	// Pipeline behavior
	SubsetSize    int  `validate:"min=1"`
	FetchArticles bool
	Verbose       bool

	// Sources
	SourcesFile string
	Sources     []SourceConfig
}

// SourceConfig defines one adapter in the sources file.
type SourceConfig struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type" validate:"required,oneof=rss remoteok arbeitnow offcampus aggregator"`
	URL      string `yaml:"url"`
	Selector string `yaml:"selector"`
	Category string `yaml:"category"`
}

type sourcesFile struct {
	Sources []SourceConfig `yaml:"sources"`
}

// Load reads configuration from the environment and the sources file.
// Call godotenv before this when a .env file is in play.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		CronSecret:       os.Getenv("CRON_SECRET"),
		SourcesFile:      os.Getenv("SOURCES_FILE"),
		Port:             8080,
		SubsetSize:       3,
		FetchArticles:    true,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("FETCH_SUBSET_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_SUBSET_SIZE %q: %w", v, err)
		}
		cfg.SubsetSize = n
	}
	if v := os.Getenv("FETCH_ARTICLES"); v != "" {
		cfg.FetchArticles = v == "1" || v == "true"
	}
	if v := os.Getenv("VERBOSE"); v != "" {
		cfg.Verbose = v == "1" || v == "true"
	}

	if cfg.SourcesFile == "" {
		cfg.SourcesFile = "sources.yaml"
	}
	sources, err := loadSources(cfg.SourcesFile)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSources parses the YAML source definitions. A missing file is not an
// error; the fetch command just has nothing to do.
func loadSources(path string) ([]SourceConfig, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sources file %s: %w", path, err)
	}

	var f sourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse sources YAML: %w", err)
	}
	return f.Sources, nil
}

// Validate checks the configuration, including every source definition.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	for i, src := range c.Sources {
		if err := v.Struct(src); err != nil {
			return fmt.Errorf("config error: source %d (%s): %w", i, src.Name, err)
		}
		switch src.Type {
		case "rss", "offcampus", "aggregator":
			if src.URL == "" {
				return fmt.Errorf("config error: source %d (%s): type %s requires a url", i, src.Name, src.Type)
			}
		}
	}

	if c.TelegramBotToken != "" && c.TelegramChatID == "" {
		return fmt.Errorf("config error: TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	return nil
}
