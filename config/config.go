package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the origin serving the library list pages
const DefaultBaseURL = "https://accounts.booth.pm"

// Config represents the extractor configuration
type Config struct {
	Site struct {
		BaseURL   string `yaml:"base_url"`
		UserAgent string `yaml:"user_agent"`
		// Cookie is forwarded verbatim on every list request
		Cookie string `yaml:"cookie"`
	} `yaml:"site"`

	Scraper struct {
		PageDelay      time.Duration `yaml:"page_delay"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
	} `yaml:"scraper"`

	Browser struct {
		Enabled  bool   `yaml:"enabled"`
		Headless bool   `yaml:"headless"`
		Bin      string `yaml:"bin"`
	} `yaml:"browser"`

	Output struct {
		SpreadsheetURL  string `yaml:"spreadsheet_url"`
		CredentialsPath string `yaml:"credentials_path"`
	} `yaml:"output"`

	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`

	Selectors Selectors `yaml:"selectors"`
}

// LoadConfig loads configuration from a YAML file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Site.BaseURL = DefaultBaseURL
	cfg.Site.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	cfg.Scraper.PageDelay = 1000 * time.Millisecond
	cfg.Scraper.RequestTimeout = 0
	cfg.Browser.Enabled = false
	cfg.Browser.Headless = true
	cfg.Selectors = DefaultSelectors()
	return cfg
}

// ApplyEnv overrides secrets from the environment
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("BOOTH_COOKIE")); v != "" {
		c.Site.Cookie = v
	}
	if v := strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")); v != "" {
		c.Telegram.Token = v
	}
	if v := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Telegram.ChatID = id
		}
	}
	if v := strings.TrimSpace(os.Getenv("BOOTH_SPREADSHEET_URL")); v != "" {
		c.Output.SpreadsheetURL = v
	}
}

// Validate checks the configuration, including every selector in the table
func (c *Config) Validate() error {
	if c.Site.BaseURL == "" {
		return fmt.Errorf("site.base_url must not be empty")
	}
	if c.Scraper.PageDelay < 0 {
		return fmt.Errorf("scraper.page_delay must not be negative")
	}
	if c.Scraper.RequestTimeout < 0 {
		return fmt.Errorf("scraper.request_timeout must not be negative")
	}
	if err := c.Selectors.Validate(); err != nil {
		return fmt.Errorf("invalid selectors: %w", err)
	}
	return nil
}
