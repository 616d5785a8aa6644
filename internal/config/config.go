package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vendor category names used as data_vendors keys.
const (
	CategoryCoreStock   = "core_stock_apis"
	CategoryTechnical   = "technical_indicators"
	CategoryFundamental = "fundamental_data"
)

// Config holds all application configuration.
//
// DataVendors maps a capability category to a comma-separated vendor
// priority list; ToolVendors maps a single capability name to its own list
// and takes precedence over the category-level entry. CacheTTLSec is
// reserved: no cache is implemented, the option is accepted and ignored.
type Config struct {
	DataVendors map[string]string `yaml:"data_vendors"`
	ToolVendors map[string]string `yaml:"tool_vendors"`
	TimeoutSec  int               `yaml:"timeout"`
	CacheTTLSec int               `yaml:"cache_ttl"`

	FinnhubAPIKey string   `yaml:"finnhub_api_key"`
	Symbols       []string `yaml:"symbols"`
	Proxy         string   `yaml:"proxy"`

	LLM struct {
		Model       string  `yaml:"model"`
		APIKey      string  `yaml:"api_key"`
		BaseURL     string  `yaml:"base_url"`
		Temperature float64 `yaml:"temperature"`
	} `yaml:"llm"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Default returns the fixed default configuration.
func Default() Config {
	cfg := Config{
		DataVendors: map[string]string{
			CategoryCoreStock:   "finnhub,yahoo",
			CategoryTechnical:   "yahoo,finnhub",
			CategoryFundamental: "finnhub",
		},
		ToolVendors: map[string]string{},
		TimeoutSec:  10,
		CacheTTLSec: 300,
	}
	cfg.LLM.Model = "deepseek-chat"
	cfg.LLM.BaseURL = "https://api.deepseek.com/v1"
	cfg.LLM.Temperature = 0.1
	cfg.Schedule.DailyCron = "0 0 18 * * 1-5"
	cfg.Database.SQLitePath = "data/market_analyst.db"
	return cfg
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error: defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		cfg.FinnhubAPIKey = v
	}
	if v := os.Getenv("DEEPSEEK_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("DEEPSEEK_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SYMBOLS"); v != "" {
		cfg.Symbols = SplitList(v)
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("TIMEOUT_SEC"); v != "" {
		var x int
		if _, err := fmt.Sscanf(v, "%d", &x); err == nil && x > 0 {
			cfg.TimeoutSec = x
		}
	}

	// Defaults
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = []string{"AAPL"}
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols is required")
	}
	if c.TimeoutSec <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}

// SplitList splits a comma-separated value list, trimming whitespace around
// each token and dropping empty ones.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
