package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "finnhub,yahoo", cfg.DataVendors[CategoryCoreStock])
	require.Equal(t, "yahoo,finnhub", cfg.DataVendors[CategoryTechnical])
	require.Equal(t, 10, cfg.TimeoutSec)
	require.Equal(t, []string{"AAPL"}, cfg.Symbols)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := `
finnhub_api_key: from-file
timeout: 20
symbols: [AAPL, MSFT]
data_vendors:
  core_stock_apis: yahoo,finnhub
llm:
  model: deepseek-chat
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	t.Setenv("FINNHUB_API_KEY", "from-env")
	t.Setenv("SYMBOLS", "NVDA, TSLA")
	t.Setenv("TIMEOUT_SEC", "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.FinnhubAPIKey)
	require.Equal(t, []string{"NVDA", "TSLA"}, cfg.Symbols)
	require.Equal(t, 5, cfg.TimeoutSec)
	require.Equal(t, "yahoo,finnhub", cfg.DataVendors[CategoryCoreStock])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with symbol", func(c *Config) { c.Symbols = []string{"AAPL"} }, false},
		{"no symbols", func(c *Config) { c.Symbols = nil }, true},
		{"zero timeout", func(c *Config) { c.Symbols = []string{"AAPL"}; c.TimeoutSec = 0 }, true},
		{"bot token without chat id", func(c *Config) {
			c.Symbols = []string{"AAPL"}
			c.Telegram.BotToken = "t"
		}, true},
		{"bot token with chat id", func(c *Config) {
			c.Symbols = []string{"AAPL"}
			c.Telegram.BotToken = "t"
			c.Telegram.ChatID = "1"
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"finnhub,yahoo", []string{"finnhub", "yahoo"}},
		{" finnhub , yahoo ", []string{"finnhub", "yahoo"}},
		{"finnhub,,yahoo,", []string{"finnhub", "yahoo"}},
		{"", []string{}},
		{" , ", []string{}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, SplitList(tt.in), "input %q", tt.in)
	}
}
