package config

import "sync"

// Store holds the active configuration shared by the router and vendors.
// Overlays can be applied at any time; reads always see a consistent copy.
type Store struct {
	mu  sync.RWMutex
	cfg Config
}

// NewStore creates a store seeded with cfg.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Get returns a copy of the current configuration. The maps are cloned so
// callers cannot mutate shared state through the returned value.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.clone()
}

// Set shallow-merges overlay into the current configuration. Zero-value
// fields in the overlay leave the prior value in place; map fields replace
// the whole prior map (no deep merge of individual entries).
func (s *Store) Set(overlay Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	merge(&s.cfg, overlay)
}

func (c Config) clone() Config {
	out := c
	if c.DataVendors != nil {
		out.DataVendors = make(map[string]string, len(c.DataVendors))
		for k, v := range c.DataVendors {
			out.DataVendors[k] = v
		}
	}
	if c.ToolVendors != nil {
		out.ToolVendors = make(map[string]string, len(c.ToolVendors))
		for k, v := range c.ToolVendors {
			out.ToolVendors[k] = v
		}
	}
	if c.Symbols != nil {
		out.Symbols = append([]string(nil), c.Symbols...)
	}
	return out
}

func merge(dst *Config, src Config) {
	if src.DataVendors != nil {
		dst.DataVendors = src.DataVendors
	}
	if src.ToolVendors != nil {
		dst.ToolVendors = src.ToolVendors
	}
	if src.TimeoutSec != 0 {
		dst.TimeoutSec = src.TimeoutSec
	}
	if src.CacheTTLSec != 0 {
		dst.CacheTTLSec = src.CacheTTLSec
	}
	if src.FinnhubAPIKey != "" {
		dst.FinnhubAPIKey = src.FinnhubAPIKey
	}
	if src.Symbols != nil {
		dst.Symbols = src.Symbols
	}
	if src.Proxy != "" {
		dst.Proxy = src.Proxy
	}
	if src.LLM.Model != "" {
		dst.LLM.Model = src.LLM.Model
	}
	if src.LLM.APIKey != "" {
		dst.LLM.APIKey = src.LLM.APIKey
	}
	if src.LLM.BaseURL != "" {
		dst.LLM.BaseURL = src.LLM.BaseURL
	}
	if src.LLM.Temperature != 0 {
		dst.LLM.Temperature = src.LLM.Temperature
	}
	if src.Telegram.BotToken != "" {
		dst.Telegram.BotToken = src.Telegram.BotToken
	}
	if src.Telegram.ChatID != "" {
		dst.Telegram.ChatID = src.Telegram.ChatID
	}
	if src.Schedule.DailyCron != "" {
		dst.Schedule.DailyCron = src.Schedule.DailyCron
	}
	if src.Database.SQLitePath != "" {
		dst.Database.SQLitePath = src.Database.SQLitePath
	}
}
