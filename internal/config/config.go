package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Scanner       ScannerConfig       `yaml:"scanner"`
	CoinMarketCap CoinMarketCapConfig `yaml:"coinmarketcap"`
	AI            AIConfig            `yaml:"ai"`
	Trading       TradingConfig       `yaml:"trading"`
	Markets       MarketsConfig       `yaml:"markets"`
	Telegram      TelegramConfig      `yaml:"telegram"`
	Web           WebConfig           `yaml:"web"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Logging       LoggingConfig       `yaml:"logging"`
}

type ScannerConfig struct {
	Cookie         string `yaml:"cookie"`
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type CoinMarketCapConfig struct {
	APIKey string `yaml:"api_key"`
}

// AIProvider is one OpenAI-compatible endpoint in the sentiment cascade.
type AIProvider struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

type AIConfig struct {
	Providers      []AIProvider `yaml:"providers"`
	TimeoutSeconds int          `yaml:"timeout_seconds"`
}

type TradingConfig struct {
	TradeAmountUSD     float64 `yaml:"trade_amount_usd"`
	TakeProfitPct      float64 `yaml:"take_profit_pct"`
	StopLossPct        float64 `yaml:"stop_loss_pct"`
	MinAIScore         int     `yaml:"min_ai_score"`
	MaxOpenPositions   int     `yaml:"max_open_positions"`
	BuyCooldownSeconds int     `yaml:"buy_cooldown_seconds"`
	ScorePauseSeconds  int     `yaml:"score_pause_seconds"`

	CryptoDropPct  float64 `yaml:"crypto_drop_pct"`
	CryptoTier1Pct float64 `yaml:"crypto_tier1_pct"`
	USADropPct     float64 `yaml:"usa_drop_pct"`
	USATier1Pct    float64 `yaml:"usa_tier1_pct"`
	MervalDropPct  float64 `yaml:"merval_drop_pct"`
	MervalTier1Pct float64 `yaml:"merval_tier1_pct"`
}

type MarketsConfig struct {
	USWatchlist     []string `yaml:"us_watchlist"`
	MervalWatchlist []string `yaml:"merval_watchlist"`
	// CedearWhitelist keeps locally relevant names in Tier-1 even when the
	// scanner labels them as depositary receipts.
	CedearWhitelist []string `yaml:"cedear_whitelist"`
}

type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type WebConfig struct {
	Port int `yaml:"port"`
}

type ScheduleConfig struct {
	HuntHours       []int `yaml:"hunt_hours"`
	GuardianMinutes int   `yaml:"guardian_minutes"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Scanner.UserAgent == "" {
		cfg.Scanner.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"
	}
	if cfg.Scanner.TimeoutSeconds == 0 {
		cfg.Scanner.TimeoutSeconds = 10
	}
	if cfg.CoinMarketCap.APIKey == "" {
		cfg.CoinMarketCap.APIKey = os.Getenv("CMC_API_KEY")
	}

	if len(cfg.AI.Providers) == 0 {
		cfg.AI.Providers = []AIProvider{{
			Name:    "gemini",
			BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai/",
			Model:   "gemini-2.5-flash",
		}}
	}
	for i := range cfg.AI.Providers {
		if cfg.AI.Providers[i].APIKey == "" && cfg.AI.Providers[i].Name == "gemini" {
			cfg.AI.Providers[i].APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if cfg.AI.TimeoutSeconds == 0 {
		cfg.AI.TimeoutSeconds = 60
	}

	if cfg.Trading.TradeAmountUSD == 0 {
		cfg.Trading.TradeAmountUSD = 100
	}
	if cfg.Trading.TakeProfitPct == 0 {
		cfg.Trading.TakeProfitPct = 5.0
	}
	if cfg.Trading.StopLossPct == 0 {
		cfg.Trading.StopLossPct = -3.0
	}
	if cfg.Trading.MinAIScore == 0 {
		cfg.Trading.MinAIScore = 65
	}
	if cfg.Trading.MaxOpenPositions == 0 {
		cfg.Trading.MaxOpenPositions = 5
	}
	if cfg.Trading.BuyCooldownSeconds == 0 {
		cfg.Trading.BuyCooldownSeconds = 10
	}
	if cfg.Trading.ScorePauseSeconds == 0 {
		cfg.Trading.ScorePauseSeconds = 2
	}
	if cfg.Trading.CryptoDropPct == 0 {
		cfg.Trading.CryptoDropPct = -3.0
	}
	if cfg.Trading.CryptoTier1Pct == 0 {
		cfg.Trading.CryptoTier1Pct = -2.0
	}
	if cfg.Trading.USADropPct == 0 {
		cfg.Trading.USADropPct = -2.0
	}
	if cfg.Trading.USATier1Pct == 0 {
		cfg.Trading.USATier1Pct = -1.5
	}
	if cfg.Trading.MervalDropPct == 0 {
		cfg.Trading.MervalDropPct = -2.0
	}
	if cfg.Trading.MervalTier1Pct == 0 {
		cfg.Trading.MervalTier1Pct = -1.5
	}

	if len(cfg.Markets.USWatchlist) == 0 {
		cfg.Markets.USWatchlist = []string{
			"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "NVDA", "META",
			"NFLX", "AMD", "INTC", "BABA", "PYPL", "UBER", "COIN",
		}
	}
	if len(cfg.Markets.MervalWatchlist) == 0 {
		cfg.Markets.MervalWatchlist = []string{
			"YPF", "GGAL", "BMA", "BBAR", "SUPV", "PAM", "CEPU", "TGS",
			"EDN", "TEO", "LOMA", "CRESY", "IRS", "TX", "VIST", "MELI",
			"GLOB", "DESP", "BIOX",
		}
	}
	if len(cfg.Markets.CedearWhitelist) == 0 {
		cfg.Markets.CedearWhitelist = []string{"MELI", "GLOB", "VIST", "TX", "DESP", "BIOX"}
	}

	if cfg.Telegram.BotToken == "" {
		cfg.Telegram.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	}

	if cfg.Web.Port == 0 {
		cfg.Web.Port = 8000
	}

	if len(cfg.Schedule.HuntHours) == 0 {
		cfg.Schedule.HuntHours = []int{9, 13, 22}
	}
	if cfg.Schedule.GuardianMinutes == 0 {
		cfg.Schedule.GuardianMinutes = 15
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func (c *Config) Validate() error {
	for _, p := range c.AI.Providers {
		if p.BaseURL == "" || p.Model == "" {
			return fmt.Errorf("ai provider %q needs base_url and model", p.Name)
		}
	}
	for _, h := range c.Schedule.HuntHours {
		if h < 0 || h > 23 {
			return fmt.Errorf("invalid schedule.hunt_hours entry %d", h)
		}
	}
	if c.Trading.StopLossPct >= 0 {
		return fmt.Errorf("trading.stop_loss_pct must be negative, got %.2f", c.Trading.StopLossPct)
	}
	if c.Trading.TakeProfitPct <= 0 {
		return fmt.Errorf("trading.take_profit_pct must be positive, got %.2f", c.Trading.TakeProfitPct)
	}
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == 0 {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}
	return nil
}

func (c *Config) ScannerTimeout() time.Duration {
	return time.Duration(c.Scanner.TimeoutSeconds) * time.Second
}

func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}

func (c *Config) BuyCooldown() time.Duration {
	return time.Duration(c.Trading.BuyCooldownSeconds) * time.Second
}

func (c *Config) ScorePause() time.Duration {
	return time.Duration(c.Trading.ScorePauseSeconds) * time.Second
}

func (c *Config) GuardianInterval() time.Duration {
	return time.Duration(c.Schedule.GuardianMinutes) * time.Minute
}
