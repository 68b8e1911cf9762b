package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "logging:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 100.0, cfg.Trading.TradeAmountUSD)
	assert.Equal(t, 5.0, cfg.Trading.TakeProfitPct)
	assert.Equal(t, -3.0, cfg.Trading.StopLossPct)
	assert.Equal(t, 65, cfg.Trading.MinAIScore)
	assert.Equal(t, -3.0, cfg.Trading.CryptoDropPct)
	assert.Equal(t, -2.0, cfg.Trading.CryptoTier1Pct)
	assert.Equal(t, []int{9, 13, 22}, cfg.Schedule.HuntHours)
	assert.Equal(t, 15, cfg.Schedule.GuardianMinutes)
	assert.NotEmpty(t, cfg.Markets.MervalWatchlist)
	assert.Contains(t, cfg.Markets.CedearWhitelist, "MELI")
	assert.Len(t, cfg.AI.Providers, 1)
	assert.Equal(t, "gemini", cfg.AI.Providers[0].Name)
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
trading:
  trade_amount_usd: 250
  max_open_positions: 3
  crypto_drop_pct: -5.0
schedule:
  hunt_hours: [8, 20]
`))
	require.NoError(t, err)

	assert.Equal(t, 250.0, cfg.Trading.TradeAmountUSD)
	assert.Equal(t, 3, cfg.Trading.MaxOpenPositions)
	assert.Equal(t, -5.0, cfg.Trading.CryptoDropPct)
	assert.Equal(t, []int{8, 20}, cfg.Schedule.HuntHours)
}

func TestLoadRejectsInvalidHuntHour(t *testing.T) {
	_, err := Load(writeConfig(t, "schedule:\n  hunt_hours: [25]\n"))
	assert.Error(t, err)
}

func TestLoadRejectsPositiveStopLoss(t *testing.T) {
	_, err := Load(writeConfig(t, "trading:\n  stop_loss_pct: 2.0\n"))
	assert.Error(t, err)
}

func TestLoadRejectsTelegramWithoutToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	_, err := Load(writeConfig(t, "telegram:\n  enabled: true\n  chat_id: 123\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDurationAccessors(t *testing.T) {
	cfg, err := Load(writeConfig(t, "ai:\n  timeout_seconds: 30\n"))
	require.NoError(t, err)

	assert.Equal(t, "30s", cfg.AITimeout().String())
	assert.Equal(t, "10s", cfg.BuyCooldown().String())
	assert.Equal(t, "2s", cfg.ScorePause().String())
	assert.Equal(t, "15m0s", cfg.GuardianInterval().String())
}
