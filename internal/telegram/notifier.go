package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/market"
)

// maxMessageLen keeps reports under Telegram's 4096-char cap with headroom.
const maxMessageLen = 4000

type Notifier struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	enabled bool
	logger  *logger.Logger
}

func NewNotifier(cfg *config.Config, log *logger.Logger) *Notifier {
	if !cfg.Telegram.Enabled {
		return &Notifier{enabled: false, logger: log}
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.Error("failed to create telegram bot", "error", err)
		return &Notifier{enabled: false, logger: log}
	}

	log.Info("telegram bot connected", "username", bot.Self.UserName)

	return &Notifier{
		bot:     bot,
		chatID:  cfg.Telegram.ChatID,
		enabled: true,
		logger:  log,
	}
}

func (n *Notifier) NotifyBuy(symbol string, price, quantity, invested float64, score int, reason string) {
	msg := fmt.Sprintf("🔫 *BUY executed*\nAsset: %s\nEntry: $%.4f\nQty: %.6f\nInvested: $%.2f\nAI score: %d\nThesis: %s",
		symbol, price, quantity, invested, score, reason)
	n.send(msg)
}

func (n *Notifier) NotifySell(symbol, reason string, exitPrice, pnlPct, pnlUSD float64) {
	icon := "🩹"
	if pnlUSD > 0 {
		icon = "🤑"
	}
	msg := fmt.Sprintf("%s *SELL executed*\nAsset: %s\nReason: %s\nExit: $%.4f\nPnL: %+.2f%% ($%.2f)",
		icon, symbol, reason, exitPrice, pnlPct, pnlUSD)
	n.send(msg)
}

func (n *Notifier) NotifyError(context string, err error) {
	n.send(fmt.Sprintf("⚠️ *Error* [%s]\n%v", context, err))
}

func (n *Notifier) NotifyStatus(message string) {
	n.send(message)
}

// NotifyReport sends a detailed per-opportunity report, split when it exceeds
// the message length cap.
func (n *Notifier) NotifyReport(title string, opportunities []market.Opportunity) {
	if len(opportunities) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔔 *%s* 🔔\n\n", title)
	for _, op := range opportunities {
		icon := "😐"
		switch op.AIDecision {
		case "BUY":
			icon = "✅"
		case "WAIT":
			icon = "⚠️"
		}
		fmt.Fprintf(&sb, "%s *%s* (%.2f%%)\n", icon, op.Symbol, op.PercentChange)
		fmt.Fprintf(&sb, "💲 Price: $%.4f\n", op.Price)
		fmt.Fprintf(&sb, "📊 %s\n", op.TechnicalSignal)
		fmt.Fprintf(&sb, "🧠 AI: *%s* (score %d)\n", op.AIDecision, op.AIScore)
		fmt.Fprintf(&sb, "📝 _%s_\n", op.AIReason)
		sb.WriteString("---------------------------\n")
	}

	full := sb.String()
	for len(full) > maxMessageLen {
		n.send(full[:maxMessageLen] + "...")
		full = "...(continued) " + full[maxMessageLen:]
	}
	n.send(full)
}

func (n *Notifier) send(text string) {
	if !n.enabled {
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("send telegram message", "error", err)
	}
}
