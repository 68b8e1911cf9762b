package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/market"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/telegram"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/trader"
)

const tickInterval = time.Minute

// huntMarkets fixes the order of a hunt pass.
var huntMarkets = []market.Market{market.Crypto, market.USA, market.Merval}

// Scheduler drives the bot: hunter passes at the configured hours, guardian
// passes at a fixed interval.
type Scheduler struct {
	bot      *trader.Bot
	notifier *telegram.Notifier
	cfg      *config.Config
	logger   *logger.Logger

	huntHours    map[int]struct{}
	lastHuntHour time.Time
	lastGuardian time.Time
}

func New(bot *trader.Bot, notifier *telegram.Notifier, cfg *config.Config, log *logger.Logger) *Scheduler {
	hours := make(map[int]struct{}, len(cfg.Schedule.HuntHours))
	for _, h := range cfg.Schedule.HuntHours {
		hours[h] = struct{}{}
	}
	return &Scheduler{
		bot:       bot,
		notifier:  notifier,
		cfg:       cfg,
		logger:    log,
		huntHours: hours,
	}
}

// Run blocks until the context is canceled. A guardian pass executes
// immediately on startup so positions left open across a restart are checked
// without waiting a full interval.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("scheduler started",
		"hunt_hours", s.cfg.Schedule.HuntHours,
		"guardian_minutes", s.cfg.Schedule.GuardianMinutes)

	s.runGuardian(ctx)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case now := <-ticker.C:
			s.tick(ctx, now)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	if s.shouldHunt(now) {
		s.lastHuntHour = now.Truncate(time.Hour)
		s.runHunt(ctx)
	}

	if now.Sub(s.lastGuardian) >= s.cfg.GuardianInterval() {
		s.runGuardian(ctx)
	}
}

// shouldHunt fires once per configured hour.
func (s *Scheduler) shouldHunt(now time.Time) bool {
	if _, ok := s.huntHours[now.Hour()]; !ok {
		return false
	}
	return !s.lastHuntHour.Equal(now.Truncate(time.Hour))
}

func (s *Scheduler) runHunt(ctx context.Context) {
	defer s.recoverCycle("hunter")

	s.logger.Info("hunter pass started")
	for _, m := range huntMarkets {
		if ctx.Err() != nil {
			return
		}
		scored, err := s.bot.RunHunterCycle(ctx, m)
		if err != nil {
			s.logger.Error("hunter cycle failed", "market", string(m), "error", err)
			s.notifier.NotifyError(fmt.Sprintf("hunter %s", m), err)
			continue
		}
		s.notifier.NotifyReport(fmt.Sprintf("%s dip report", m), scored)
	}
	s.logger.Info("hunter pass finished")
}

func (s *Scheduler) runGuardian(ctx context.Context) {
	defer s.recoverCycle("guardian")

	s.lastGuardian = time.Now()
	if err := s.bot.RunGuardianCycle(ctx); err != nil {
		s.logger.Error("guardian cycle failed", "error", err)
		s.notifier.NotifyError("guardian", err)
	}
}

// recoverCycle keeps one broken pass from killing the scheduler loop.
func (s *Scheduler) recoverCycle(name string) {
	if r := recover(); r != nil {
		s.logger.Error("cycle panicked", "cycle", name, "panic", r)
		s.notifier.NotifyError(name, fmt.Errorf("panic: %v", r))
	}
}
