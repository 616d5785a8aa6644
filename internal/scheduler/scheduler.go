package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"MarketAnalyst/internal/analyst"
	"MarketAnalyst/internal/notifier"
	"MarketAnalyst/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the analysts on a cron schedule and serves Telegram
// commands.
type Scheduler struct {
	Cron        *cron.Cron
	Technical   *analyst.Technical
	Fundamental *analyst.Fundamental
	Notifier    *notifier.TelegramNotifier // nil disables delivery
	Recorder    recorder.Recorder
	Symbols     []string
	Ctx         context.Context
}

// NewScheduler creates a scheduler over the given collaborators.
func NewScheduler(ctx context.Context, tech *analyst.Technical, fund *analyst.Fundamental, tn *notifier.TelegramNotifier, rec recorder.Recorder, symbols []string) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Technical:   tech,
		Fundamental: fund,
		Notifier:    tn,
		Recorder:    rec,
		Symbols:     symbols,
		Ctx:         ctx,
	}
}

// RegisterAll registers the daily analysis task.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily analysis")
	for _, symbol := range s.Symbols {
		s.runTechnical(s.Ctx, symbol, true)
	}
}

func (s *Scheduler) runTechnical(ctx context.Context, symbol string, deliver bool) string {
	report, err := s.Technical.Analyze(ctx, symbol)
	if err != nil {
		log.Printf("[ERROR] technical analysis for %s: %v", symbol, err)
		msg := fmt.Sprintf("❌ technical analysis for %s failed: %v", symbol, err)
		if deliver {
			s.trySend(msg)
		}
		return msg
	}

	text := notifier.FormatTechnicalReport(report)
	if deliver {
		s.trySend(text)
	}

	ind := report.Indicators
	if err := s.Recorder.RecordAnalysis(&recorder.AnalysisRecord{
		Symbol:         symbol,
		Kind:           recorder.KindTechnical,
		Vendor:         report.Source,
		CurrentPrice:   ind.Latest.CurrentPrice,
		RSI:            ind.Latest.RSI,
		MACD:           ind.Latest.MACD,
		MACDSignal:     ind.Latest.MACDSignal,
		BollingerUpper: ind.Latest.BollingerUpper,
		BollingerLower: ind.Latest.BollingerLower,
		RSITrend:       ind.Trends.RSI,
		MACDTrend:      ind.Trends.MACD,
		BollingerTrend: ind.Trends.Bollinger,
		Report:         report.Text,
	}); err != nil {
		log.Printf("[ERROR] record technical analysis: %v", err)
	}
	return text
}

func (s *Scheduler) runFundamental(ctx context.Context, symbol string) string {
	report, err := s.Fundamental.Analyze(ctx, symbol)
	if err != nil {
		log.Printf("[ERROR] fundamental analysis for %s: %v", symbol, err)
		return fmt.Sprintf("❌ fundamental analysis for %s failed: %v", symbol, err)
	}

	text := notifier.FormatFundamentalReport(report)
	if err := s.Recorder.RecordAnalysis(&recorder.AnalysisRecord{
		Symbol: symbol,
		Kind:   recorder.KindFundamental,
		Vendor: report.Source,
		Report: report.Text,
	}); err != nil {
		log.Printf("[ERROR] record fundamental analysis: %v", err)
	}
	return text
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return usage
	}
	symbol := ""
	if len(fields) > 1 {
		symbol = strings.ToUpper(fields[1])
	}
	if symbol == "" && len(s.Symbols) > 0 {
		symbol = s.Symbols[0]
	}

	switch fields[0] {
	case "/tech":
		return s.runTechnical(ctx, symbol, false)
	case "/fund":
		return s.runFundamental(ctx, symbol)
	case "/daily":
		go s.dailyTask()
		return fmt.Sprintf("daily analysis started for %s", strings.Join(s.Symbols, ", "))
	case "/symbols":
		return "watched symbols: " + strings.Join(s.Symbols, ", ")
	default:
		return usage
	}
}

const usage = "commands:\n" +
	"• /tech SYMBOL - technical analysis\n" +
	"• /fund SYMBOL - fundamental analysis\n" +
	"• /daily - run the daily batch now\n" +
	"• /symbols - list watched symbols"

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
