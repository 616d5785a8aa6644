package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MarketAnalyst/internal/analyst"
	"MarketAnalyst/internal/config"
	"MarketAnalyst/internal/llm"
	"MarketAnalyst/internal/notifier"
	"MarketAnalyst/internal/recorder"
	"MarketAnalyst/internal/scheduler"
	"MarketAnalyst/internal/marketvendor"
	"MarketAnalyst/internal/marketvendor/finnhub"
	"MarketAnalyst/internal/marketvendor/yahoo"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] MarketAnalyst starting...")

	cfgPath := flag.String("config", "configs/config.yaml", "path to config file")
	symbol := flag.String("symbol", "", "run a one-shot analysis for this symbol and exit")
	flag.Parse()
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	store := config.NewStore(cfg)

	timeout := time.Duration(cfg.TimeoutSec) * time.Second

	// Vendors. The Finnhub credential is checked at construction time,
	// before any network call.
	fh, err := finnhub.New(cfg.FinnhubAPIKey, cfg.Proxy, timeout)
	if err != nil {
		var cfgErr *vendor.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Fatalf("[FATAL] %v (set FINNHUB_API_KEY or finnhub_api_key in the config file)", err)
		}
		log.Fatalf("[FATAL] init finnhub: %v", err)
	}
	yh := yahoo.New(cfg.Proxy, timeout)

	registry := vendor.NewRegistry(fh, yh)
	router := vendor.NewRouter(registry, store)

	// LLM commentary is optional: without a key the reports carry
	// indicator data only.
	var gen llm.Generator
	if cfg.LLM.APIKey != "" {
		g, err := llm.NewOpenAI(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Temperature)
		if err != nil {
			log.Fatalf("[FATAL] init llm: %v", err)
		}
		gen = g
	} else {
		log.Println("[WARN] llm.api_key not set, reports will have no commentary")
	}

	tech := analyst.NewTechnical(router, gen)
	fund := analyst.NewFundamental(router, gen)

	if *symbol != "" {
		runOnce(tech, fund, *symbol)
		return
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier (optional)
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	} else {
		log.Println("[WARN] telegram.bot_token not set, reports are logged only")
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, tech, fund, tn, rec, cfg.Symbols)
	if err := sched.RegisterAll(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] MarketAnalyst is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] MarketAnalyst stopped")
}

// runOnce prints a technical and a fundamental report to stdout.
func runOnce(tech *analyst.Technical, fund *analyst.Fundamental, symbol string) {
	ctx := context.Background()

	tr, err := tech.Analyze(ctx, symbol)
	if err != nil {
		log.Fatalf("[FATAL] technical analysis: %v", err)
	}
	fmt.Println(notifier.FormatTechnicalReport(tr))

	fr, err := fund.Analyze(ctx, symbol)
	if err != nil {
		log.Printf("[WARN] fundamental analysis: %v", err)
		return
	}
	fmt.Println(notifier.FormatFundamentalReport(fr))
}
