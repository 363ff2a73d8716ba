package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"HomeworkSentinel/internal/collector"
	"HomeworkSentinel/internal/config"
	"HomeworkSentinel/internal/notifier"
	"HomeworkSentinel/internal/recorder"
	"HomeworkSentinel/internal/scheduler"
	"HomeworkSentinel/internal/watcher"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] HomeworkSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Optional rotating log file alongside stdout
	if cfg.Log.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
		}
		log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	}

	// Init fetcher
	fetcher := collector.NewPracticumFetcher(cfg.Practicum.BaseURL, cfg.Practicum.Token, cfg.Proxy)
	log.Printf("[INFO] review source: %s", fetcher.Name())

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

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

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init watcher
	w := watcher.NewWatcher(fetcher, tn, rec, time.Duration(cfg.Poll.IntervalSeconds)*time.Second)

	// Optional digest schedule
	if cfg.Schedule.DigestCron != "" {
		sched := scheduler.NewScheduler(ctx, w, tn, rec)
		if err := sched.RegisterDigest(cfg.Schedule.DigestCron); err != nil {
			log.Fatalf("[FATAL] register digest task: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Start Telegram polling
	go tn.StartPolling(ctx, w.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Start the poll loop
	go func() {
		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("[ERROR] watcher stopped: %v", err)
		}
	}()

	log.Println("[INFO] HomeworkSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] HomeworkSentinel stopped")
}
