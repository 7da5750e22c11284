package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"StockScope/internal/analyzer"
	"StockScope/internal/collector"
	"StockScope/internal/config"
	"StockScope/internal/news"
	"StockScope/internal/report"
	"StockScope/internal/scheduler"
	"StockScope/internal/symbols"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockScope starting...")

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

	// Tickers: command line arguments win over config
	tickers := cfg.Tickers
	if args := os.Args[1:]; len(args) > 0 {
		tickers = args
	}
	if len(tickers) == 0 {
		log.Fatal("[FATAL] no tickers given; pass them as arguments or set tickers in the config")
	}
	log.Printf("[INFO] analyzing: %s", strings.Join(tickers, ", "))

	// Init symbol table
	known := cfg.Exchanges.KnownTickers
	if len(known) == 0 {
		known = symbols.DefaultKnownTickers
	}
	table := symbols.NewTable(cfg.Exchanges.PrimarySuffix, cfg.Exchanges.AlternateSuffix, cfg.Exchanges.ShortTickerMax, known)

	// Init fetcher and collector
	fetcher := collector.NewYahooFetcher(cfg.Proxy, cfg.MarketData.RatePerSecond, cfg.RequestTimeout())
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher, table, cfg.RetryDelay())

	// Init news aggregator
	agg := news.NewAggregator(cfg.Proxy, cfg.NewsTimeout(), cfg.News.MaxHeadlines, cfg.News.PerSourceLimit)

	// Init analyzer and report composer
	an := analyzer.NewAnalyzer(col, agg)
	comp := report.NewComposer(report.Options{
		PositiveKeywords: cfg.Report.PositiveKeywords,
		NegativeKeywords: cfg.Report.NegativeKeywords,
		StrongPEBelow:    cfg.Report.StrongPEBelow,
		StrongROEAbove:   cfg.Report.StrongROEAbove,
	})

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, an, comp, cfg.Report.OutputDir, tickers)

	// One-shot mode unless a watch schedule is configured
	if cfg.Schedule.WatchCron == "" {
		if _, err := sched.RunNow(); err != nil {
			log.Fatalf("[FATAL] analysis failed: %v", err)
		}
		return
	}

	// Watch mode
	if err := sched.Register(cfg.Schedule.WatchCron); err != nil {
		log.Fatalf("[FATAL] register watch task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis now")
		go func() {
			if _, err := sched.RunNow(); err != nil {
				log.Printf("[ERROR] initial analysis: %v", err)
			}
		}()
	}

	log.Println("[INFO] StockScope is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockScope stopped")
}
