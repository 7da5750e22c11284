package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockScope/internal/analyzer"
	"StockScope/internal/report"
)

// Scheduler re-runs the analysis on a cron schedule and saves a fresh
// report each tick (watch mode).
type Scheduler struct {
	Cron      *cron.Cron
	Analyzer  *analyzer.Analyzer
	Composer  *report.Composer
	OutputDir string
	Tickers   []string
	Ctx       context.Context
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, an *analyzer.Analyzer, comp *report.Composer, outputDir string, tickers []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Analyzer:  an,
		Composer:  comp,
		OutputDir: outputDir,
		Tickers:   tickers,
		Ctx:       ctx,
	}
}

// Register schedules the watch task.
func (s *Scheduler) Register(watchCron string) error {
	if _, err := s.Cron.AddFunc(watchCron, s.watchTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
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

// RunNow executes one analysis immediately and returns the saved report
// path.
func (s *Scheduler) RunNow() (string, error) {
	result, err := s.Analyzer.Analyze(s.Ctx, s.Tickers)
	if err != nil {
		return "", fmt.Errorf("analyze: %w", err)
	}
	path, err := report.Save(s.OutputDir, s.Composer.Compose(result))
	if err != nil {
		return "", err
	}
	log.Printf("[INFO] report saved: %s (%d stocks)", path, len(result.Symbols))
	return path, nil
}

func (s *Scheduler) watchTask() {
	log.Printf("[INFO] running scheduled analysis for %v", s.Tickers)
	if _, err := s.RunNow(); err != nil {
		log.Printf("[ERROR] scheduled analysis: %v", err)
	}
}
