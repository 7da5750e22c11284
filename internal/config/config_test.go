package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.MarketData.RatePerSecond != 2 {
		t.Errorf("rate default = %v", cfg.MarketData.RatePerSecond)
	}
	if cfg.Exchanges.PrimarySuffix != ".NS" || cfg.Exchanges.AlternateSuffix != ".BO" {
		t.Errorf("suffix defaults = %q/%q", cfg.Exchanges.PrimarySuffix, cfg.Exchanges.AlternateSuffix)
	}
	if cfg.News.MaxHeadlines != 10 {
		t.Errorf("max headlines default = %d", cfg.News.MaxHeadlines)
	}
	if cfg.Report.OutputDir != "reports" {
		t.Errorf("output dir default = %q", cfg.Report.OutputDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_YAMLValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
tickers: [AAPL, MSFT]
market_data:
  rate_per_second: 0.5
  retry_delay_ms: 250
exchanges:
  primary_suffix: ".L"
  known_tickers: [VOD, BP]
news:
  max_headlines: 4
schedule:
  watch_cron: "0 0 8 * * 1"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Tickers, []string{"AAPL", "MSFT"}) {
		t.Errorf("tickers = %v", cfg.Tickers)
	}
	if cfg.MarketData.RatePerSecond != 0.5 {
		t.Errorf("rate = %v", cfg.MarketData.RatePerSecond)
	}
	if cfg.RetryDelay().Milliseconds() != 250 {
		t.Errorf("retry delay = %v", cfg.RetryDelay())
	}
	if cfg.Exchanges.PrimarySuffix != ".L" {
		t.Errorf("primary suffix = %q", cfg.Exchanges.PrimarySuffix)
	}
	if cfg.Exchanges.AlternateSuffix != ".BO" {
		t.Errorf("unset alternate suffix should default, got %q", cfg.Exchanges.AlternateSuffix)
	}
	if cfg.News.MaxHeadlines != 4 {
		t.Errorf("max headlines = %d", cfg.News.MaxHeadlines)
	}
	if cfg.Schedule.WatchCron != "0 0 8 * * 1" {
		t.Errorf("watch cron = %q", cfg.Schedule.WatchCron)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STOCKSCOPE_TICKERS", "TCS.NS, INFY ,")
	t.Setenv("STOCKSCOPE_REPORT_DIR", "/tmp/reports")
	t.Setenv("STOCKSCOPE_RATE_PER_SECOND", "1.5")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Tickers, []string{"TCS.NS", "INFY"}) {
		t.Errorf("tickers = %v", cfg.Tickers)
	}
	if cfg.Report.OutputDir != "/tmp/reports" {
		t.Errorf("output dir = %q", cfg.Report.OutputDir)
	}
	if cfg.MarketData.RatePerSecond != 1.5 {
		t.Errorf("rate = %v", cfg.MarketData.RatePerSecond)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg, _ := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	cfg.MarketData.RatePerSecond = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative rate must fail validation")
	}
}
