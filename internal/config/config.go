package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Tickers    []string `yaml:"tickers"`
	MarketData struct {
		RequestTimeoutSeconds int     `yaml:"request_timeout_seconds"`
		RatePerSecond         float64 `yaml:"rate_per_second"`
		RetryDelayMillis      int     `yaml:"retry_delay_ms"`
	} `yaml:"market_data"`
	Exchanges struct {
		PrimarySuffix   string   `yaml:"primary_suffix"`
		AlternateSuffix string   `yaml:"alternate_suffix"`
		ShortTickerMax  int      `yaml:"short_ticker_max"`
		KnownTickers    []string `yaml:"known_tickers"`
	} `yaml:"exchanges"`
	News struct {
		MaxHeadlines          int `yaml:"max_headlines"`
		PerSourceLimit        int `yaml:"per_source_limit"`
		RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
	} `yaml:"news"`
	Report struct {
		OutputDir        string   `yaml:"output_dir"`
		PositiveKeywords []string `yaml:"positive_keywords"`
		NegativeKeywords []string `yaml:"negative_keywords"`
		StrongPEBelow    float64  `yaml:"strong_pe_below"`
		StrongROEAbove   float64  `yaml:"strong_roe_above"`
	} `yaml:"report"`
	Schedule struct {
		WatchCron string `yaml:"watch_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; defaults cover everything.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKSCOPE_TICKERS"); v != "" {
		cfg.Tickers = splitList(v)
	}
	if v := os.Getenv("STOCKSCOPE_REPORT_DIR"); v != "" {
		cfg.Report.OutputDir = v
	}
	if v := os.Getenv("STOCKSCOPE_WATCH_CRON"); v != "" {
		cfg.Schedule.WatchCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("STOCKSCOPE_RATE_PER_SECOND"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MarketData.RatePerSecond = rate
		}
	}

	// Defaults
	if cfg.MarketData.RequestTimeoutSeconds == 0 {
		cfg.MarketData.RequestTimeoutSeconds = 30
	}
	if cfg.MarketData.RatePerSecond == 0 {
		cfg.MarketData.RatePerSecond = 2
	}
	if cfg.MarketData.RetryDelayMillis == 0 {
		cfg.MarketData.RetryDelayMillis = 1000
	}
	if cfg.Exchanges.PrimarySuffix == "" {
		cfg.Exchanges.PrimarySuffix = ".NS"
	}
	if cfg.Exchanges.AlternateSuffix == "" {
		cfg.Exchanges.AlternateSuffix = ".BO"
	}
	if cfg.Exchanges.ShortTickerMax == 0 {
		cfg.Exchanges.ShortTickerMax = 6
	}
	if cfg.News.MaxHeadlines == 0 {
		cfg.News.MaxHeadlines = 10
	}
	if cfg.News.PerSourceLimit == 0 {
		cfg.News.PerSourceLimit = 5
	}
	if cfg.News.RequestTimeoutSeconds == 0 {
		cfg.News.RequestTimeoutSeconds = 10
	}
	if cfg.Report.OutputDir == "" {
		cfg.Report.OutputDir = "reports"
	}
	if cfg.Report.StrongPEBelow == 0 {
		cfg.Report.StrongPEBelow = 25
	}
	if cfg.Report.StrongROEAbove == 0 {
		cfg.Report.StrongROEAbove = 10
	}

	return cfg, nil
}

// Validate checks that the numeric knobs make sense.
func (c *Config) Validate() error {
	if c.MarketData.RatePerSecond <= 0 {
		return fmt.Errorf("market_data.rate_per_second must be positive")
	}
	if c.MarketData.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("market_data.request_timeout_seconds must be positive")
	}
	if c.News.MaxHeadlines <= 0 {
		return fmt.Errorf("news.max_headlines must be positive")
	}
	if c.Exchanges.ShortTickerMax <= 0 {
		return fmt.Errorf("exchanges.short_ticker_max must be positive")
	}
	return nil
}

// RequestTimeout returns the market data HTTP timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.MarketData.RequestTimeoutSeconds) * time.Second
}

// RetryDelay returns the inter-candidate politeness delay.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.MarketData.RetryDelayMillis) * time.Millisecond
}

// NewsTimeout returns the news HTTP timeout.
func (c *Config) NewsTimeout() time.Duration {
	return time.Duration(c.News.RequestTimeoutSeconds) * time.Second
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
