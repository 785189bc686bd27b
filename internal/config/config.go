package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// NewsAPI settings
	NewsAPIKey  string
	NewsAPIBase string

	// Gemini settings
	GeminiAPIKey     string
	GeminiModel      string
	MaxModelRequests int // maximum model calls per digest cycle (0 = unlimited)

	// Stock price settings (finance domain)
	StockAPIKey  string
	StockAPIBase string

	// Email settings
	EmailFrom     string
	EmailPassword string
	EmailTo       string
	SMTPHost      string
	SMTPPort      string
	SubjectPrefix string

	// Domain settings
	DomainsConfigPath string

	// Scheduler settings
	DigestInterval time.Duration

	// Sent-article duplicate window
	SentCachePath    string
	SentCacheTTL     time.Duration
	SkipSentArticles bool

	// App settings
	Debug          bool
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		NewsAPIBase:       "https://newsapi.org/v2/everything",
		GeminiModel:       "gemini-1.5-flash",
		StockAPIBase:      "https://api.api-ninjas.com/v1/stockprice",
		SMTPHost:          "smtp.gmail.com",
		SMTPPort:          "587",
		SubjectPrefix:     "📰 Daily News Digest",
		DomainsConfigPath: "configs/domains.yaml",
		DigestInterval:    10 * time.Minute,
		SentCachePath:     "sent_articles.json",
		SentCacheTTL:      48 * time.Hour,
		RequestTimeout:    30 * time.Second,
		RetryAttempts:     3,
		RetryDelay:        2 * time.Second,
	}

	// Load from environment
	cfg.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.StockAPIKey = os.Getenv("STOCK_API_KEY")
	cfg.EmailFrom = os.Getenv("EMAIL_USER")
	cfg.EmailPassword = os.Getenv("EMAIL_PASS")
	cfg.EmailTo = os.Getenv("EMAIL_TO")

	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("MAX_MODEL_REQUESTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.MaxModelRequests = val
		}
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		cfg.SMTPPort = v
	}
	if v := os.Getenv("EMAIL_SUBJECT_PREFIX"); v != "" {
		cfg.SubjectPrefix = v
	}
	if v := os.Getenv("DOMAINS_CONFIG"); v != "" {
		cfg.DomainsConfigPath = v
	}
	if v := os.Getenv("DIGEST_INTERVAL_MINUTES"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.DigestInterval = time.Duration(val) * time.Minute
		}
	}

	cfg.SentCachePath = getEnvOrDefault("SENT_CACHE_PATH", cfg.SentCachePath)
	if v := os.Getenv("SENT_CACHE_TTL_HOURS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.SentCacheTTL = time.Duration(val) * time.Hour
		}
	}
	if os.Getenv("SKIP_SENT_ARTICLES") == "true" {
		cfg.SkipSentArticles = true
	}

	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate fails fast on missing credentials so no pipeline ever runs
// with a broken configuration.
func (c *Config) Validate() error {
	if c.NewsAPIKey == "" {
		return fmt.Errorf("NEWS_API_KEY is required")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.EmailFrom == "" {
		return fmt.Errorf("EMAIL_USER is required")
	}
	if c.EmailPassword == "" {
		return fmt.Errorf("EMAIL_PASS is required")
	}
	if c.EmailTo == "" {
		return fmt.Errorf("EMAIL_TO is required")
	}
	return nil
}
