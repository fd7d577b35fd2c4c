package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string

	JWTSecret string
	TokenTTL  time.Duration

	GatewayBaseURL   string
	GatewayKeyID     string
	GatewayKeySecret string

	AssistantBaseURL string
	AssistantAPIKey  string
	AssistantModel   string

	IdentityBaseURL string

	AllowedOrigins []string

	PaymentTimeout    time.Duration
	OrderPollInterval time.Duration
	WorkerPoolSize    int
	MaxOrdersBatch    int
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultAllowedOrigins    = "http://localhost:5173"
	defaultJWTSecret         = "change-me-in-production"
	defaultTokenTTL          = 30 * 24 * time.Hour
	defaultGatewayBaseURL    = "https://api.razorpay.com"
	defaultAssistantBaseURL  = "https://generativelanguage.googleapis.com"
	defaultAssistantModel    = "gemini-2.0-flash"
	defaultIdentityBaseURL   = "https://oauth2.googleapis.com"
	defaultPaymentTimeout    = 30 * time.Minute
	defaultOrderPollInterval = time.Minute
	defaultWorkerPoolSize    = 4
	defaultShutdownTimeout   = 10 * time.Second
	defaultMaxOrdersBatch    = 32
)

// Load parses configuration from an optional .env file, environment variables
// and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		JWTSecret:         getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:          getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		GatewayBaseURL:    getString(lookup, "GATEWAY_BASE_URL", defaultGatewayBaseURL),
		GatewayKeyID:      getString(lookup, "GATEWAY_KEY_ID", ""),
		GatewayKeySecret:  getString(lookup, "GATEWAY_KEY_SECRET", ""),
		AssistantBaseURL:  getString(lookup, "ASSISTANT_BASE_URL", defaultAssistantBaseURL),
		AssistantAPIKey:   getString(lookup, "ASSISTANT_API_KEY", ""),
		AssistantModel:    getString(lookup, "ASSISTANT_MODEL", defaultAssistantModel),
		IdentityBaseURL:   getString(lookup, "IDENTITY_BASE_URL", defaultIdentityBaseURL),
		PaymentTimeout:    getDuration(lookup, "PAYMENT_TIMEOUT", defaultPaymentTimeout),
		OrderPollInterval: getDuration(lookup, "ORDER_POLL_INTERVAL", defaultOrderPollInterval),
		WorkerPoolSize:    getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MaxOrdersBatch:    getInt(lookup, "POLL_BATCH_SIZE", defaultMaxOrdersBatch),
	}

	origins := getString(lookup, "ALLOWED_ORIGINS", defaultAllowedOrigins)

	fs := flag.NewFlagSet("foodkart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.OrderPollInterval.String()
		paymentTimeoutStr  = cfg.PaymentTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.GatewayBaseURL, "gateway-url", cfg.GatewayBaseURL, "Payment gateway base URL")
	fs.StringVar(&origins, "allowed-origins", origins, "Comma separated CORS origins")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent watchdog workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between stale payment polls")
	fs.StringVar(&paymentTimeoutStr, "payment-timeout", paymentTimeoutStr, "Age after which unpaid online orders are cancelled")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.MaxOrdersBatch, "poll-batch", cfg.MaxOrdersBatch, "Maximum orders per polling batch")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.OrderPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.PaymentTimeout, err = time.ParseDuration(paymentTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid payment timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.MaxOrdersBatch <= 0 {
		cfg.MaxOrdersBatch = defaultMaxOrdersBatch
	}

	if cfg.OrderPollInterval <= 0 {
		cfg.OrderPollInterval = defaultOrderPollInterval
	}

	if cfg.PaymentTimeout <= 0 {
		cfg.PaymentTimeout = defaultPaymentTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
