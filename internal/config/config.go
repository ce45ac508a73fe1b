package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
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
	LogLevel    string

	LLMProvider string
	LLMBaseURL  string
	LLMAPIKey   string
	LLMModel    string
	LLMTimeout  time.Duration

	RedisAddr       string
	CatalogCacheTTL time.Duration

	KafkaBrokers      string
	KafkaTopic        string
	EventPollInterval time.Duration
	EventBatchSize    int
	EventClaimLease   time.Duration
	WorkerPoolSize    int

	ChatRateLimit   float64
	ChatRateBurst   int
	TrustedProxies  []string
	ShutdownTimeout time.Duration
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const (
	defaultRunAddress        = ":8080"
	defaultLogLevel          = "info"
	defaultLLMProvider       = ProviderOpenAI
	defaultLLMBaseURL        = "https://api.openai.com"
	defaultOpenAIModel       = "gpt-4o-mini"
	defaultGeminiModel       = "gemini-1.5-flash"
	defaultLLMTimeout        = 30 * time.Second
	defaultCatalogCacheTTL   = 5 * time.Minute
	defaultKafkaTopic        = "recerqa.orders"
	defaultEventPollInterval = 2 * time.Second
	defaultEventBatchSize    = 32
	defaultEventClaimLease   = 30 * time.Second
	defaultWorkerPoolSize    = 4
	defaultChatRateLimit     = 5
	defaultChatRateBurst     = 10
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	if err := loadDotEnv(os.Getenv("ENV_FILE")); err != nil {
		return nil, err
	}
	return load(os.Args[1:], os.LookupEnv)
}

func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
		LLMProvider:       getString(lookup, "LLM_PROVIDER", defaultLLMProvider),
		LLMBaseURL:        getString(lookup, "LLM_BASE_URL", defaultLLMBaseURL),
		LLMAPIKey:         getString(lookup, "LLM_API_KEY", ""),
		LLMModel:          getString(lookup, "LLM_MODEL", ""),
		LLMTimeout:        getDuration(lookup, "LLM_TIMEOUT", defaultLLMTimeout),
		RedisAddr:         getString(lookup, "REDIS_ADDR", ""),
		CatalogCacheTTL:   getDuration(lookup, "CATALOG_CACHE_TTL", defaultCatalogCacheTTL),
		KafkaBrokers:      getString(lookup, "KAFKA_BROKERS", ""),
		KafkaTopic:        getString(lookup, "KAFKA_TOPIC", defaultKafkaTopic),
		EventPollInterval: getDuration(lookup, "EVENT_POLL_INTERVAL", defaultEventPollInterval),
		EventBatchSize:    getInt(lookup, "EVENT_BATCH_SIZE", defaultEventBatchSize),
		EventClaimLease:   getDuration(lookup, "EVENT_CLAIM_LEASE", defaultEventClaimLease),
		WorkerPoolSize:    getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ChatRateLimit:     getFloat(lookup, "CHAT_RATE_LIMIT", defaultChatRateLimit),
		ChatRateBurst:     getInt(lookup, "CHAT_RATE_BURST", defaultChatRateBurst),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	trustedProxies := getString(lookup, "TRUSTED_PROXIES", "")

	fs := flag.NewFlagSet("recerqa", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		llmTimeoutStr      = cfg.LLMTimeout.String()
		cacheTTLStr        = cfg.CatalogCacheTTL.String()
		pollIntervalStr    = cfg.EventPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LLMProvider, "llm-provider", cfg.LLMProvider, "Text generation provider (openai, gemini)")
	fs.StringVar(&cfg.LLMBaseURL, "llm-url", cfg.LLMBaseURL, "Base URL of OpenAI compatible API")
	fs.StringVar(&cfg.LLMModel, "llm-model", cfg.LLMModel, "Text generation model name")
	fs.StringVar(&llmTimeoutStr, "llm-timeout", llmTimeoutStr, "Text generation request timeout")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for catalog cache")
	fs.StringVar(&cacheTTLStr, "cache-ttl", cacheTTLStr, "Catalog cache TTL")
	fs.StringVar(&cfg.KafkaBrokers, "kafka-brokers", cfg.KafkaBrokers, "Comma separated Kafka brokers")
	fs.StringVar(&cfg.KafkaTopic, "kafka-topic", cfg.KafkaTopic, "Kafka topic for order events")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between outbox polls")
	fs.IntVar(&cfg.EventBatchSize, "poll-batch", cfg.EventBatchSize, "Maximum events per polling batch")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent publishing workers")
	fs.Float64Var(&cfg.ChatRateLimit, "chat-rate", cfg.ChatRateLimit, "Chat requests per second per client")
	fs.IntVar(&cfg.ChatRateBurst, "chat-burst", cfg.ChatRateBurst, "Chat request burst per client")
	fs.StringVar(&trustedProxies, "trusted-proxies", trustedProxies, "Comma separated proxy IPs/CIDRs allowed to set X-Forwarded-For")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.LLMTimeout, err = time.ParseDuration(llmTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid llm timeout: %w", err)
	}

	if cfg.CatalogCacheTTL, err = time.ParseDuration(cacheTTLStr); err != nil {
		return nil, fmt.Errorf("invalid cache ttl: %w", err)
	}

	if cfg.EventPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	cfg.TrustedProxies = splitList(trustedProxies)

	if keyFile, ok := lookup("LLM_API_KEY_FILE"); ok && keyFile != "" {
		content, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("read llm api key file: %w", err)
		}
		cfg.LLMAPIKey = strings.TrimSpace(string(content))
	}

	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(cfg.LLMProvider))
	switch cfg.LLMProvider {
	case ProviderOpenAI:
		if cfg.LLMModel == "" {
			cfg.LLMModel = defaultOpenAIModel
		}
	case ProviderGemini:
		if cfg.LLMModel == "" {
			cfg.LLMModel = defaultGeminiModel
		}
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.LLMProvider)
	}

	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = defaultLLMTimeout
	}

	if cfg.CatalogCacheTTL <= 0 {
		cfg.CatalogCacheTTL = defaultCatalogCacheTTL
	}

	if cfg.EventPollInterval <= 0 {
		cfg.EventPollInterval = defaultEventPollInterval
	}

	if cfg.EventBatchSize <= 0 {
		cfg.EventBatchSize = defaultEventBatchSize
	}

	if cfg.EventClaimLease <= 0 {
		cfg.EventClaimLease = defaultEventClaimLease
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.ChatRateBurst <= 0 {
		cfg.ChatRateBurst = defaultChatRateBurst
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("llm api key must be provided")
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

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
