package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Cache      CacheConfig
	Checker    CheckerConfig
	Queue      QueueConfig
	Validation ValidationConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"512"`
}

type DatabaseConfig struct {
	// Driver selects the store implementation: "postgres" or "sqlite".
	Driver   string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"urlhealth"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	// SQLitePath is only used when Driver is "sqlite".
	SQLitePath string `env:"SQLITE_PATH" envDefault:"urlhealth.db"`
}

type CacheConfig struct {
	MaxSizePow2 int `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	TTLSeconds  int `env:"CACHE_TTL_SECONDS" envDefault:"300"`
}

type CheckerConfig struct {
	TimeoutSeconds int `env:"CHECK_TIMEOUT_SECONDS" envDefault:"30"`
	MaxRedirects   int `env:"CHECK_MAX_REDIRECTS" envDefault:"10"`
	MaxRetries     int `env:"CHECK_MAX_RETRIES" envDefault:"3"`
}

type QueueConfig struct {
	Workers    int `env:"QUEUE_WORKERS" envDefault:"10"`
	BufferSize int `env:"QUEUE_BUFFER_SIZE" envDefault:"1024"`
	ChunkSize  int `env:"QUEUE_DISPATCH_CHUNK_SIZE" envDefault:"10"`
}

type ValidationConfig struct {
	MaxURLLength    int  `env:"VALIDATION_MAX_URL_LENGTH" envDefault:"2048"`
	MaxBatchSize    int  `env:"VALIDATION_MAX_BATCH_SIZE" envDefault:"100"`
	AllowPrivateIPs bool `env:"VALIDATION_ALLOW_PRIVATE_IPS" envDefault:"false"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"4096"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"5000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"500"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
