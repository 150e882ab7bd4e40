package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string        `env:"PORT,default=8080"`
	Env           string        `env:"ENV,default=development"`
	LogLevel      string        `env:"LOG_LEVEL,default=info"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL,default=24h"`
	HashWorkers   int           `env:"HASH_WORKERS,default=4"`
	AuditWorkers  int           `env:"AUDIT_WORKERS,default=4"`
	UploadDir     string        `env:"UPLOAD_DIR,default=./uploads"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI,default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,default=newsdesk"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR,default=localhost:6379"`
	DB   int    `env:"REDIS_DB,default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
