// Package config loads all runtime settings from environment variables.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// RealtimeWorkers sizes the message fanout pool; 0 means default.
	RealtimeWorkers int `env:"REALTIME_WORKERS, default=0"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Storage StorageConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=rental_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type StorageConfig struct {
	Endpoint     string `env:"STORAGE_ENDPOINT,      default=localhost:9000"`
	AccessKey    string `env:"STORAGE_ACCESS_KEY"`
	SecretKey    string `env:"STORAGE_SECRET_KEY"`
	UseSSL       bool   `env:"STORAGE_USE_SSL,       default=false"`
	ImagesBucket string `env:"STORAGE_IMAGES_BUCKET, default=images"`
	DocsBucket   string `env:"STORAGE_DOCS_BUCKET,   default=documentacion"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
