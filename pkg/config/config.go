package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// PosterStrategy selects how poster images reach storage.
type PosterStrategy string

const (
	// PosterDirectSigned hands the client a write-scoped URL and expects it
	// to upload straight to the posters bucket.
	PosterDirectSigned PosterStrategy = "direct"
	// PosterServerRelayed accepts a multipart upload on the API and serves
	// the file from the local static directory.
	PosterServerRelayed PosterStrategy = "server"
)

type Config struct {
	// Server
	ServerPort string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT
	JWTSecret       string
	JWTExpiresHours int

	// Object storage (S3-compatible)
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3VideoBucket      string
	S3PosterBucket     string
	S3UseSSL           string
	VideoPublicBase    string
	PosterPublicBase   string

	// Posters
	PosterStrategy PosterStrategy
	PosterDir      string

	// RabbitMQ
	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string

	// CORS
	FrontendOrigin string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	expiresHours, err := strconv.Atoi(getEnv("JWT_EXPIRES_HOURS", "168"))
	if err != nil || expiresHours <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRES_HOURS must be a positive integer")
	}

	strategy := PosterStrategy(getEnv("POSTER_STRATEGY", string(PosterDirectSigned)))
	if strategy != PosterDirectSigned && strategy != PosterServerRelayed {
		return nil, fmt.Errorf("POSTER_STRATEGY must be %q or %q", PosterDirectSigned, PosterServerRelayed)
	}

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "reelhub"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTExpiresHours: expiresHours,

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		S3VideoBucket:      getEnv("S3_VIDEO_BUCKET", ""),
		S3PosterBucket:     getEnv("S3_POSTER_BUCKET", ""),
		S3UseSSL:           getEnv("S3_USE_SSL", "true"),
		VideoPublicBase:    getEnv("VIDEO_PUBLIC_BASE", ""),
		PosterPublicBase:   getEnv("POSTER_PUBLIC_BASE", ""),

		PosterStrategy: strategy,
		PosterDir:      getEnv("POSTER_DIR", "static/posters"),

		RabbitMQHost:     getEnv("RABBITMQ_HOST", "localhost"),
		RabbitMQPort:     getEnv("RABBITMQ_PORT", "5672"),
		RabbitMQUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPassword: getEnv("RABBITMQ_PASSWORD", "guest"),

		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
