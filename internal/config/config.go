package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL       string
	RedisURL          string
	NatsURL           string
	KafkaBrokers      string
	OTLPEndpoint      string
	Port              string
	RequestTimeout    time.Duration
	SubmissionLockTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}

	return &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          getEnv("REDIS_URL", "localhost:6379"),
		NatsURL:           getEnv("NATS_URL", "nats://localhost:4222"),
		KafkaBrokers:      getEnv("KAFKA_BROKERS", "localhost:9092"),
		OTLPEndpoint:      os.Getenv("OTLP_ENDPOINT"),
		Port:              getEnv("PORT", "8084"),
		RequestTimeout:    time.Duration(getIntEnv("REQUEST_TIMEOUT_SECONDS", 5)) * time.Second,
		SubmissionLockTTL: time.Duration(getIntEnv("SUBMISSION_LOCK_TTL_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
