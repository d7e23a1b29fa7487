package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/arun0009/request-id-header/requestid"
)

// Config holds server configuration
type Config struct {
	Port              string  `yaml:"port"`
	EnableTLS         bool    `yaml:"enable_tls"`
	CertFile          string  `yaml:"cert_file"`
	KeyFile           string  `yaml:"key_file"`
	EnableCORS        bool    `yaml:"enable_cors"`
	LogRequests       bool    `yaml:"log_requests"`
	LogLevel          string  `yaml:"log_level"`
	LogDevelopment    bool    `yaml:"log_development"`
	MaxBodySize       int64   `yaml:"max_body_size"`
	HeaderName        string  `yaml:"header_name"`
	UniqueValuePrefix string  `yaml:"unique_value_prefix"`
	RateLimitRPS      float64 `yaml:"rate_limit_rps"`
	RateLimitBurst    int     `yaml:"rate_limit_burst"`
	Hostname          string  `yaml:"-"`
}

// loadConfig reads .env, then the environment, then CONFIG_FILE if set.
// Values from the file override the environment.
func loadConfig() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	cfg := loadConfigFromEnv()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if hostname, _ := os.Hostname(); hostname != "" {
		cfg.Hostname = hostname
	}
	return cfg, nil
}

// loadDotEnv loads path if it exists. Variables already set are kept.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// loadConfigFromEnv builds a Config from environment variables.
func loadConfigFromEnv() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		EnableTLS:         getEnv("ENABLE_TLS", "false") == "true",
		CertFile:          getEnv("CERT_FILE", "server.crt"),
		KeyFile:           getEnv("KEY_FILE", "server.key"),
		EnableCORS:        getEnv("ENABLE_CORS", "true") == "true",
		LogRequests:       getEnv("LOG_REQUESTS", "true") == "true",
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogDevelopment:    getEnv("LOG_DEVELOPMENT", "false") == "true",
		MaxBodySize:       parseInt64(getEnv("MAX_BODY_SIZE", "10485760")),
		HeaderName:        getEnv("REQUEST_ID_HEADER", requestid.DefaultHeaderName),
		UniqueValuePrefix: getEnv("REQUEST_ID_UNIQUE_VALUE_PREFIX", ""),
		RateLimitRPS:      parseFloat64(getEnv("RATE_LIMIT_RPS", "0")),
		RateLimitBurst:    int(parseInt64(getEnv("RATE_LIMIT_BURST", "0"))),
	}
}

// loadConfigFile overlays the YAML document at path onto cfg.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c Config) requestID() requestid.Config {
	return requestid.Config{
		HeaderName:        c.HeaderName,
		UniqueValuePrefix: c.UniqueValuePrefix,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt64(s string) int64 {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return 0
}

func parseFloat64(s string) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return 0
}
