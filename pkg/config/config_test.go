package config

import (
	"testing"
	"time"

	"roomstay/pkg/logger"
)

func validConfig() *Config {
	return &Config{
		Port:              "8080",
		MongoEnabled:      false,
		MongoURI:          DefaultMongoURI,
		MongoDatabaseName: DefaultMongoDatabaseName,
		MongoConnTimeout:  DefaultMongoConnTimeout,
		RateLimitRequests: 10,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    time.Second,
		MaxRequestSize:    1024,
		ReadTimeout:       time.Second,
		WriteTimeout:      time.Second,
		IdleTimeout:       time.Second,
		ShutdownTimeout:   time.Second,
		Log:               logger.New(logger.Config{Level: "error", Service: "test"}),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"invalid port", func(c *Config) { c.Port = "99999" }, true},
		{"non-numeric port", func(c *Config) { c.Port = "http" }, true},
		{"zero request timeout", func(c *Config) { c.RequestTimeout = 0 }, true},
		{"negative rate limit", func(c *Config) { c.RateLimitRequests = -1 }, true},
		{"mongo enabled with bad URI", func(c *Config) {
			c.MongoEnabled = true
			c.MongoURI = "http://localhost"
		}, true},
		{"mongo disabled ignores URI", func(c *Config) {
			c.MongoEnabled = false
			c.MongoURI = ""
		}, false},
		{"brokers without topic", func(c *Config) {
			c.KafkaBrokers = []string{"localhost:9092"}
			c.KafkaTopic = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSplitBrokers(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", 0},
		{"single", "localhost:9092", 1},
		{"multiple with spaces", "a:9092, b:9092 ,c:9092", 3},
		{"trailing comma", "a:9092,", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitBrokers(tt.value); len(got) != tt.want {
				t.Errorf("expected %d brokers, got %v", tt.want, got)
			}
		})
	}
}
