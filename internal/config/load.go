package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Load reads configuration from the environment, after best-effort loading
// a local .env file. Every knob has a default good enough for local runs
// and tests.
func Load() (*Config, error) {
	_ = godotenv.Load()

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, errors.Wrap(err, "config: invalid LOG_LEVEL")
	}

	cfg := &Config{
		AppEnv:   AppEnv(getEnv("APP_ENV", string(LocalEnv))),
		LogLevel: level,
		HTTP: HTTP{
			Port:        getEnvInt("HTTP_PORT", 8088),
			AccessToken: getEnv("ACCESS_TOKEN", "wasim-local-token"),
		},
		Provider: Provider{
			DisplayPhoneNumber: getEnv("WA_DISPLAY_PHONE_NUMBER", "15550000001"),
			PhoneNumberID:      getEnv("WA_PHONE_NUMBER_ID", "100000000000001"),
			StoragePath:        getEnv("WA_STORAGE_PATH", "/var/lib/wasim/media"),
			SeedData:           getEnvBool("WA_SEED_DATA", true),
			RandSeed:           int64(getEnvInt("WA_RAND_SEED", 0)),
			ReplyProbability:   getEnvFloat("WA_REPLY_PROBABILITY", 0.7),
			Delays: Delays{
				Send:        getEnvRange("WA_DELAY_SEND", 100*time.Millisecond, 600*time.Millisecond),
				Webhook:     getEnvRange("WA_DELAY_WEBHOOK", 200*time.Millisecond, 900*time.Millisecond),
				MediaUpload: getEnvRange("WA_DELAY_MEDIA_UPLOAD", 200*time.Millisecond, 1200*time.Millisecond),
				Storage:     getEnvRange("WA_DELAY_STORAGE", 10*time.Millisecond, 80*time.Millisecond),
				External:    getEnvRange("WA_DELAY_EXTERNAL", 150*time.Millisecond, 800*time.Millisecond),
				Delivered:   getEnvRange("WA_DELAY_DELIVERED", 500*time.Millisecond, 2*time.Second),
				Read:        getEnvRange("WA_DELAY_READ", time.Second, 4*time.Second),
				Reply:       getEnvRange("WA_DELAY_REPLY", time.Second, 5*time.Second),
			},
			ErrorRates: ErrorRates{
				Send:        getEnvFloat("WA_ERROR_RATE_SEND", 0.02),
				Webhook:     getEnvFloat("WA_ERROR_RATE_WEBHOOK", 0.01),
				MediaUpload: getEnvFloat("WA_ERROR_RATE_MEDIA_UPLOAD", 0.03),
				Storage:     getEnvFloat("WA_ERROR_RATE_STORAGE", 0),
				External:    getEnvFloat("WA_ERROR_RATE_EXTERNAL", 0.02),
			},
		},
		Redis: Redis{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			Database: getEnvInt("REDIS_DATABASE", 0),
		},
		Kafka: Kafka{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Host:    getEnv("KAFKA_HOST", "localhost"),
			Port:    getEnvInt("KAFKA_PORT", 9092),
		},
		Pagination: Pagination{
			PageSize:   getEnvInt("PAGE_SIZE", 10),
			MaxHistory: getEnvInt("MAX_HISTORY_ITEMS", 1000),
		},
	}

	for _, r := range []struct {
		name string
		rng  DelayRange
	}{
		{"WA_DELAY_SEND", cfg.Provider.Delays.Send},
		{"WA_DELAY_WEBHOOK", cfg.Provider.Delays.Webhook},
		{"WA_DELAY_MEDIA_UPLOAD", cfg.Provider.Delays.MediaUpload},
		{"WA_DELAY_STORAGE", cfg.Provider.Delays.Storage},
		{"WA_DELAY_EXTERNAL", cfg.Provider.Delays.External},
		{"WA_DELAY_DELIVERED", cfg.Provider.Delays.Delivered},
		{"WA_DELAY_READ", cfg.Provider.Delays.Read},
		{"WA_DELAY_REPLY", cfg.Provider.Delays.Reply},
	} {
		if r.rng.Min < 0 || r.rng.Max < r.rng.Min {
			return nil, errors.Errorf("config: %s: min must be >= 0 and <= max", r.name)
		}
	}

	if p := cfg.Provider.ReplyProbability; p < 0 || p > 1 {
		return nil, errors.New("config: WA_REPLY_PROBABILITY must be in [0,1]")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// getEnvRange reads "<key>_MIN_MS" and "<key>_MAX_MS" as milliseconds.
func getEnvRange(key string, min, max time.Duration) DelayRange {
	r := DelayRange{Min: min, Max: max}
	if v := getEnvInt(fmt.Sprintf("%s_MIN_MS", key), -1); v >= 0 {
		r.Min = time.Duration(v) * time.Millisecond
	}
	if v := getEnvInt(fmt.Sprintf("%s_MAX_MS", key), -1); v >= 0 {
		r.Max = time.Duration(v) * time.Millisecond
	}
	return r
}
