package config

import (
	"time"

	"github.com/sirupsen/logrus"
)

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	StageEnv      AppEnv = "stage"
	DevelopEnv    AppEnv = "develop"
	LocalEnv      AppEnv = "local"
	TestEnv       AppEnv = "test"
)

type (
	Config struct {
		AppEnv     AppEnv
		LogLevel   logrus.Level
		HTTP       HTTP
		Provider   Provider
		Redis      Redis
		Kafka      Kafka
		Pagination Pagination
	}

	HTTP struct {
		Port        int
		AccessToken string
	}

	// Provider tunes the simulated provider: which business line it
	// pretends to be, how slow and how flaky it is, and whether it
	// preloads synthetic contacts.
	Provider struct {
		DisplayPhoneNumber string
		PhoneNumberID      string
		StoragePath        string
		SeedData           bool
		RandSeed           int64
		ReplyProbability   float64
		Delays             Delays
		ErrorRates         ErrorRates
	}

	// DelayRange bounds a uniformly drawn artificial latency.
	DelayRange struct {
		Min time.Duration
		Max time.Duration
	}

	Delays struct {
		Send        DelayRange
		Webhook     DelayRange
		MediaUpload DelayRange
		Storage     DelayRange
		External    DelayRange

		// Per-hop inter-arrival ranges of the status progression.
		Delivered DelayRange
		Read      DelayRange

		Reply DelayRange
	}

	ErrorRates struct {
		Send        float64
		Webhook     float64
		MediaUpload float64
		Storage     float64
		External    float64
	}

	Redis struct {
		Enabled  bool
		Host     string
		Port     int
		Password string
		Database int
	}

	Kafka struct {
		Enabled bool
		Host    string
		Port    int
	}

	Pagination struct {
		PageSize   int
		MaxHistory int
	}
)
