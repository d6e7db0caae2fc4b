package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings" // For LogLevel normalization

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DefaultEndpoint    = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultRetryPeriod = 600 // seconds
	DefaultHTTPTimeout = 30  // seconds
	DefaultLogFile     = "homework.log"

	// LogFileDisabled as LOG_FILE keeps logging on the console only.
	LogFileDisabled = "-"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string `env:"PRACTICUM_TOKEN" validate:"required"`
	TelegramToken  string `env:"TELEGRAM_TOKEN" validate:"required"`
	TelegramChatID string `env:"TELEGRAM_CHAT_ID" validate:"required"`

	Endpoint    string `env:"PRACTICUM_ENDPOINT" validate:"required,url"`
	RetryPeriod int    `env:"RETRY_PERIOD" validate:"gt=0"`
	HTTPTimeout int    `env:"HTTP_TIMEOUT" validate:"gt=0"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFile     string `env:"LOG_FILE"`
	LogFormat   string `env:"LOG_FORMAT" validate:"oneof=text json"`
}

// credentialFields are checked by CheckTokens rather than Load, so that a missing
// token is reported through the configured logger.
var credentialFields = []string{"PracticumToken", "TelegramToken", "TelegramChatID"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Load reads configuration from environment variables and .env file (if present).
// Missing credentials are not an error here; see CheckTokens.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
	}
	var err error

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	cfg.RetryPeriod, err = intFromEnv("RETRY_PERIOD", DefaultRetryPeriod)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout, err = intFromEnv("HTTP_TIMEOUT", DefaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	cfg.LogFile = os.Getenv("LOG_FILE")
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}

	cfg.LogFormat = strings.ToLower(os.Getenv("LOG_FORMAT"))
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	if err := validate.StructExcept(cfg, credentialFields...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func intFromEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// MissingCredentials returns the names of the required environment variables that
// are empty in cfg, in declaration order.
func MissingCredentials(cfg *AppConfig) []string {
	err := validate.StructPartial(cfg, credentialFields...)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return missing
}

// CheckTokens reports whether all credentials are present. Each missing variable is
// logged at critical (fatal) level without exiting; the caller decides how to stop.
func CheckTokens(cfg *AppConfig, log logrus.FieldLogger) bool {
	missing := MissingCredentials(cfg)
	for _, name := range missing {
		log.WithField("variable", name).Log(logrus.FatalLevel, fmt.Sprintf("Missing required environment variable %s", name))
	}
	return len(missing) == 0
}
