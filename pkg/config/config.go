// Файл: pkg/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type AdminConfig struct {
	BaseURL string        `validate:"required,url"`
	Token   string
	Timeout time.Duration `validate:"gt=0"`
}

type PollConfig struct {
	Interval time.Duration `validate:"gt=0"`
}

type PrefsConfig struct {
	Backend    string `validate:"oneof=file redis"`
	Path       string `validate:"required_if=Backend file"`
	OperatorID string `validate:"required"`
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int `validate:"gte=0"`
}

type LogConfig struct {
	Path  string `validate:"required"`
	Level string `validate:"oneof=debug info warn error"`
}

type ExportConfig struct {
	Dir string `validate:"required"`
}

type Config struct {
	Admin  AdminConfig
	Poll   PollConfig
	Prefs  PrefsConfig
	Redis  RedisConfig
	Log    LogConfig
	Export ExportConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Admin: AdminConfig{
			BaseURL: getEnv("ADMIN_BASE_URL", "http://localhost:8000"),
			Token:   getEnv("ADMIN_TOKEN", ""),
			Timeout: getDuration("ADMIN_TIMEOUT", 20*time.Second),
		},
		Poll: PollConfig{
			Interval: getDuration("POLL_INTERVAL", 5*time.Second),
		},
		Prefs: PrefsConfig{
			Backend:    getEnv("PREFS_BACKEND", "file"),
			Path:       getEnv("PREFS_PATH", ".request-board.yaml"),
			OperatorID: getEnv("OPERATOR_ID", "default"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Log: LogConfig{
			Path:  getEnv("LOG_PATH", "./logs/board.log"),
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Export: ExportConfig{
			Dir: getEnv("EXPORT_DIR", "."),
		},
	}
}

// Validate проверяет конфиг теми же правилами validator, что и DTO.
func (c *Config) Validate(v *validator.Validate) error {
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("некорректная конфигурация: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Предупреждение: %s=%q не является длительностью, используется %s", key, raw, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Предупреждение: %s=%q не является числом, используется %d", key, raw, fallback)
		return fallback
	}
	return n
}
