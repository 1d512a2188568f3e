package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Бэкенды декодирования и работы с каналами
const (
	BackendNative = "native"
	BackendGoCV   = "gocv"
)

type Config struct {
	ImageDir      string
	VisionBackend string
	LogLevel      string
	LogFormat     string

	TelegramToken  string
	TelegramChatID int64
}

// TelegramEnabled уведомления в Telegram настроены
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != ""
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		ImageDir:      os.Getenv("IMAGE_DIR"),
		VisionBackend: getEnvOrDefault("VISION_BACKEND", BackendNative),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
	}

	switch cfg.VisionBackend {
	case BackendNative, BackendGoCV:
	default:
		return nil, fmt.Errorf("invalid VISION_BACKEND: %q", cfg.VisionBackend)
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %q", raw)
		}
		cfg.TelegramChatID = id
	}

	if cfg.TelegramEnabled() && cfg.TelegramChatID == 0 {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return strings.ToLower(value)
	}
	return defaultValue
}
