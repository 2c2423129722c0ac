package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DefaultJWTSecret используется, если JWT_SECRET не задан
const DefaultJWTSecret = "default-secret-key-change-in-production"

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress      string        // Адрес и порт запуска сервиса
	DatabaseURI     string        // URI подключения к БД
	RedisURL        string        // URL Redis, пустой отключает кеш и блокировки
	RatesAPIAddress string        // Адрес сервиса курсов, пустой отключает обновление курсов
	JWTSecret       string        // Секретный ключ для JWT
	JWTTokenTTL     time.Duration // Время жизни JWT токена
	LogLevel        string        // Уровень логирования
	CacheTTL        time.Duration // Время жизни записей кеша заказов

	CORSAllowedOrigins []string // Источники, которым разрешены запросы из браузера

	// Обновление курсов
	RatesQuotes          []string      // Валюты, курс которых к USD обновляется
	RatesRefreshInterval time.Duration // Интервал обновления курсов
	WorkerPoolSize       int           // Количество воркеров
	WorkerQueueSize      int           // Размер очереди валютных пар

	// Валидация
	MinPasswordLength int // Минимальная длина пароля

	// Регистрация открыта всем. Если выключена, зарегистрироваться может только первый оператор.
	RegistrationEnabled bool
}

func defaults() *Config {
	return &Config{
		RunAddress:           ":8080",
		JWTSecret:            DefaultJWTSecret,
		JWTTokenTTL:          24 * time.Hour,
		LogLevel:             "info",
		CacheTTL:             5 * time.Minute,
		CORSAllowedOrigins:   []string{"*"},
		RatesQuotes:          []string{"VND"},
		RatesRefreshInterval: time.Hour,
		WorkerPoolSize:       2,
		WorkerQueueSize:      10,
		MinPasswordLength:    8,
	}
}

// Load загружает конфигурацию из флагов, файла .env и переменных окружения.
// Приоритет: env переменные > флаги > дефолтные значения
func Load(args []string) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	fs.StringVar(&cfg.RatesAPIAddress, "r", "", "exchange rates service address")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Файл .env не обязателен и не перекрывает уже заданные переменные
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	if err := apply(k, cfg); err != nil {
		return nil, err
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, errors.New("database URI is required (use -d flag or DATABASE_URI env)")
	}

	return cfg, nil
}

// apply перекрывает значения конфигурации заданными переменными окружения
func apply(k *koanf.Koanf, cfg *Config) error {
	setString(k, "RUN_ADDRESS", &cfg.RunAddress)
	setString(k, "DATABASE_URI", &cfg.DatabaseURI)
	setString(k, "REDIS_URL", &cfg.RedisURL)
	setString(k, "RATES_API_ADDRESS", &cfg.RatesAPIAddress)
	setString(k, "JWT_SECRET", &cfg.JWTSecret)
	setString(k, "LOG_LEVEL", &cfg.LogLevel)
	setList(k, "CORS_ALLOWED_ORIGINS", &cfg.CORSAllowedOrigins)
	setList(k, "RATES_QUOTES", &cfg.RatesQuotes)

	for key, dst := range map[string]*time.Duration{
		"JWT_TOKEN_TTL":          &cfg.JWTTokenTTL,
		"CACHE_TTL":              &cfg.CacheTTL,
		"RATES_REFRESH_INTERVAL": &cfg.RatesRefreshInterval,
	} {
		if err := setDuration(k, key, dst); err != nil {
			return err
		}
	}

	for key, dst := range map[string]*int{
		"WORKER_POOL_SIZE":    &cfg.WorkerPoolSize,
		"WORKER_QUEUE_SIZE":   &cfg.WorkerQueueSize,
		"MIN_PASSWORD_LENGTH": &cfg.MinPasswordLength,
	} {
		if err := setPositiveInt(k, key, dst); err != nil {
			return err
		}
	}

	if err := setBool(k, "REGISTRATION_ENABLED", &cfg.RegistrationEnabled); err != nil {
		return err
	}

	for i, quote := range cfg.RatesQuotes {
		cfg.RatesQuotes[i] = strings.ToUpper(quote)
	}
	return nil
}

func setString(k *koanf.Koanf, key string, dst *string) {
	if k.Exists(key) {
		*dst = strings.TrimSpace(k.String(key))
	}
}

func setList(k *koanf.Koanf, key string, dst *[]string) {
	if !k.Exists(key) {
		return
	}
	parts := strings.Split(k.String(key), ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	*dst = out
}

func setDuration(k *koanf.Koanf, key string, dst *time.Duration) error {
	if !k.Exists(key) {
		return nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(k.String(key)))
	if err != nil || d <= 0 {
		return fmt.Errorf("invalid %s %q: expected positive duration", key, k.String(key))
	}
	*dst = d
	return nil
}

func setPositiveInt(k *koanf.Koanf, key string, dst *int) error {
	if !k.Exists(key) {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(k.String(key)))
	if err != nil || v <= 0 {
		return fmt.Errorf("invalid %s %q: expected positive integer", key, k.String(key))
	}
	*dst = v
	return nil
}

func setBool(k *koanf.Koanf, key string, dst *bool) error {
	if !k.Exists(key) {
		return nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(k.String(key)))
	if err != nil {
		return fmt.Errorf("invalid %s %q: expected boolean", key, k.String(key))
	}
	*dst = v
	return nil
}
