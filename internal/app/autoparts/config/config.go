package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config содержит все настройки приложения autoparts
// Включает конфигурацию для HTTP сервера, SQLite и логирования
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Seed     SeedConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Host string // Адрес хоста (по умолчанию 0.0.0.0)
	Port string // Порт сервера (по умолчанию 8080)
}

// DatabaseConfig - настройки локальной базы SQLite
// База файловая, один процесс - один писатель
type DatabaseConfig struct {
	Path          string // Путь к файлу базы данных
	BusyTimeoutMS int    // Таймаут ожидания блокировки файла, мс
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level string // Уровень логирования (debug/info/warn/error)
}

// SeedConfig - настройки наполнения демонстрационными данными
type SeedConfig struct {
	Demo bool // Загружать ли демо-данные при пустой базе
}

// Load загружает конфигурацию из переменных окружения
// Возвращает ошибку, если не удалось распарсить значения
func Load() (*Config, error) {
	busyTimeout, err := strconv.Atoi(getEnv("DB_BUSY_TIMEOUT_MS", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_BUSY_TIMEOUT_MS value: %w", err)
	}

	seedDemo, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO_DATA value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Path:          getEnv("DB_PATH", "autoservice.db"),
			BusyTimeoutMS: busyTimeout,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Seed: SeedConfig{
			Demo: seedDemo,
		},
	}, nil
}

// DSN возвращает строку подключения к SQLite
// Включает прагмы для контроля внешних ключей и ожидания блокировок
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)",
		c.Path, c.BusyTimeoutMS,
	)
}

// Address возвращает адрес сервера в формате host:port для HTTP сервера
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
