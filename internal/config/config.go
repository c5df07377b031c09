package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Бэкенды хранилища бронирований и заказов.
const (
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
)

// Config содержит настройки обоих процессов (бота и API меню).
type Config struct {
	BotToken       string
	BotDebug       bool
	MenuAPIURL     string
	MenuAPITimeout time.Duration

	StoreBackend string
	Sheets       SheetsConfig
	DB           DBConfig

	RedisURL       string
	RedisPassword  string
	SessionTimeout time.Duration

	SweepInterval time.Duration
	GracePeriod   time.Duration
	SlotCapacity  int
	Location      *time.Location

	APIPort  string
	LogLevel string
}

// SheetsConfig содержит параметры доступа к Google Sheets.
type SheetsConfig struct {
	CredentialsFile string
	SpreadsheetID   string
	ReservationsTab string
	OrdersTab       string
}

// DBConfig содержит параметры подключения к PostgreSQL.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN возвращает строку подключения для драйвера lib/pq.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Load читает конфигурацию из переменных окружения (и файла .env, если он есть).
func Load() (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:       os.Getenv("BOT_TOKEN"),
		MenuAPIURL:     getEnvOrDefault("MENU_API_URL", "http://127.0.0.1:8000"),
		MenuAPITimeout: 10 * time.Second,
		StoreBackend:   getEnvOrDefault("STORE_BACKEND", BackendSheets),
		Sheets: SheetsConfig{
			CredentialsFile: getEnvOrDefault("SHEETS_CREDENTIALS_FILE", "credencial.json"),
			SpreadsheetID:   os.Getenv("SHEETS_SPREADSHEET_ID"),
			ReservationsTab: getEnvOrDefault("SHEETS_RESERVATIONS_TAB", "Agendamentos"),
			OrdersTab:       getEnvOrDefault("SHEETS_ORDERS_TAB", "Entrega"),
		},
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		SessionTimeout: 30 * time.Minute,
		SweepInterval:  5 * time.Minute,
		GracePeriod:    30 * time.Minute,
		SlotCapacity:   5,
		APIPort:        getEnvOrDefault("API_PORT", "8000"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("BOT_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BOT_DEBUG: %w", err)
		}
		cfg.BotDebug = debug
	}

	var err error
	if cfg.MenuAPITimeout, err = getEnvDuration("MENU_API_TIMEOUT", time.Second, cfg.MenuAPITimeout); err != nil {
		return nil, err
	}
	if cfg.SessionTimeout, err = getEnvDuration("SESSION_TIMEOUT", time.Minute, cfg.SessionTimeout); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = getEnvDuration("SWEEP_INTERVAL", time.Minute, cfg.SweepInterval); err != nil {
		return nil, err
	}
	if cfg.GracePeriod, err = getEnvDuration("GRACE_PERIOD", time.Minute, cfg.GracePeriod); err != nil {
		return nil, err
	}

	if v := os.Getenv("SLOT_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SLOT_CAPACITY: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("invalid SLOT_CAPACITY: must be positive, got %d", n)
		}
		cfg.SlotCapacity = n
	}

	loc, err := time.LoadLocation(getEnvOrDefault("TIMEZONE", "America/Sao_Paulo"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	switch cfg.StoreBackend = strings.ToLower(cfg.StoreBackend); cfg.StoreBackend {
	case BackendSheets, BackendPostgres:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND: must be '%s' or '%s'", BackendSheets, BackendPostgres)
	}

	return cfg, nil
}

// ValidateBot проверяет параметры, без которых бот не может стартовать.
func (c *Config) ValidateBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN environment variable is required")
	}
	if c.StoreBackend == BackendSheets && c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("SHEETS_SPREADSHEET_ID environment variable is required for the sheets backend")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration читает целое число единиц unit из переменной key.
func getEnvDuration(key string, unit, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %d", key, n)
	}
	return time.Duration(n) * unit, nil
}
