// Package config загружает конфигурацию сервиса из TOML файла
// Секреты можно переопределить переменными окружения с префиксом BOOKMINTON_ (в том числе из .env)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config корневая конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Storage   StorageConfig   `toml:"storage"`
	Auth      AuthConfig      `toml:"auth"`
	Events    EventsConfig    `toml:"events"`
	Telegram  TelegramConfig  `toml:"telegram"`
	Reconcile ReconcileConfig `toml:"reconcile"`
	Arena     ArenaConfig     `toml:"arena"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки Redis (кэш доступности и отозванные сессии)
type RedisConfig struct {
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	AvailabilityTTL int    `toml:"availability_ttl"` // секунды
}

// StorageConfig настройки S3-совместимого хранилища файлов
type StorageConfig struct {
	Endpoint      string `toml:"endpoint"`
	AccessKey     string `toml:"access_key"`
	SecretKey     string `toml:"secret_key"`
	UseSSL        bool   `toml:"use_ssl"`
	Region        string `toml:"region"`
	PublicBaseURL string `toml:"public_base_url"`
}

// AuthConfig настройки авторизации
type AuthConfig struct {
	JWTSecret       string   `toml:"jwt_secret"`
	TokenTTLMinutes int      `toml:"token_ttl_minutes"`
	AdminEmails     []string `toml:"admin_emails"`
}

// TokenTTL время жизни токена
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

// EventsConfig настройки уведомлений об изменениях бронирований
type EventsConfig struct {
	Channel        string `toml:"channel"`
	RabbitEnabled  bool   `toml:"rabbit_enabled"`
	RabbitURL      string `toml:"rabbit_url"`
	RabbitExchange string `toml:"rabbit_exchange"`
}

// TelegramConfig настройки уведомлений персонала в Telegram
type TelegramConfig struct {
	Enabled bool   `toml:"enabled"`
	Token   string `toml:"token"`
	ChatID  int64  `toml:"chat_id"`
}

// ReconcileConfig настройки фоновой сверки слотов и бронирований
type ReconcileConfig struct {
	IntervalSeconds int `toml:"interval_seconds"` // 0 = выключено
}

// ArenaConfig общие настройки арены
type ArenaConfig struct {
	Timezone string `toml:"timezone"`
}

// Location часовой пояс арены
func (a ArenaConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// secrets переопределения из окружения
type secrets struct {
	DBPassword     string `envconfig:"DB_PASSWORD"`
	JWTSecret      string `envconfig:"JWT_SECRET"`
	S3AccessKey    string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey    string `envconfig:"S3_SECRET_KEY"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD"`
	RabbitURL      string `envconfig:"RABBIT_URL"`
	TelegramToken  string `envconfig:"TELEGRAM_TOKEN"`
	TelegramChatID int64  `envconfig:"TELEGRAM_CHAT_ID"`
}

const envPrefix = "BOOKMINTON"

// Load читает TOML файл, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var s secrets
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	applySecrets(cfg, s)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:            "localhost:6379",
			AvailabilityTTL: 30,
		},
		Auth: AuthConfig{
			TokenTTLMinutes: 60 * 24,
		},
		Events: EventsConfig{
			Channel:        "bookings_changes",
			RabbitExchange: "booking.exchange",
		},
		Reconcile: ReconcileConfig{
			IntervalSeconds: 300,
		},
		Arena: ArenaConfig{
			Timezone: "Asia/Jakarta",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "bookminton",
		},
	}
}

func applySecrets(cfg *Config, s secrets) {
	if s.DBPassword != "" {
		cfg.Database.Password = s.DBPassword
	}
	if s.JWTSecret != "" {
		cfg.Auth.JWTSecret = s.JWTSecret
	}
	if s.S3AccessKey != "" {
		cfg.Storage.AccessKey = s.S3AccessKey
	}
	if s.S3SecretKey != "" {
		cfg.Storage.SecretKey = s.S3SecretKey
	}
	if s.RedisPassword != "" {
		cfg.Redis.Password = s.RedisPassword
	}
	if s.RabbitURL != "" {
		cfg.Events.RabbitURL = s.RabbitURL
	}
	if s.TelegramToken != "" {
		cfg.Telegram.Token = s.TelegramToken
	}
	if s.TelegramChatID != 0 {
		cfg.Telegram.ChatID = s.TelegramChatID
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 {
		problems = append(problems, "server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		problems = append(problems, "database.host and database.dbname are required")
	}
	if len(c.Auth.JWTSecret) < 16 {
		problems = append(problems, "auth.jwt_secret must be at least 16 characters")
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		problems = append(problems, "auth.token_ttl_minutes must be positive")
	}
	if c.Storage.Endpoint == "" || c.Storage.PublicBaseURL == "" {
		problems = append(problems, "storage.endpoint and storage.public_base_url are required")
	}
	if c.Events.RabbitEnabled && c.Events.RabbitURL == "" {
		problems = append(problems, "events.rabbit_url is required when rabbit is enabled")
	}
	if c.Telegram.Enabled && (c.Telegram.Token == "" || c.Telegram.ChatID == 0) {
		problems = append(problems, "telegram.token and telegram.chat_id are required when telegram is enabled")
	}
	if c.Reconcile.IntervalSeconds < 0 {
		problems = append(problems, "reconcile.interval_seconds must not be negative")
	}
	if _, err := c.Arena.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("arena.timezone: %v", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// IsAdminEmail проверяет, входит ли email в список администраторов
func (a AuthConfig) IsAdminEmail(email string) bool {
	for _, e := range a.AdminEmails {
		if strings.EqualFold(strings.TrimSpace(e), strings.TrimSpace(email)) {
			return true
		}
	}
	return false
}
