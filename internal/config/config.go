package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Переменные окружения с секретами. Имеют приоритет над config.toml.
const (
	EnvDBPassword     = "DB_PASSWORD"
	EnvJWTSecret      = "JWT_SECRET"
	EnvWeatherAPIKey  = "OPENWEATHER_API_KEY"
	EnvStripeAPIKey   = "STRIPE_API_KEY"
	EnvStripeWebhook  = "STRIPE_WEBHOOK_SECRET"
	EnvRedisPassword  = "REDIS_PASSWORD"
	EnvWatcherToken   = "WATCHER_TOKEN"
	EnvBackendBaseURL = "BACKEND_URL"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Redis    RedisConfig    `toml:"redis"`
	Uploads  UploadsConfig  `toml:"uploads"`
	Shop     ShopConfig     `toml:"shop"`
	Weather  WeatherConfig  `toml:"weather"`
	Tides    TidesConfig    `toml:"tides"`
	News     NewsConfig     `toml:"news"`
	Payments PaymentsConfig `toml:"payments"`
	Live     LiveConfig     `toml:"live"`
	Watcher  WatcherConfig  `toml:"watcher"`
	CORS     CORSConfig     `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // секунды
	WriteTimeout    int    `toml:"write_timeout"`    // секунды
	IdleTimeout     int    `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout"` // секунды
	PublicURL       string `toml:"public_url"`       // базовый URL для ссылок на загруженные файлы
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	Issuer        string `toml:"issuer"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// TokenTTL время жизни токена оператора
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды, время жизни кэша погоды и новостей
}

type UploadsConfig struct {
	Dir       string `toml:"dir"`
	MaxSizeMB int    `toml:"max_size_mb"`
}

// MaxSizeBytes лимит размера загружаемого файла
func (u UploadsConfig) MaxSizeBytes() int64 {
	return int64(u.MaxSizeMB) << 20
}

type ShopConfig struct {
	Name     string `toml:"name"`
	Address  string `toml:"location"`
	Timezone string `toml:"timezone"`
}

// Location часовой пояс магазина для чеков и истории по дням
func (s ShopConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type WeatherConfig struct {
	APIKey  string  `toml:"api_key"`
	BaseURL string  `toml:"base_url"`
	Lat     float64 `toml:"lat"`
	Lon     float64 `toml:"lon"`
	Lang    string  `toml:"lang"`
	Timeout int     `toml:"timeout"` // секунды
}

type TidesConfig struct {
	URL      string `toml:"url"`
	Location string `toml:"location"`
	Timeout  int    `toml:"timeout"`
}

type NewsConfig struct {
	FeedURL string `toml:"feed_url"`
	Limit   int    `toml:"limit"`
	Timeout int    `toml:"timeout"`
}

type PaymentsConfig struct {
	StripeAPIKey  string `toml:"stripe_api_key"`
	WebhookSecret string `toml:"webhook_secret"`
	BaseURL       string `toml:"base_url"`
	SuccessURL    string `toml:"success_url"`
	CancelURL     string `toml:"cancel_url"`
	Currency      string `toml:"currency"`
	Timeout       int    `toml:"timeout"`
}

// Enabled true, если настроен платёжный шлюз
func (p PaymentsConfig) Enabled() bool {
	return p.StripeAPIKey != ""
}

type LiveConfig struct {
	TickInterval    int `toml:"tick_interval_ms"`
	RefreshInterval int `toml:"refresh_interval"` // секунды
}

type WatcherConfig struct {
	BackendURL      string `toml:"backend_url"`
	Token           string `toml:"token"`
	TickInterval    int    `toml:"tick_interval_ms"`
	RefreshInterval int    `toml:"refresh_interval"` // секунды
	AlertInterval   int    `toml:"alert_interval"`   // секунды
	WebhookURL      string `toml:"webhook_url"`
	Timeout         int    `toml:"timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// переопределения из окружения и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию (значения из файла накладываются поверх)
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8001,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			PublicURL:       "http://localhost:8001",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "surfshop",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "surfshop",
		},
		Auth: AuthConfig{
			Issuer:        "surfshop",
			TokenTTLHours: 24,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  600,
		},
		Uploads: UploadsConfig{
			Dir:       "uploads",
			MaxSizeMB: 10,
		},
		Shop: ShopConfig{
			Name:     "Tabatinga2Surf",
			Address:  "Tabatinga, Paraíba",
			Timezone: "America/Fortaleza",
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.openweathermap.org",
			Lat:     -7.3167,
			Lon:     -34.8,
			Lang:    "pt_br",
			Timeout: 10,
		},
		Tides: TidesConfig{
			URL:      "https://tabuademares.com/api/br/paraiba/joao-pessoa",
			Location: "Tabatinga, PB",
			Timeout:  10,
		},
		News: NewsConfig{
			FeedURL: "https://www.surfline.com/surf-news/rss",
			Limit:   5,
			Timeout: 10,
		},
		Payments: PaymentsConfig{
			BaseURL:  "https://api.stripe.com",
			Currency: "brl",
			Timeout:  15,
		},
		Live: LiveConfig{
			TickInterval:    1000,
			RefreshInterval: 5,
		},
		Watcher: WatcherConfig{
			BackendURL:      "http://localhost:8001",
			TickInterval:    1000,
			RefreshInterval: 30,
			AlertInterval:   30,
			Timeout:         10,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

func (c *Config) applyEnv() {
	overrideString(&c.Database.Password, EnvDBPassword)
	overrideString(&c.Auth.JWTSecret, EnvJWTSecret)
	overrideString(&c.Weather.APIKey, EnvWeatherAPIKey)
	overrideString(&c.Payments.StripeAPIKey, EnvStripeAPIKey)
	overrideString(&c.Payments.WebhookSecret, EnvStripeWebhook)
	overrideString(&c.Redis.Password, EnvRedisPassword)
	overrideString(&c.Watcher.Token, EnvWatcherToken)
	overrideString(&c.Watcher.BackendURL, EnvBackendBaseURL)
}

func overrideString(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

// Validate проверяет обязательные поля и диапазоны значений
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535, got "+strconv.Itoa(c.Server.HTTPPort))
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		problems = append(problems, "database.host and database.dbname are required")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}
	if c.Auth.TokenTTLHours <= 0 {
		problems = append(problems, "auth.token_ttl_hours must be positive")
	}
	if c.Uploads.MaxSizeMB <= 0 {
		problems = append(problems, "uploads.max_size_mb must be positive")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		problems = append(problems, "redis.addr is required when redis is enabled")
	}
	if c.News.Limit <= 0 {
		problems = append(problems, "news.limit must be positive")
	}
	if c.Live.TickInterval <= 0 || c.Watcher.TickInterval <= 0 {
		problems = append(problems, "tick intervals must be positive")
	}
	if c.Watcher.RefreshInterval <= 0 || c.Watcher.AlertInterval <= 0 || c.Live.RefreshInterval <= 0 {
		problems = append(problems, "refresh and alert intervals must be positive")
	}
	if _, err := time.LoadLocation(c.Shop.Timezone); err != nil {
		problems = append(problems, "shop.timezone is not a valid IANA zone: "+c.Shop.Timezone)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// ValidateServe дополнительные требования для запуска HTTP сервера
func (c *Config) ValidateServe() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret (or %s) is required", ErrInvalidConfig, EnvJWTSecret)
	}
	if c.Payments.Enabled() && c.Payments.WebhookSecret == "" {
		return fmt.Errorf("%w: payments.webhook_secret (or %s) is required when payments are enabled", ErrInvalidConfig, EnvStripeWebhook)
	}
	return nil
}
