package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	CMS      CMS      `toml:"cms"`
	Payment  Payment  `toml:"payment"`
	Pricing  Pricing  `toml:"pricing"`
	Session  Session  `toml:"session"`
	Checkout Checkout `toml:"checkout"`
	Metrics  Metrics  `toml:"metrics"`
	Logs     Logs     `toml:"logs"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Database настройки подключения к PostgreSQL
// Используется только для best-effort синхронизации корзины;
// при enabled = false сервис работает без БД
type Database struct {
	Enabled         bool   `toml:"enabled"`
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

// DSN собирает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CMS настройки клиента Strapi CMS (лиды и купоны)
type CMS struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"` // секунды
}

// Payment настройки клиента платежного шлюза
type Payment struct {
	URL       string `toml:"url"`
	KeyID     string `toml:"key_id"`
	KeySecret string `toml:"key_secret"`
	Currency  string `toml:"currency"`
	Timeout   int    `toml:"timeout"` // секунды
}

// Pricing настройки загрузчика прайс-листа
type Pricing struct {
	SheetURL string `toml:"sheet_url"`
	Timeout  int    `toml:"timeout"` // секунды
}

// Session настройки хранилища сессий
type Session struct {
	TTLMinutes           int `toml:"ttl_minutes"`
	SweepIntervalMinutes int `toml:"sweep_interval_minutes"`
}

// Checkout настройки завершающего шага бронирования
type Checkout struct {
	WhatsAppNumber string `toml:"whatsapp_number"` // номер в международном формате без +
}

// Metrics настройки prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Pricing.SheetURL == "" {
		return fmt.Errorf("config: pricing.sheet_url is required")
	}
	if c.Database.Enabled && c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required when database is enabled")
	}
	if c.Session.TTLMinutes <= 0 {
		c.Session.TTLMinutes = 30
	}
	if c.Session.SweepIntervalMinutes <= 0 {
		c.Session.SweepIntervalMinutes = 5
	}
	return nil
}
