package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Database       DatabaseConfig       `toml:"database"`
	TenantService  TenantServiceConfig  `toml:"tenant_service"`
	GoogleCalendar GoogleCalendarConfig `toml:"google_calendar"`
	Scheduling     SchedulingConfig     `toml:"scheduling"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// TenantServiceConfig настройки клиента TenantService
type TenantServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// GoogleCalendarConfig настройки клиента Google Calendar
type GoogleCalendarConfig struct {
	CredentialsFile string `toml:"credentials_file"` // JSON сервисного аккаунта
	Timeout         int    `toml:"timeout"`          // секунды
}

// SchedulingConfig дефолтные параметры расчёта слотов.
// Применяются, когда у компании нет собственной политики в БД.
type SchedulingConfig struct {
	SlotDurationMinutes     int `toml:"slot_duration_minutes"`
	MinBookingNoticeMinutes int `toml:"min_booking_notice_minutes"`
	MaxConcurrentBookings   int `toml:"max_concurrent_bookings"`
	AdvanceBookingDays      int `toml:"advance_booking_days"`
	PageSize                int `toml:"page_size"`
	MaxScanDays             int `toml:"max_scan_days"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.Logs.File == "" {
		return fmt.Errorf("logs.file is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database.host and database.dbname are required")
	}
	if c.TenantService.URL == "" {
		return fmt.Errorf("tenant_service.url is required")
	}
	if c.GoogleCalendar.CredentialsFile == "" {
		return fmt.Errorf("google_calendar.credentials_file is required")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "availability-service"
	}
	if c.TenantService.Timeout <= 0 {
		c.TenantService.Timeout = 5
	}
	if c.GoogleCalendar.Timeout <= 0 {
		c.GoogleCalendar.Timeout = 10
	}
	if c.Scheduling.SlotDurationMinutes <= 0 {
		c.Scheduling.SlotDurationMinutes = 30
	}
	if c.Scheduling.MinBookingNoticeMinutes < 0 {
		c.Scheduling.MinBookingNoticeMinutes = 0
	}
	if c.Scheduling.MaxConcurrentBookings <= 0 {
		c.Scheduling.MaxConcurrentBookings = 1
	}
	if c.Scheduling.PageSize <= 0 {
		c.Scheduling.PageSize = 9
	}
	if c.Scheduling.MaxScanDays <= 0 {
		c.Scheduling.MaxScanDays = 30
	}
}
