package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Sync specifics
	Notion         NotionConfig
	GoogleCalendar GoogleCalendarConfig
	Database       DatabaseConfig
	Sync           SyncConfig

	// Inbound surfaces
	Webhook      WebhookConfig
	InternalAuth InternalAuthConfig

	// Failure alerts
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type NotionConfig struct {
	APIKey        string
	BaseURL       string
	Version       string
	DataSourceIDs []string
	TitleProperty string
	DateProperty  string
	PageSize      int
}

type GoogleCalendarConfig struct {
	ClientID        string
	ClientSecret    string
	RedirectURL     string
	CalendarID      string
	DefaultTimezone string
	Scopes          []string
}

type DatabaseConfig struct {
	Path string
}

type SyncConfig struct {
	Identity         string
	Schedule         string // cron expression, empty disables the in-process scheduler
	MutationInterval time.Duration
	RunTimeout       time.Duration
}

type WebhookConfig struct {
	Secret          string
	RateLimitPerMin int
}

type InternalAuthConfig struct {
	APIKey string
	Scheme string
}

// TelegramConfig enables failure alerts when both fields are set.
type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

// Enabled reports whether failure alerts should be sent.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != 0
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Notion
	cfg.Notion.APIKey = viper.GetString("notion.api_key")
	if key := viper.GetString("notion_api_key"); key != "" {
		cfg.Notion.APIKey = key
	}
	cfg.Notion.BaseURL = viper.GetString("notion.base_url")
	cfg.Notion.Version = viper.GetString("notion.version")
	cfg.Notion.TitleProperty = viper.GetString("notion.title_property")
	cfg.Notion.DateProperty = viper.GetString("notion.date_property")
	cfg.Notion.PageSize = viper.GetInt("notion.page_size")
	cfg.Notion.DataSourceIDs = loadDataSourceIDs()

	// Google Calendar
	cfg.GoogleCalendar.ClientID = viper.GetString("google_calendar.client_id")
	if id := viper.GetString("google_client_id"); id != "" {
		cfg.GoogleCalendar.ClientID = id
	}
	cfg.GoogleCalendar.ClientSecret = viper.GetString("google_calendar.client_secret")
	if secret := viper.GetString("google_client_secret"); secret != "" {
		cfg.GoogleCalendar.ClientSecret = secret
	}
	cfg.GoogleCalendar.RedirectURL = viper.GetString("google_calendar.redirect_url")
	if redirect := viper.GetString("google_redirect_uri"); redirect != "" {
		cfg.GoogleCalendar.RedirectURL = redirect
	}
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if calID := viper.GetString("google_calendar_id"); calID != "" {
		cfg.GoogleCalendar.CalendarID = calID
	}
	cfg.GoogleCalendar.DefaultTimezone = viper.GetString("google_calendar.default_timezone")
	cfg.GoogleCalendar.Scopes = splitList(viper.GetString("google_calendar.scopes"))

	// Database
	cfg.Database.Path = viper.GetString("database.path")

	// Sync
	cfg.Sync.Identity = viper.GetString("sync.identity")
	cfg.Sync.Schedule = viper.GetString("sync.schedule")
	cfg.Sync.MutationInterval = viper.GetDuration("sync.mutation_interval")
	cfg.Sync.RunTimeout = viper.GetDuration("sync.run_timeout")

	// Webhook
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Internal auth for the authorization bootstrap endpoints
	cfg.InternalAuth.APIKey = viper.GetString("internal_auth.api_key")
	if key := viper.GetString("internal_api_key"); key != "" {
		cfg.InternalAuth.APIKey = key
	}
	cfg.InternalAuth.Scheme = viper.GetString("internal_auth.scheme")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")

	return cfg, nil
}

// ValidateSync checks the values a sync run cannot do without.
func (c *Config) ValidateSync() error {
	var errs []error
	if c.Notion.APIKey == "" {
		errs = append(errs, errors.New("notion.api_key is required"))
	}
	if len(c.Notion.DataSourceIDs) == 0 {
		errs = append(errs, errors.New("at least one notion data source id is required"))
	}
	if c.GoogleCalendar.CalendarID == "" {
		errs = append(errs, errors.New("google_calendar.calendar_id is required"))
	}
	if err := c.ValidateOAuth(); err != nil {
		errs = append(errs, err)
	}
	if c.Notion.PageSize <= 0 || c.Notion.PageSize > 100 {
		errs = append(errs, fmt.Errorf("notion.page_size must be within 1..100, got %d", c.Notion.PageSize))
	}
	return errors.Join(errs...)
}

// ValidateOAuth checks the Google OAuth client settings.
func (c *Config) ValidateOAuth() error {
	if c.GoogleCalendar.ClientID == "" || c.GoogleCalendar.ClientSecret == "" {
		return errors.New("google_calendar.client_id and google_calendar.client_secret are required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("notion.base_url", "https://api.notion.com")
	viper.SetDefault("notion.version", "2025-09-03")
	viper.SetDefault("notion.title_property", "Name")
	viper.SetDefault("notion.date_property", "Date")
	viper.SetDefault("notion.page_size", 100)

	viper.SetDefault("google_calendar.redirect_url", "http://localhost:8080/oauth2callback")
	viper.SetDefault("google_calendar.default_timezone", "Asia/Shanghai")
	viper.SetDefault("google_calendar.scopes", "https://www.googleapis.com/auth/calendar")

	viper.SetDefault("database.path", filepath.Join(xdg.DataHome, "notion-gcal-sync", "sync.db"))

	viper.SetDefault("sync.identity", "service-sync")
	viper.SetDefault("sync.mutation_interval", "500ms")
	viper.SetDefault("sync.run_timeout", "5m")

	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("internal_auth.scheme", "Bearer")
}

// loadDataSourceIDs accepts notion.data_source_ids as a list or a comma
// separated string, plus the numbered DATASOURCE_ID_1..7 variables.
func loadDataSourceIDs() []string {
	var ids []string
	seen := make(map[string]bool)
	add := func(id string) {
		id = strings.TrimSpace(id)
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	if raw, ok := viper.Get("notion.data_source_ids").([]interface{}); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok {
				add(s)
			}
		}
	} else {
		for _, id := range splitList(viper.GetString("notion.data_source_ids")) {
			add(id)
		}
	}

	for i := 1; i <= 7; i++ {
		add(viper.GetString(fmt.Sprintf("datasource_id_%d", i)))
	}
	return ids
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
