package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	AMQP      AMQPConfig      `yaml:"amqp"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Booking   BookingConfig   `yaml:"booking"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level string onto the wbf logger level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"booking"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type AMQPConfig struct {
	URL      string `yaml:"url"      env:"AMQP_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"AMQP_EXCHANGE" env-default:"booking.events"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

// BookingConfig is the booking engine's configuration surface: the allowed
// status set with its transition table, overlap toggles and named custom
// overlap rules.
type BookingConfig struct {
	Statuses           []StatusConfig        `yaml:"statuses"`
	EnforceTransitions bool                  `yaml:"enforce_transitions" env:"BOOKING_ENFORCE_TRANSITIONS" env-default:"false"`
	Overlap            OverlapConfig         `yaml:"overlap"`
	Rules              map[string]RuleConfig `yaml:"rules"`
}

type StatusConfig struct {
	Name            string   `yaml:"name" validate:"required"`
	Label           string   `yaml:"label"`
	Color           string   `yaml:"color"`
	CanTransitionTo []string `yaml:"can_transition_to"`
}

type OverlapConfig struct {
	Enabled         bool `yaml:"enabled"           env:"OVERLAP_ENABLED"           env-default:"true"`
	AllowSameBooker bool `yaml:"allow_same_booker" env:"OVERLAP_ALLOW_SAME_BOOKER" env-default:"false"`
	MinTimeBetween  int  `yaml:"min_time_between"  env:"OVERLAP_MIN_TIME_BETWEEN"  env-default:"0"  validate:"min=0"`
	MaxDuration     int  `yaml:"max_duration"      env:"OVERLAP_MAX_DURATION"      env-default:"0"  validate:"min=0"`
}

type RuleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Timezone string `yaml:"timezone"`
}

// DefaultStatuses mirrors the default status set: pending, confirmed,
// cancelled, completed with the usual forward-only transitions.
func DefaultStatuses() []StatusConfig {
	return []StatusConfig{
		{Name: "pending", Label: "Pending", Color: "#FFA500", CanTransitionTo: []string{"confirmed", "cancelled"}},
		{Name: "confirmed", Label: "Confirmed", Color: "#008000", CanTransitionTo: []string{"cancelled", "completed"}},
		{Name: "cancelled", Label: "Cancelled", Color: "#FF0000"},
		{Name: "completed", Label: "Completed", Color: "#0000FF"},
	}
}

// AllowedStatuses returns the configured status tags in declaration order.
func (c BookingConfig) AllowedStatuses() []string {
	names := make([]string, 0, len(c.Statuses))
	for _, s := range c.Statuses {
		names = append(names, s.Name)
	}
	return names
}

func (c BookingConfig) StatusAllowed(status string) bool {
	for _, s := range c.Statuses {
		if s.Name == status {
			return true
		}
	}
	return false
}

// InitialStatus is the first configured status, used when a caller creates
// a booking without naming one.
func (c BookingConfig) InitialStatus() string {
	if len(c.Statuses) == 0 {
		return ""
	}
	return c.Statuses[0].Name
}

// CanTransition consults the configured adjacency table. Only meaningful
// when enforce_transitions is on.
func (c BookingConfig) CanTransition(from, to string) bool {
	for _, s := range c.Statuses {
		if s.Name != from {
			continue
		}
		for _, next := range s.CanTransitionTo {
			if next == to {
				return true
			}
		}
		return false
	}
	return false
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if len(cfg.Booking.Statuses) == 0 {
		cfg.Booking.Statuses = DefaultStatuses()
	}
	return &cfg
}
