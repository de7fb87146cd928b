package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Mode selects the deployment shape.
type Mode string

const (
	// ModePersisted stores submissions before emailing them.
	ModePersisted Mode = "persisted"
	// ModeEdge emails submissions directly without a store.
	ModeEdge Mode = "edge"
)

type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Kafka      KafkaConfig      `yaml:"kafka"`
	Email      EmailConfig      `yaml:"email"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type HTTPConfig struct {
	Address        string `yaml:"address"`
	SwaggerEnabled bool   `yaml:"swagger_enabled"`

	// ExposeSubmissions mounts GET /api/contact and GET /api/bookings.
	// The routes are unauthenticated, so keep this off on public hosts.
	ExposeSubmissions bool `yaml:"expose_submissions"`
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver         string `yaml:"driver"`
	URL            string `yaml:"url"`
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	Name           string `yaml:"name"`
	SSLMode        string `yaml:"ssl_mode"`
	SQLitePath     string `yaml:"sqlite_path"`
	AutoMigrate    bool   `yaml:"auto_migrate"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DSN returns URL when set, otherwise a key/value connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	if d.Host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func (d DatabaseConfig) Timeout() time.Duration {
	return seconds(d.TimeoutSeconds, 5)
}

type RedisConfig struct {
	Addr              string `yaml:"addr"`
	Password          string `yaml:"password"`
	DB                int    `yaml:"db"`
	CatalogTTLSeconds int    `yaml:"catalog_ttl_seconds"`
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

func (r RedisConfig) CatalogTTL() time.Duration {
	return seconds(r.CatalogTTLSeconds, 300)
}

type KafkaConfig struct {
	Brokers          []string `yaml:"brokers"`
	SubmissionsTopic string   `yaml:"submissions_topic"`
}

func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 && k.SubmissionsTopic != "" }

type EmailConfig struct {
	// APIKey authenticates against the SMTP relay.
	APIKey         string     `yaml:"api_key"`
	From           string     `yaml:"from"`
	To             string     `yaml:"to"`
	TimeoutSeconds int        `yaml:"timeout_seconds"`
	SMTP           SMTPConfig `yaml:"smtp"`
}

func (e EmailConfig) Timeout() time.Duration {
	return seconds(e.TimeoutSeconds, 10)
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	SSL      bool   `yaml:"ssl"`
}

type ValidationConfig struct {
	StrictPhone bool   `yaml:"strict_phone"`
	PhoneRegion string `yaml:"phone_region"`
}

type LoggingConfig struct {
	Level  string            `yaml:"level"`
	Format string            `yaml:"format"`
	File   LoggingFileConfig `yaml:"file"`
}

type LoggingFileConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

func Default() Config {
	return Config{
		HTTP: HTTPConfig{Address: ":5000", SwaggerEnabled: true},
		Database: DatabaseConfig{
			Driver:         "postgres",
			SSLMode:        "disable",
			SQLitePath:     "facepaint.db",
			AutoMigrate:    true,
			TimeoutSeconds: 5,
		},
		Redis: RedisConfig{CatalogTTLSeconds: 300},
		Kafka: KafkaConfig{SubmissionsTopic: "submissions"},
		Email: EmailConfig{
			From:           "Happy Faces Belfast <onboarding@resend.dev>",
			To:             "happy_faces@hotmail.co.uk",
			TimeoutSeconds: 10,
			SMTP: SMTPConfig{
				Host:     "smtp.resend.com",
				Port:     465,
				Username: "resend",
				SSL:      true,
			},
		},
		Validation: ValidationConfig{PhoneRegion: "GB"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File: LoggingFileConfig{
				Path:       "logs/facepaint.log",
				MaxSizeMB:  50,
				MaxBackups: 5,
				MaxAgeDays: 28,
			},
		},
	}
}

// LoadConfig layers defaults, the YAML file at path (skipped when absent),
// a .env file in the working directory and process environment variables.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	if v := os.Getenv("KAFKA_SUBMISSIONS_TOPIC"); v != "" {
		cfg.Kafka.SubmissionsTopic = v
	}
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		cfg.Email.APIKey = v
	}
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		cfg.Email.From = v
	}
	if v := os.Getenv("EMAIL_TO"); v != "" {
		cfg.Email.To = v
	}
	if v := os.Getenv("STRICT_PHONE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Validation.StrictPhone = b
		}
	}
	if v := os.Getenv("EXPOSE_SUBMISSIONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.HTTP.ExposeSubmissions = b
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate reports every missing setting required by mode.
func (c *Config) Validate(mode Mode) error {
	var errs []error

	if c.HTTP.Address == "" {
		errs = append(errs, errors.New("http.address is required"))
	}
	if c.Email.APIKey == "" {
		errs = append(errs, errors.New("email.api_key (RESEND_API_KEY) is required"))
	}
	if c.Email.From == "" {
		errs = append(errs, errors.New("email.from is required"))
	}
	if c.Email.To == "" {
		errs = append(errs, errors.New("email.to is required"))
	}

	if mode == ModePersisted {
		switch c.Database.Driver {
		case "postgres":
			if c.Database.DSN() == "" {
				errs = append(errs, errors.New("database.url (DATABASE_URL) must be set"))
			}
		case "sqlite":
			if c.Database.SQLitePath == "" {
				errs = append(errs, errors.New("database.sqlite_path is required"))
			}
		default:
			errs = append(errs, fmt.Errorf("unknown database.driver %q", c.Database.Driver))
		}
	}

	return errors.Join(errs...)
}

func seconds(n, def int) time.Duration {
	if n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
