package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/happyfaces/facepaint/config"
	"github.com/happyfaces/facepaint/internal/email"
	"github.com/happyfaces/facepaint/internal/notifier"
	"github.com/happyfaces/facepaint/internal/repository"
	"github.com/happyfaces/facepaint/internal/validation"
)

// NewValidator applies the phone rule of the deployment shape: contact
// phone numbers are mandatory only when submissions are persisted.
func NewValidator(cfg config.ValidationConfig, mode config.Mode) *validation.Validator {
	return validation.New(validation.Options{
		RequireContactPhone: mode == config.ModePersisted,
		StrictPhone:         cfg.StrictPhone,
		PhoneRegion:         cfg.PhoneRegion,
	})
}

// EmailConfig maps the email section onto the SMTP client settings.
func EmailConfig(cfg config.EmailConfig) email.Config {
	ec := email.DefaultConfig()
	if cfg.SMTP.Host != "" {
		ec.Host = cfg.SMTP.Host
	}
	if cfg.SMTP.Port != 0 {
		ec.Port = cfg.SMTP.Port
	}
	if cfg.SMTP.Username != "" {
		ec.Username = cfg.SMTP.Username
	}
	ec.SSL = cfg.SMTP.SSL
	ec.Password = cfg.APIKey
	ec.TimeoutSeconds = int(cfg.Timeout().Seconds())
	return ec
}

func NewNotifier(cfg config.EmailConfig) *notifier.Notifier {
	return notifier.New(email.NewClient(EmailConfig(cfg)), notifier.Config{
		From:    cfg.From,
		To:      cfg.To,
		Timeout: cfg.Timeout(),
	})
}

// OpenStore connects the configured database and returns its repositories
// with a function releasing the connection.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (repository.Repositories, func(), error) {
	switch cfg.Driver {
	case "sqlite":
		db, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		logger.Info("using sqlite store", slog.String("path", cfg.SQLitePath))
		return repository.NewGormRepositories(db), closeFn, nil

	case "postgres", "":
		pool, err := pgxpool.New(ctx, cfg.DSN())
		if err != nil {
			return repository.Repositories{}, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if cfg.AutoMigrate {
			migrateCtx, cancel := context.WithTimeout(ctx, cfg.Timeout())
			err := repository.Migrate(migrateCtx, pool)
			cancel()
			if err != nil {
				pool.Close()
				return repository.Repositories{}, nil, err
			}
		}
		logger.Info("using postgres store")
		return repository.NewPGRepositories(pool), pool.Close, nil

	default:
		return repository.Repositories{}, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
