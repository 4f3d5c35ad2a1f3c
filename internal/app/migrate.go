package app

import (
	"context"
	"time"

	"go-inspecta/internal/access"
	"go-inspecta/internal/account"
	"go-inspecta/internal/audit"
	"go-inspecta/internal/config"
	"go-inspecta/internal/masterdata"
	"go-inspecta/internal/messaging/kafka"
	"go-inspecta/internal/qcrecord"
	"go-inspecta/internal/shared/connection"
	"go-inspecta/internal/shared/counter"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	Seed          bool
	AdminUsername string
	AdminPassword string
	AdminFullName string
}

func models() []any {
	return []any{
		&access.Permission{},
		&account.Account{},
		&account.AccountPermission{},
		&masterdata.Area{},
		&masterdata.Bagian{},
		&masterdata.Supervisor{},
		&qcrecord.Record{},
		&counter.RecordCounter{},
		&audit.Log{},
		&kafka.OutboxRecord{},
	}
}

// RunMigrate applies the schema. With Seed set it also upserts the permission
// catalog and creates the first admin when no account exists yet.
func RunMigrate(cfg *config.Config, opts MigrateOptions) error {
	logger := zap.L().Named("app.migrate")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, cfg.ConnectRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := gormDB.AutoMigrate(models()...); err != nil {
		return err
	}
	logger.Info("schema migrated", zap.Int("models", len(models())))

	if !opts.Seed {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	return seed(ctx, gormDB, opts, logger)
}

func seed(ctx context.Context, gormDB *gorm.DB, opts MigrateOptions, logger *zap.Logger) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	catalogRepo := access.NewCatalogRepository(gormDB)
	if err := catalogRepo.Upsert(ctx, access.SeedCatalog()); err != nil {
		return err
	}
	logger.Info("permission catalog seeded", zap.Int("permissions", len(access.SeedCatalog())))

	if opts.AdminUsername == "" || opts.AdminPassword == "" {
		logger.Info("admin credentials not given, skipping admin seed")
		return nil
	}

	catalog := access.NewCatalog(catalogRepo, nil, logger)
	defaults, err := access.NewDefaults(access.CatalogTags(access.SeedCatalog()))
	if err != nil {
		return err
	}

	accounts := account.NewService(
		sqlDB,
		account.NewRepository(gormDB),
		catalog,
		defaults,
		kafka.NewOutboxRepository(sqlDB),
		logger,
	)

	created, err := accounts.SeedAdmin(ctx, opts.AdminUsername, opts.AdminPassword, opts.AdminFullName)
	if err != nil {
		return err
	}
	if created {
		logger.Info("admin account created", zap.String("username", opts.AdminUsername))
	} else {
		logger.Info("accounts already exist, admin seed skipped")
	}
	return nil
}
