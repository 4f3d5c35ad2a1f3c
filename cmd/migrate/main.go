package main

import (
	"os"

	"go-inspecta/internal/app"
	"go-inspecta/internal/config"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	var opts app.MigrateOptions
	pflag.BoolVar(&opts.Seed, "seed", false, "upsert the permission catalog and create the first admin")
	pflag.StringVar(&opts.AdminUsername, "admin-username", os.Getenv("ADMIN_USERNAME"), "NIK of the first admin account")
	pflag.StringVar(&opts.AdminPassword, "admin-password", os.Getenv("ADMIN_PASSWORD"), "password of the first admin account")
	pflag.StringVar(&opts.AdminFullName, "admin-name", "Administrator", "full name of the first admin account")
	pflag.Parse()

	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunMigrate(cfg, opts); err != nil {
		logger.Fatal("run migrate failed", zap.Error(err))
	}
}
