package main

import (
	"flag"
	"log"

	"careerpath/internal/config"
	"careerpath/internal/database"
	"careerpath/internal/logger"

	"go.uber.org/zap"
)

// Creates the kv_store table used by the sql store backend.
func main() {
	driver := flag.String("driver", "", "database driver (sqlite|oracle), overrides db.driver")
	dsn := flag.String("dsn", "", "data source name, overrides db.dsn")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *driver != "" {
		cfg.DB.Driver = *driver
	}
	if *dsn != "" {
		cfg.DB.DSN = *dsn
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err), zap.String("driver", cfg.DB.Driver))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB, cfg.DB.Driver); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations applied", zap.String("driver", cfg.DB.Driver))
}
