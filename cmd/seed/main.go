package main

import (
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/config"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/logger"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	if err := models.SeedCatalog(); err != nil {
		stdLog.Fatalf("failed to seed catalog: %v", err)
	}

	stdLog.Printf("catalog seed complete")
}
