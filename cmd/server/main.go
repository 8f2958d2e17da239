package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/app"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/config"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/logger"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

func main() {
	printStartupBanner()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.Session.Secret) {
			stdLog.Fatalf("session secret is weak or still the default, configure a strong random key for production")
		}
	} else if isWeakSecret(cfg.Session.Secret) {
		stdLog.Printf("warning: session secret is weak or still the default, change it before going to production")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to initialize database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	if cfg.Catalog.Seed {
		if err := models.SeedCatalog(); err != nil {
			stdLog.Printf("warning: failed to seed catalog: %v", err)
		}
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "run mode: all (default), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("service exited with error: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "  ____                     _     ____  _                 " + ansiReset)
	fmt.Println(ansiCyan + " / ___|_      _____  ___| |_  / ___|| |__   ___  _ __  " + ansiReset)
	fmt.Println(ansiCyan + " \\___ \\ \\ /\\ / / _ \\/ _ \\ __| \\___ \\| '_ \\ / _ \\| '_ \\ " + ansiReset)
	fmt.Println(ansiCyan + "  ___) \\ V  V /  __/  __/ |_   ___) | | | | (_) | |_) |" + ansiReset)
	fmt.Println(ansiCyan + " |____/ \\_/\\_/ \\___|\\___|\\__| |____/|_| |_|\\___/| .__/ " + ansiReset)
	fmt.Println(ansiCyan + "                                                |_|    " + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Sweet Shop storefront API" + ansiReset)
	fmt.Println(ansiYellow + "• Repo: https://github.com/TejasDharmale/Kata-Sweet-shop-management" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
