package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/naraphan13/saijaitham-durian-backend/internal/config"
	"github.com/naraphan13/saijaitham-durian-backend/internal/database"
	"github.com/naraphan13/saijaitham-durian-backend/internal/logger"
	"github.com/naraphan13/saijaitham-durian-backend/internal/router"

	"go.uber.org/zap"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog := logger.Must(logger.New())
	defer zlog.Sync()

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		zlog.Fatal("create data dir", zap.Error(err))
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		zlog.Fatal("init database", zap.Error(err))
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("migrate database", zap.Error(err))
	}

	// setup router
	r := router.Setup(cfg, db, zlog)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	zlog.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("run server", zap.Error(err))
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
