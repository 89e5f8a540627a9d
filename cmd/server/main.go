package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wonderhood/web/internal/api"
	"github.com/wonderhood/web/internal/config"
	"github.com/wonderhood/web/internal/db"
	"github.com/wonderhood/web/internal/locks"
	"github.com/wonderhood/web/internal/session"
	"github.com/wonderhood/web/internal/web"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("db init", zap.Error(err))
	}

	session.Init(db.Conn(), cfg.SessionTTL)
	session.Default().StartCleanupLoop(time.Hour, log)
	locks.Init(db.Conn())
	api.Init(cfg.APIBaseURL, log)

	r := web.Router(cfg.TemplatesDir, log)

	log.Info("WonderHood web listening", zap.String("addr", cfg.Addr), zap.String("api", cfg.APIBaseURL))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
