package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apirest "github.com/junyi0906/immortal-cultivation-game/api/rest"
	"github.com/junyi0906/immortal-cultivation-game/audit"
	"github.com/junyi0906/immortal-cultivation-game/cache"
	"github.com/junyi0906/immortal-cultivation-game/config"
	dbadapter "github.com/junyi0906/immortal-cultivation-game/db"
	"github.com/junyi0906/immortal-cultivation-game/engine"
	"github.com/junyi0906/immortal-cultivation-game/game/battle"
	"github.com/junyi0906/immortal-cultivation-game/model"
	"github.com/junyi0906/immortal-cultivation-game/scheduler"
	"github.com/junyi0906/immortal-cultivation-game/store"
)

func main() {
	cfgPath := "config/config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// ---- Save store ----
	storeCfg := store.Config{
		Backend: cfg.Game.SaveBackend,
		Cache: cache.Config{
			RedisAddr:       cfg.Cache.RedisAddr,
			RedisPassword:   cfg.Cache.RedisPassword,
			RedisDB:         cfg.Cache.RedisDB,
			LocalGCInterval: cfg.Cache.LocalGCInterval,
		},
		DB: dbadapter.Config{
			Mode:         cfg.Database.Mode,
			SQLitePath:   cfg.Database.SQLitePath,
			MySQLDSN:     cfg.Database.MySQLDSN,
			MySQLMaxOpen: cfg.Database.MySQLMaxOpen,
			MySQLMaxIdle: cfg.Database.MySQLMaxIdle,
			MySQLMaxLife: cfg.Database.MySQLMaxLife,
		},
	}
	st, err := store.New(storeCfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	logger.Info("save store initialized", zap.String("backend", cfg.Game.SaveBackend))

	// ---- Engine ----
	var rng battle.Source
	if cfg.Game.RandomSeed != 0 {
		rng = battle.NewSource(cfg.Game.RandomSeed)
	}
	eng := engine.New(engine.Config{Store: st, Logger: logger, RNG: rng})

	// ---- Audit trail ----
	db, err := dbadapter.Open(storeCfg.DB)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	auditSvc := audit.New(db, logger)
	defer auditSvc.Stop(nil)

	// ---- Scheduler ----
	sched := scheduler.New(logger)
	defer sched.Stop()
	sched.Autosave(eng, cfg.Game.AutosaveInterval)

	// ---- HTTP ----
	r := apirest.NewRouter(eng, cfg, logger, auditSvc)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Log.Level); err != nil {
		return nil, err
	}
	if cfg.Server.Debug {
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		return zc.Build()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
