package main

import (
	"colony-sim/internal/engine"
	"colony-sim/internal/infrastructure/storage"
	"colony-sim/internal/tuning"
	"colony-sim/internal/version"
	"colony-sim/pkg/logger"
	"flag"
	"fmt"
	"os"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации: окружение, затем флаги
	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Failed to load config: ", err)
	}

	var seed int64
	var showVersion bool
	// По умолчанию 0 (значит взять из окружения или сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Roster shuffle seed (0 for env/random)")
	flag.StringVar(&cfg.TuningPath, "tuning", cfg.TuningPath, "Path to tuning YAML")
	flag.StringVar(&cfg.RecordDir, "record", cfg.RecordDir, "Directory to save the session transcript on exit")
	flag.StringVar(&cfg.ReplayPath, "replay", "", "Path to "+storage.FileExt+" transcript to re-run")
	flag.BoolVar(&showVersion, "version", false, "Print build info and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	logger.Log.Info(version.String())

	// 2. Баланс
	t, err := tuning.LoadOrDefault(cfg.TuningPath)
	if err != nil {
		logger.Log.Fatal("Failed to load tuning: ", err)
	}

	// РЕЖИМ РЕПЛЕЯ
	if cfg.ReplayPath != "" {
		session, err := storage.NewReplayService("").Load(cfg.ReplayPath)
		if err != nil {
			logger.Log.Fatal("Failed to load replay: ", err)
		}

		cfg.Seed = session.Seed
		logger.Log.Infof("Replaying session %s with seed %d", session.SessionID, session.Seed)

		svc := engine.NewService(cfg, t)
		if err := svc.RunReplay(session, os.Stdout); err != nil {
			logger.Log.Fatal("Replay failed: ", err)
		}
		return
	}

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("Using seed: %d", cfg.Seed)
	}

	// 3. Интерактивная сессия
	svc := engine.NewService(cfg, t)
	if err := svc.Run(os.Stdin, os.Stdout); err != nil {
		logger.Log.Error("Session error: ", err)
	}

	// 4. Сохраняем запись
	if cfg.RecordDir != "" {
		path, err := storage.NewReplayService(cfg.RecordDir).Save(svc.Replay)
		if err != nil {
			logger.Log.Error("Failed to save session: ", err)
			return
		}
		logger.Log.Infof("Session saved to %s", path)
	}
}
