package main

import (
	"database/sql"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/jask/tabnav/internal/config"
	"github.com/jask/tabnav/internal/database"
	"github.com/jask/tabnav/internal/database/repository"
	"github.com/jask/tabnav/internal/logging"
)

// env is everything a command needs once configuration is loaded.
type env struct {
	cfg    config.Config
	logger *log.Logger
	db     *sql.DB
	states *repository.NavStateRepo

	closers []io.Closer
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openEnv(configPath string) (*env, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger, logFile, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, logger: logger, closers: []io.Closer{logFile}}

	db, err := database.OpenAndMigrate(cfg.Database.Path)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.db = db
	e.closers = append(e.closers, db)
	e.states = repository.NewNavStateRepo(db)
	logger.Debug("environment ready", "db", cfg.Database.Path)
	return e, nil
}

func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}
