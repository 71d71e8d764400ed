// Package app wires configuration, storage, extraction, and the HTTP
// server into a runnable process.
package app

import (
	"fmt"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/extract"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/growth"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/logger"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/server"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/store"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/taxonomy"
)

// App is the assembled server process.
type App struct {
	cfg       Config
	log       *logger.Logger
	store     *store.Store
	extractor *extract.Extractor
	server    *server.Server
}

// New builds the full dependency graph from a loaded Config.
func New(cfg Config) (*App, error) {
	log, err := logger.New(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	growthCfg := growth.DefaultConfig()
	if cfg.GrowthConfigPath != "" {
		growthCfg, err = growth.LoadConfig(cfg.GrowthConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load growth config: %w", err)
		}
	}

	extractor, err := extract.New(taxonomy.Default(), growthCfg)
	if err != nil {
		return nil, fmt.Errorf("init extractor: %w", err)
	}

	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("prepare db dir: %w", err)
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	handlers := server.NewHandlers(
		log,
		extractor,
		st.StudentRepo(),
		st.TopicRepo(),
		st.GoalRepo(),
		st.SessionRepo(),
		st.TopicEventRepo(),
		st.MentalBlockRepo(),
	)
	srv := server.New(handlers, cfg.StaticDir, log)

	return &App{
		cfg:       cfg,
		log:       log,
		store:     st,
		extractor: extractor,
		server:    srv,
	}, nil
}

// Extractor exposes the configured extractor for CLI use.
func (a *App) Extractor() *extract.Extractor {
	return a.extractor
}

// Store exposes the backing store for CLI use.
func (a *App) Store() *store.Store {
	return a.store
}

// Run serves HTTP until the listener fails.
func (a *App) Run() error {
	a.log.Info("server starting", "addr", a.cfg.Addr(), "db", a.cfg.DBPath)
	return a.server.Run(a.cfg.Addr())
}

// Close releases the app's resources.
func (a *App) Close() error {
	defer a.log.Sync()
	return a.store.Close()
}
