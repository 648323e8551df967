// Package app wires the record store, session manager and repositories for
// the CLI front end.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"alumni-connect/internal/repositories"
	"alumni-connect/internal/session"
	"alumni-connect/internal/store"
	"alumni-connect/pkg/config"
)

// App holds every data-layer entry point. Callers must Close it.
type App struct {
	Config        *config.Config
	Log           *zap.Logger
	Store         store.Store
	Session       *session.Manager
	Users         repositories.UserRepository
	Posts         repositories.PostRepository
	Notifications repositories.NotificationRepository
	Conversations repositories.ConversationRepository
	Requests      repositories.RequestRepository
	Jobs          repositories.JobRepository
	Events        repositories.EventRepository
}

// New loads configuration, opens the record store, and builds the
// repositories on top of it.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := newLogger(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	st, err := store.Open(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("opening record store: %w", err)
	}

	notifications := repositories.NewNotificationRepository(st)
	return &App{
		Config:        cfg,
		Log:           log,
		Store:         st,
		Session:       session.NewManager(st),
		Users:         repositories.NewUserRepository(st),
		Posts:         repositories.NewPostRepository(st),
		Notifications: notifications,
		Conversations: repositories.NewConversationRepository(st, notifications),
		Requests:      repositories.NewRequestRepository(st, notifications),
		Jobs:          repositories.NewJobRepository(st),
		Events:        repositories.NewEventRepository(st),
	}, nil
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Close releases the store. Sync errors on stderr logging are expected and
// ignored.
func (a *App) Close() {
	if err := a.Store.Close(); err != nil {
		a.Log.Warn("closing store", zap.Error(err))
	}
	_ = a.Log.Sync()
}
