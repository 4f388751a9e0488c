package app

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/havenstay/backend/internal/config"
	"github.com/havenstay/backend/internal/repositories"
	"github.com/havenstay/backend/internal/seeding"
	"github.com/havenstay/backend/internal/services"
	"github.com/havenstay/backend/internal/session"
	"github.com/havenstay/backend/internal/store"
	"github.com/havenstay/backend/internal/utils"
)

// App wires the store, session, service and repository layers together.
type App struct {
	Config  *config.Config
	Store   store.Store
	Session *session.Manager

	AuthService  services.AuthService
	TaskRepo     repositories.TaskRepository
	PropertyRepo repositories.PropertyRepository
	BookingRepo  repositories.BookingRepository

	cron *cron.Cron
}

func NewApp(cfg *config.Config) (*App, error) {
	st, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := seeding.SeedDemoUsers(st); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("seed demo users: %w", err)
	}

	sess := session.NewManager()

	a := &App{
		Config:       cfg,
		Store:        st,
		Session:      sess,
		AuthService:  services.NewAuthService(st, sess, cfg),
		TaskRepo:     repositories.NewTaskRepository(st, sess, cfg),
		PropertyRepo: repositories.NewPropertyRepository(st, sess, cfg),
		BookingRepo:  repositories.NewBookingRepository(st, sess, cfg),
		cron:         cron.New(),
	}

	// Re-activate a persisted session, if any survived the restart.
	if u := a.AuthService.Restore(); u != nil {
		utils.Logger.Infof("Restored session for %s", u.Email)
	}

	if _, err := a.cron.AddFunc("@hourly", a.reportStoreStats); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("schedule maintenance job: %w", err)
	}
	a.cron.Start()

	return a, nil
}

func (a *App) Close() {
	if a.cron != nil {
		a.cron.Stop()
	}
	if err := a.Store.Close(); err != nil {
		utils.Logger.WithError(err).Warn("Closing store")
	} else {
		utils.Logger.Info("Store closed.")
	}
}

// reportStoreStats logs the key population of the store so an operator can
// watch collections grow in long-running demo deployments.
func (a *App) reportStoreStats() {
	keys := a.Store.Keys()
	utils.Logger.Infof("Store holds %d keys: %v", len(keys), keys)
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "filesystem":
		return store.NewFilesystemStore(cfg.DataDir)
	case "sqlite", "":
		return store.NewSQLiteStore(cfg.DataDir + "/havenstay.db")
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
