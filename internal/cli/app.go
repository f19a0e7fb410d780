// Package cli is the interactive presentation layer: a REPL that drives the
// auth and task services. It never touches persisted state directly; its
// view of the world is reconciled purely from what the services return.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dkovalev/todovault/internal/config"
	"github.com/dkovalev/todovault/internal/logging"
	"github.com/dkovalev/todovault/internal/models"
	"github.com/dkovalev/todovault/internal/repositories/credentials"
	"github.com/dkovalev/todovault/internal/repositories/tasks"
	"github.com/dkovalev/todovault/internal/repositories/users"
	"github.com/dkovalev/todovault/internal/services"
	"github.com/dkovalev/todovault/internal/session"
	"github.com/dkovalev/todovault/internal/storage"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	tasks  services.TaskService
	user   *models.User
	reader *bufio.Reader
	log    logging.Logger
	closer func() error
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, closer, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(store, []byte(cfg.SessionSecret), log)
	auth := services.NewAuthService(
		users.NewStorageRepository(store, log),
		credentials.NewStorageRepository(store, log),
		sessions,
		log,
	)
	taskSvc := services.NewTaskService(tasks.NewStorageRepository(store, log), log)

	return &App{
		config: cfg,
		auth:   auth,
		tasks:  taskSvc,
		reader: bufio.NewReader(os.Stdin),
		log:    log,
		closer: closer,
	}, nil
}

// openStorage builds the persistence medium named by the config. The
// returned closer releases backend resources; it is a no-op for backends
// that hold none.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageBackend {
	case config.BackendFile:
		s, err := storage.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	case config.BackendSQLite:
		s, err := storage.OpenSQLite(ctx, cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.BackendMemory:
		return storage.NewMemoryStorage(), noop, nil
	case config.BackendDisabled:
		return storage.Disabled{}, noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// Run restores the persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.closer() }()

	printlnFn("Welcome to TodoVault (type 'help' for commands)")
	printlnFn("Loading session...")

	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to restore session", "error", err)
	}
	a.user = user
	if a.user != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", a.user.Name))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Email)
}
