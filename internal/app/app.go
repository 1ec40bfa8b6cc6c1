package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/MovieApp/internal/config"
)

const (
	ModeServer  = "server"
	ModeMigrate = "migrate"
)

// App держит собранные зависимости и управляет их жизненным циклом
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	handler http.Handler
	db      io.Closer
	migrate func() error
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	handler http.Handler,
	db io.Closer,
	migrate func() error,
) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
		db:      db,
		migrate: migrate,
	}
}

// Logger возвращает основной логгер приложения
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run запускает приложение в выбранном режиме и блокируется до SIGINT/SIGTERM.
// Пул соединений закрывается при любом исходе.
func (a *App) Run(ctx context.Context, mode string) (err error) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() {
		if closeErr := a.Shutdown(); closeErr != nil {
			a.logger.Error("failed to release resources", "error", closeErr)
			err = errors.Join(err, closeErr)
		}
	}()

	a.logger.Info("starting application", "mode", mode)

	switch mode {
	case ModeServer:
		if a.cfg.Database.AutoMigrate {
			if err := a.migrate(); err != nil {
				return err
			}
		}
		return runServer(ctx, a.cfg, a.handler, a.logger)

	case ModeMigrate:
		return a.migrate()

	default:
		return fmt.Errorf("unknown mode %q (use %q or %q)", mode, ModeServer, ModeMigrate)
	}
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	a.db = nil
	return nil
}
