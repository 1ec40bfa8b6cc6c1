package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/MovieApp/internal/app"
	"github.com/GoArmGo/MovieApp/internal/config"
	"github.com/GoArmGo/MovieApp/internal/core/ports"
	"github.com/GoArmGo/MovieApp/internal/database/client"
	"github.com/GoArmGo/MovieApp/internal/database/migrations"
	"github.com/GoArmGo/MovieApp/internal/database/postgres"
	"github.com/GoArmGo/MovieApp/internal/database/storage"
	"github.com/GoArmGo/MovieApp/internal/handler"
	"github.com/GoArmGo/MovieApp/internal/logger"
	"github.com/GoArmGo/MovieApp/internal/metrics"
	"github.com/GoArmGo/MovieApp/internal/security"
	"github.com/GoArmGo/MovieApp/internal/usecase"
	"github.com/jmoiron/sqlx"
)

// Storages: выбранная реализация хранилищ
type Storages struct {
	Users ports.UserStorage
	Lists ports.MovieListStorage
}

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp(ctx context.Context) (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента
	dbClient, err := client.NewClient(ctx, cfg, slogger)
	if err != nil {
		return nil, err
	}

	// дальше при любой ошибке пул нужно закрыть
	application, err := assemble(cfg, dbClient, slogger)
	if err != nil {
		_ = dbClient.Close()
		return nil, err
	}

	slogger.Info("all dependencies initialized", "storage_backend", cfg.Database.StorageBackend)
	return application, nil
}

func assemble(cfg *config.Config, dbClient *client.Client, slogger *slog.Logger) (*app.App, error) {
	// 3. Инициализация хранилищ
	stores, err := NewStorages(cfg.Database.StorageBackend, dbClient.DB, slogger)
	if err != nil {
		return nil, err
	}

	// 4. Хеширование паролей и токены
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	issuer, err := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	// 5. Инициализация бизнес-логики (usecases)
	identityUseCase := usecase.NewIdentityUseCase(stores.Users, hasher, issuer, slogger)
	movieListUseCase := usecase.NewMovieListUseCase(stores.Lists, slogger)

	// 6. HTTP
	httpMetrics := metrics.New()
	router := handler.NewRouter(handler.RouterConfig{
		Identity:       handler.NewIdentityHandler(identityUseCase, httpMetrics, slogger),
		MovieList:      handler.NewMovieListHandler(movieListUseCase, slogger),
		Health:         handler.NewHealthHandler(dbClient, slogger),
		Metrics:        httpMetrics,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AuthRateLimit:  cfg.AuthRateLimit,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         slogger,
	})

	migrate := func() error {
		return migrations.Up(cfg.DatabaseURL, slogger)
	}

	// 7. Сборка итогового приложения
	return app.NewApp(cfg, slogger, router, dbClient, migrate), nil
}

// NewStorages создаёт хранилища выбранного бэкенда поверх общего пула
func NewStorages(backend string, db *sqlx.DB, slogger *slog.Logger) (*Storages, error) {
	switch backend {
	case config.StorageBackendSQLX:
		return &Storages{
			Users: storage.NewUserStorage(db, slogger),
			Lists: storage.NewListStorage(db, slogger),
		}, nil

	case config.StorageBackendGorm:
		gormDB, err := postgres.Open(db.DB, slogger)
		if err != nil {
			return nil, err
		}
		pg := postgres.NewPostgresStorage(gormDB, slogger)
		return &Storages{Users: pg, Lists: pg}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
