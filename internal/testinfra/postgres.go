//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/GoArmGo/MovieApp/internal/database/migrations"
	"github.com/GoArmGo/MovieApp/internal/logger"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "postgres:16-alpine"
	postgresUser  = "movie"
	postgresPass  = "movie"
	postgresDB    = "movies"
)

// IsDockerAvailable проверяет, доступен ли Docker daemon.
func IsDockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, "docker", "info").Run() == nil
}

// RequireDockerEnv заставляет интеграционные тесты падать без Docker вместо пропуска.
const RequireDockerEnv = "INTEGRATION_REQUIRE_DOCKER"

// NoDockerExitCode сообщает в stderr, что пакет не проверялся, и возвращает код
// выхода для TestMain: 0 по умолчанию, 1 если задан INTEGRATION_REQUIRE_DOCKER=1.
func NoDockerExitCode(pkg string) int {
	if os.Getenv(RequireDockerEnv) == "1" {
		fmt.Fprintf(os.Stderr, "FAIL: %s integration tests need Docker (%s=1)\n", pkg, RequireDockerEnv)
		return 1
	}
	fmt.Fprintf(os.Stderr, "SKIPPED: %s integration tests did not run, Docker is not available; set %s=1 to fail instead\n",
		pkg, RequireDockerEnv)
	return 0
}

// Postgres: запущенный контейнер PostgreSQL с применённой схемой.
type Postgres struct {
	container testcontainers.Container
	DSN       string
	DB        *sqlx.DB
}

// StartPostgres запускает контейнер, применяет миграции и открывает пул.
func StartPostgres(ctx context.Context) (*Postgres, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     postgresUser,
				"POSTGRES_PASSWORD": postgresPass,
				"POSTGRES_DB":       postgresDB,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	pg := &Postgres{container: c}

	host, err := c.Host(ctx)
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, fmt.Errorf("container host: %w", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, fmt.Errorf("container port: %w", err)
	}
	pg.DSN = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPass, host, port.Port(), postgresDB)

	if err := migrations.Up(pg.DSN, logger.Discard()); err != nil {
		_ = pg.Terminate(ctx)
		return nil, err
	}

	pg.DB, err = sqlx.ConnectContext(ctx, "postgres", pg.DSN)
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, fmt.Errorf("connect to container: %w", err)
	}
	return pg, nil
}

// Reset очищает все таблицы между тестами.
func (p *Postgres) Reset(ctx context.Context) error {
	_, err := p.DB.ExecContext(ctx,
		`TRUNCATE users, favorite_movies, watchlist_movies, valuation_movies RESTART IDENTITY`)
	return err
}

func (p *Postgres) Terminate(ctx context.Context) error {
	if p.DB != nil {
		_ = p.DB.Close()
	}
	return p.container.Terminate(ctx)
}
