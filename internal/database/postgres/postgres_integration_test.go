//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/GoArmGo/MovieApp/internal/database/storagetest"
	"github.com/GoArmGo/MovieApp/internal/logger"
	"github.com/GoArmGo/MovieApp/internal/testinfra"
)

var pg *testinfra.Postgres

func TestMain(m *testing.M) {
	if !testinfra.IsDockerAvailable() {
		os.Exit(testinfra.NoDockerExitCode("postgres"))
	}

	ctx := context.Background()
	var err error
	pg, err = testinfra.StartPostgres(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	_ = pg.Terminate(ctx)
	os.Exit(code)
}

func newStorage(t *testing.T) *PostgresStorage {
	t.Helper()
	db, err := Open(pg.DB.DB, logger.Discard())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return NewPostgresStorage(db, logger.Discard())
}

func reset(t *testing.T) {
	t.Helper()
	if err := pg.Reset(context.Background()); err != nil {
		t.Fatalf("reset database: %v", err)
	}
}

func TestGormUserStorage(t *testing.T) {
	storagetest.RunUserStorage(t, newStorage(t), reset)
}

func TestGormListStorage(t *testing.T) {
	storagetest.RunMovieListStorage(t, newStorage(t), reset)
}
