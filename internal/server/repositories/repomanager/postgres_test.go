package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pressly/goose/v3"
)

func TestPostgresRepositoryManager_VendsRepositories(t *testing.T) {
	m := NewPostgresRepositoryManager()

	if m.Users(nil) == nil {
		t.Fatal("Users() returned nil")
	}
	if m.Tasks(nil) == nil {
		t.Fatal("Tasks() returned nil")
	}
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	boom := errors.New("goose failed")
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	}

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), nil); !errors.Is(err, boom) {
		t.Fatalf("want wrapped goose error, got %v", err)
	}
}

func TestRunMigrations_Success(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	called := false
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		if dir != "." {
			t.Fatalf("unexpected migrations dir: %q", dir)
		}
		return nil
	}

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
	if !called {
		t.Fatal("goose.UpContext was not invoked")
	}
}
