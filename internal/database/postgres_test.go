package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"sort"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restore)
	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return nil, errors.New("bad") }
	_, err := NewPgxPool(context.Background(), "postgres://erp")
	require.ErrorContains(t, err, "NewPgxPool")

	var gotURL string
	pgxpoolNew = func(_ context.Context, url string) (*pgxpool.Pool, error) {
		gotURL = url
		return &pgxpool.Pool{}, nil
	}
	db, err := NewPgxPool(context.Background(), "postgres://erp")
	require.NoError(t, err)
	require.NotNil(t, db)
	require.Equal(t, "postgres://erp", gotURL)
}

func okDriver(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
func okSource(fs.FS, string) (src.Driver, error)                  { return nil, nil }
func okOpen(string, string) (*sql.DB, error)                      { return sql.Open("pgx", "") }

func withMigrator(m migrateInstance, err error) func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
	return func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) { return m, err }
}

func TestMigrate(t *testing.T) {
	steps := map[string]func(string) error{
		"up":   RunMigrations,
		"down": RollbackAll,
	}
	tests := []struct {
		name    string
		setup   func()
		wantErr map[string]bool
	}{
		{
			name:    "open fails",
			setup:   func() { sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") } },
			wantErr: map[string]bool{"up": true, "down": true},
		},
		{
			name: "driver fails",
			setup: func() {
				postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
			},
			wantErr: map[string]bool{"up": true, "down": true},
		},
		{
			name:    "source fails",
			setup:   func() { iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") } },
			wantErr: map[string]bool{"up": true, "down": true},
		},
		{
			name:    "migrate instance fails",
			setup:   func() { migrateNewWithInstance = withMigrator(nil, errors.New("mig")) },
			wantErr: map[string]bool{"up": true, "down": true},
		},
		{
			name:    "apply fails",
			setup:   func() { migrateNewWithInstance = withMigrator(fakeMigrator{upErr: errors.New("u"), downErr: errors.New("d")}, nil) },
			wantErr: map[string]bool{"up": true, "down": true},
		},
		{
			name:    "no change is not an error",
			setup:   func() { migrateNewWithInstance = withMigrator(fakeMigrator{upErr: migrate.ErrNoChange, downErr: migrate.ErrNoChange}, nil) },
			wantErr: map[string]bool{},
		},
		{
			name:    "applied",
			setup:   func() { migrateNewWithInstance = withMigrator(fakeMigrator{}, nil) },
			wantErr: map[string]bool{},
		},
	}
	for _, tt := range tests {
		for dir, step := range steps {
			t.Run(tt.name+"/"+dir, func(t *testing.T) {
				t.Cleanup(restore)
				sqlOpenDB = okOpen
				postgresWithInstanceFn = okDriver
				iofsNewFn = okSource
				migrateNewWithInstance = withMigrator(fakeMigrator{}, nil)
				tt.setup()

				err := step("postgres://erp")
				if tt.wantErr[dir] {
					require.Error(t, err)
				} else {
					require.NoError(t, err)
				}
			})
		}
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	require.Equal(t, []string{
		"000001_create_users.down.sql",
		"000001_create_users.up.sql",
		"000002_create_projects.down.sql",
		"000002_create_projects.up.sql",
	}, names)

	users, err := fs.ReadFile(migrationsFS, "migrations/000001_create_users.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(users), "users_email_key UNIQUE (email)")
}
