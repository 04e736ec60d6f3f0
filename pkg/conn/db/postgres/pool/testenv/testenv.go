// Package testenv starts PostgreSQL for tests in a container.
//
// Tests are skipped when no container runtime is available.
package testenv

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	kpool "github.com/opst/aptsales/pkg/conn/db/postgres/pool"
	kpgschema "github.com/opst/aptsales/pkg/domain/schema/db/postgres"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image    = "postgres:16-alpine"
	user     = "test-user"
	password = "test-pass"
	dbname   = "aptsales"
)

// SchemaRepository is the path to the schema repository of this project.
func SchemaRepository() string {
	_, file, _, _ := runtime.Caller(0)
	// pkg/conn/db/postgres/pool/testenv -> project root
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "..", "..", "schema", "postgres")
}

// PoolBroaker provides connections to the database.
type PoolBroaker interface {
	// GetPool returns a pool.
	//
	// Tables are cleaned up before returning and after t.
	GetPool(ctx context.Context, t *testing.T) kpool.Pool

	// URL is the connection string of the database.
	URL() string
}

type pgConnOptions struct {
	Schema string
}

type PgConnOption func(*pgConnOptions) *pgConnOptions

// WithSchema applies the schema repository to the database before tests.
func WithSchema(repository string) PgConnOption {
	return func(o *pgConnOptions) *pgConnOptions {
		o.Schema = repository
		return o
	}
}

// WithoutSchema leaves the database empty.
func WithoutSchema() PgConnOption {
	return func(o *pgConnOptions) *pgConnOptions {
		o.Schema = ""
		return o
	}
}

type pg struct {
	pool    *pgxpool.Pool
	url     string
	cleanup bool
}

func (p *pg) URL() string {
	return p.url
}

func (p *pg) GetPool(ctx context.Context, t *testing.T) kpool.Pool {
	t.Helper()
	if p.cleanup {
		ClearTables(ctx, p.pool, t)
		t.Cleanup(func() { ClearTables(context.Background(), p.pool, t) })
	}
	return kpool.Wrap(p.pool)
}

// NewPoolBroaker starts a PostgreSQL container living while t.
//
// By default, the schema of this project is applied. Use WithoutSchema to get an empty database.
func NewPoolBroaker(ctx context.Context, t *testing.T, options ...PgConnOption) PoolBroaker {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	opts := &pgConnOptions{Schema: SchemaRepository()}
	for _, o := range options {
		opts = o(opts)
	}

	ctr, err := postgres.Run(
		ctx, image,
		postgres.WithDatabase(dbname),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}

	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)

	if opts.Schema != "" {
		if err := applySchema(ctx, kpool.Wrap(pool), opts.Schema); err != nil {
			t.Fatalf("failed to apply schema: %v", err)
		}
	}

	return &pg{pool: pool, url: url, cleanup: opts.Schema != ""}
}

// ClearTables removes all records in tables of this project.
func ClearTables(ctx context.Context, p *pgxpool.Pool, t *testing.T) {
	t.Helper()

	if _, err := p.Exec(
		ctx,
		`truncate "user", "apartment", "payment_type", "history_type" restart identity cascade`,
		// by cascade, rows in other tables are also deleted.
	); err != nil {
		t.Errorf("fail to clean-up tables: %v", err)
	}
}

func applySchema(ctx context.Context, p kpool.Pool, repository string) error {
	return kpgschema.New(p, repository).Upgrade(ctx)
}
