// PostgreSQL wiring for the repository manager: repository constructors and
// goose migrations over the embedded SQL files.
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/draftkeeper/internal/dbx"
	"github.com/dmitrijs2005/draftkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/delegations"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/durable"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Delegations returns a delegations.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Delegations(db dbx.DBTX) delegations.Repository {
	return delegations.NewPostgresRepository(db)
}

// DurableVersions returns a durable.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) DurableVersions(db dbx.DBTX) durable.Repository {
	return durable.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
