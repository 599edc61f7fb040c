// Package repomanager vends repository implementations bound to a database
// handle and owns schema migrations for the durable backend.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/draftkeeper/internal/dbx"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/delegations"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/durable"
)

// RepositoryManager constructs repositories over an arbitrary DBTX so the
// same repository code runs inside and outside transactions.
type RepositoryManager interface {
	Delegations(db dbx.DBTX) delegations.Repository
	DurableVersions(db dbx.DBTX) durable.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
