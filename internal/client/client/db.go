package client

import (
	"context"
	"database/sql"
	"log"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/draftkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/queue"
)

type Repositories struct {
	DB       *sql.DB
	Queue    queue.Repository
	Metadata metadata.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	// Set the database dialect
	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	repos := &Repositories{
		DB:       db,
		Queue:    queue.NewSQLiteRepository(db),
		Metadata: metadata.NewSQLiteRepository(db),
	}
	return repos, nil
}
