package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type postgresSnapshotRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository stores snapshots in the snapshots table.
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		ping:     db.PingContext,
		snapshot: NewPostgresSnapshotRepository(db),
	}
}

func NewPostgresSnapshotRepository(db *sqlx.DB) SnapshotRepository {
	return &postgresSnapshotRepository{
		db: db,
	}
}

// Save upserts the document. The json column keeps the bytes as written.
func (r *postgresSnapshotRepository) Save(name string, data []byte) error {
	query := `
		INSERT INTO snapshots (name, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET payload = EXCLUDED.payload,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(query, name, string(data), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (r *postgresSnapshotRepository) Load(name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var payload string
	err := r.db.GetContext(ctx, &payload, `SELECT payload FROM snapshots WHERE name = $1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return []byte(payload), nil
}
