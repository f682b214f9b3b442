package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository"
)

type localStorageRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewLocalStorageRepository creates a KeyValueStore backed by the
// local_storage table
func NewLocalStorageRepository(db *sql.DB, logger *zap.Logger) *localStorageRepository {
	return &localStorageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *localStorageRepository) Get(ctx context.Context, scope, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM local_storage
		WHERE scope = $1 AND key = $2
	`

	var value sql.NullString
	err := r.db.QueryRowContext(ctx, query, scope, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to read local storage",
			zap.String("scope", scope),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, err
	}

	if !value.Valid {
		return nil, nil
	}
	return []byte(value.String), nil
}

func (r *localStorageRepository) Update(ctx context.Context, scope, key string, fn repository.UpdateFunc) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The row must exist before FOR UPDATE can lock it.
	ensure := `
		INSERT INTO local_storage (scope, key, value, updated_at)
		VALUES ($1, $2, NULL, $3)
		ON CONFLICT (scope, key) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, ensure, scope, key, time.Now()); err != nil {
		r.logger.Error("Failed to prepare local storage row", zap.String("scope", scope), zap.String("key", key), zap.Error(err))
		return err
	}

	lock := `
		SELECT value
		FROM local_storage
		WHERE scope = $1 AND key = $2
		FOR UPDATE
	`
	var value sql.NullString
	if err := tx.QueryRowContext(ctx, lock, scope, key).Scan(&value); err != nil {
		r.logger.Error("Failed to lock local storage row", zap.String("scope", scope), zap.String("key", key), zap.Error(err))
		return err
	}

	var current []byte
	if value.Valid {
		current = []byte(value.String)
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	write := `
		UPDATE local_storage
		SET value = $3, updated_at = $4
		WHERE scope = $1 AND key = $2
	`
	if _, err := tx.ExecContext(ctx, write, scope, key, string(next), time.Now()); err != nil {
		r.logger.Error("Failed to write local storage", zap.String("scope", scope), zap.String("key", key), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit local storage update: %w", err)
	}
	return nil
}
