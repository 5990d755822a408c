// Package cache persists the last-known session snapshot in a local sqlite
// key-value store so the application can restore it at the next start.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"recipekeeper/internal/dbx"
	"recipekeeper/internal/models"
)

// Keys in the metadata table. The cache holds exactly one snapshot.
const (
	snapshotKey = "userData"
	savedAtKey  = "savedAt"
)

// CredentialCache stores and retrieves the serialized session. It does not
// validate expiry; callers decide what to do with a stale snapshot.
type CredentialCache struct {
	db *sql.DB
}

// New binds a CredentialCache to an open, migrated cache database.
func New(db *sql.DB) *CredentialCache {
	return &CredentialCache{db: db}
}

// Save overwrites the stored snapshot with the given session.
func (c *CredentialCache) Save(ctx context.Context, s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	savedAt, err := time.Now().UTC().MarshalText()
	if err != nil {
		return fmt.Errorf("failed to serialize timestamp: %w", err)
	}

	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, snapshotKey, data); err != nil {
			return err
		}
		return set(ctx, tx, savedAtKey, savedAt)
	})
}

// Restore reads the snapshot back. A missing snapshot yields (nil, nil).
// A snapshot that cannot be deserialized yields an error.
func (c *CredentialCache) Restore(ctx context.Context) (*models.Session, error) {
	var value []byte
	err := c.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, snapshotKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	var s models.Session
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, fmt.Errorf("failed to deserialize session snapshot: %w", err)
	}
	return &s, nil
}

// Clear removes the snapshot; clearing an empty cache is not an error.
func (c *CredentialCache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx,
		`DELETE FROM metadata WHERE key IN (?, ?)`, snapshotKey, savedAtKey)
	if err != nil {
		return fmt.Errorf("failed to clear session snapshot: %w", err)
	}
	return nil
}

func set(ctx context.Context, tx dbx.DBTX, key string, value []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}
