package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Document keys. The n3-chronos prefix is kept from the original web
// client so an exported profile maps one-to-one onto the old storage.
const (
	KeyItemProgress = "n3-chronos-item-progress"
	KeyUserProgress = "n3-chronos-user-progress"
	KeyUserStats    = "n3-chronos-user-stats"
	KeyCurriculum   = "n3-chronos-curriculum"
)

// DocumentRepo stores JSON documents under named keys. Load returns nil
// bytes (no error) when a key is absent so callers can fall back to
// defaults.
type DocumentRepo interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

type documentRepo struct {
	db *sqlx.DB
}

func (r *documentRepo) Load(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := r.db.GetContext(ctx, &data, `SELECT data FROM documents WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document %q: %w", key, err)
	}
	return []byte(data), nil
}

func (r *documentRepo) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (key, data, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("save document %q: %w", key, err)
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete document %q: %w", key, err)
	}
	return nil
}

// LoadDocument reads and decodes a document, returning def when the key
// is absent or the stored data does not parse. Corruption is logged and
// recovered, never surfaced.
func LoadDocument[T any](ctx context.Context, repo DocumentRepo, key string, def T, logger *slog.Logger) T {
	if logger == nil {
		logger = slog.Default()
	}
	raw, err := repo.Load(ctx, key)
	if err != nil {
		logger.Warn("document load failed, using defaults", "key", key, "err", err)
		return def
	}
	if raw == nil {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("document unparsable, using defaults", "key", key, "err", err)
		return def
	}
	return v
}

// SaveDocument encodes and writes a document. Failures are returned for
// the caller to log; persistence is best-effort by policy.
func SaveDocument(ctx context.Context, repo DocumentRepo, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal document %q: %w", key, err)
	}
	return repo.Save(ctx, key, data)
}
