package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*SessionR
	*ChallengeCacheR
}

func NewRepository(db QueryI, sessionKey string) Repository {
	kv := &kvStore{db: db}
	return Repository{
		SessionR:        NewSessionRepository(kv, sessionKey),
		ChallengeCacheR: NewChallengeCacheRepository(kv),
	}
}

type kvStore struct {
	db QueryI
}

func (k *kvStore) put(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	query := `INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	if _, err := k.db.ExecContext(ctx, query, key, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}

// get decodes the value stored under key into dest. It reports false when the
// key is absent.
func (k *kvStore) get(ctx context.Context, key string, dest any) (bool, error) {
	var raw string
	err := k.db.GetContext(ctx, &raw, `SELECT value FROM kv_store WHERE key = $1`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("database error: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (k *kvStore) delete(ctx context.Context, key string) error {
	if _, err := k.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (k *kvStore) keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := k.db.SelectContext(ctx, &keys, `SELECT key FROM kv_store WHERE key LIKE $1 ESCAPE '\' ORDER BY key`, likePrefix(prefix))
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return keys, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePrefix matches keys starting with prefix taken literally.
func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}
