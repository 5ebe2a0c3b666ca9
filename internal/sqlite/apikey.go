package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/projectops/assistant/internal/repository"
)

// APIKeyRepository manages API keys that map bearer tokens to tenants.
// Only the SHA-256 hash of a key is stored.
type APIKeyRepository struct {
	db *DB
}

// NewAPIKeyRepository creates a new APIKeyRepository
func NewAPIKeyRepository(db *DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

// Issue generates a new key for a tenant and stores its hash. The raw
// key is returned exactly once; it cannot be recovered later.
func (r *APIKeyRepository) Issue(ctx context.Context, tenantID, description string) (string, error) {
	key := uuid.NewString()

	query := `
		INSERT INTO api_keys (key_hash, tenant_id, description)
		VALUES (?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, hashKey(key), tenantID, description); err != nil {
		return "", fmt.Errorf("failed to store api key: %w", err)
	}

	return key, nil
}

// ResolveTenant maps a bearer token to its tenant and stamps last_used.
func (r *APIKeyRepository) ResolveTenant(ctx context.Context, token string) (string, error) {
	hash := hashKey(token)

	var tenantID string
	err := r.db.QueryRowContext(ctx, `SELECT tenant_id FROM api_keys WHERE key_hash = ?`, hash).Scan(&tenantID)
	if err == sql.ErrNoRows {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve api key: %w", err)
	}

	_, _ = r.db.ExecContext(ctx, `UPDATE api_keys SET last_used = ? WHERE key_hash = ?`, time.Now(), hash)

	return tenantID, nil
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
