package persistence

import (
	"context"
	"encoding/json"

	"github.com/adhishcp/upi-app/internal/domain/entity"
)

// IdempotencyRepository is the sole writer of idempotency records
type IdempotencyRepository interface {
	// Get retrieves the record for a key, or nil when the key is unseen
	Get(ctx context.Context, key string) (*entity.IdempotencyRecord, error)

	// Create inserts the record before any side effect of the operation
	//
	// Possible errors:
	// - ErrKeyConflict: if another scope inserted the key first
	Create(ctx context.Context, record *entity.IdempotencyRecord) error

	// SetResponse captures the outcome onto the existing record. Called in the
	// same scope as the transaction's terminal-state write so a crash between
	// ledger commit and response capture is impossible.
	SetResponse(ctx context.Context, key string, response json.RawMessage) error
}
