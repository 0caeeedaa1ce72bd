package entity

import (
	"encoding/json"
	"time"

	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
)

// IdempotencyRecord maps a client-supplied key to a single accepted request
// and its eventual outcome. Exactly one row exists per key, ever; the response
// is populated exactly once, atomically with the transaction's terminal state.
type IdempotencyRecord struct {
	Key       string
	UserID    string
	Request   json.RawMessage
	Response  json.RawMessage // nil until the outcome is captured
	CreatedAt time.Time
}

// NewIdempotencyRecord snapshots the original request before any side effect
func NewIdempotencyRecord(key, userID string, request json.RawMessage, timeProvider coreport.TimeProvider) *IdempotencyRecord {
	return &IdempotencyRecord{
		Key:       key,
		UserID:    userID,
		Request:   request,
		CreatedAt: timeProvider.Now(),
	}
}

// HasResponse reports whether the outcome has been captured
func (r *IdempotencyRecord) HasResponse() bool {
	return len(r.Response) > 0
}

// Outcome is the durable result payload persisted on the idempotency record
// and returned verbatim on every replay of the same key
type Outcome struct {
	Success       bool              `json:"success"`
	TransactionID string            `json:"transactionId"`
	Amount        string            `json:"amount"`
	Status        TransactionStatus `json:"status"`
	FromVPA       string            `json:"fromVpa,omitempty"`
	ToVPA         string            `json:"toVpa,omitempty"`
	Error         string            `json:"error,omitempty"`
	ErrorCode     int               `json:"errorCode,omitempty"`
}

// Marshal renders the outcome as the stored response payload
func (o Outcome) Marshal() json.RawMessage {
	raw, err := json.Marshal(o)
	if err != nil {
		// Outcome has no unmarshalable fields; keep the signature narrow
		panic(err)
	}
	return raw
}

// ParseOutcome decodes a stored response payload
func ParseOutcome(raw json.RawMessage) (Outcome, error) {
	var o Outcome
	err := json.Unmarshal(raw, &o)
	return o, err
}
