package model

import (
	"time"
)

// IdempotencyKey maps a client-supplied key to the captured request and its
// durable response. Exactly one row per key; Response stays nil until the
// outcome is captured, in the same transaction as the terminal state write.
type IdempotencyKey struct {
	Key       string    `gorm:"primaryKey;size:255"`
	UserID    string    `gorm:"not null;index;size:36"`
	Request   []byte    `gorm:"type:jsonb"`
	Response  []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}
