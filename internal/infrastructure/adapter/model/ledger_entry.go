package model

import (
	"time"
)

// LedgerEntry represents one append-only double-entry leg. Rows are never
// updated or deleted.
type LedgerEntry struct {
	ID        string    `gorm:"primaryKey;size:36"`
	AccountID string    `gorm:"not null;index;size:36"`
	TxnID     string    `gorm:"column:txn_id;not null;index;size:36"`
	Type      string    `gorm:"not null;size:10"`
	Amount    int64     `gorm:"not null"` // Amount in paise, always positive
	CreatedAt time.Time `gorm:"not null"`

	// Define relationships
	Account     BankAccount `gorm:"foreignKey:AccountID;references:ID"`
	Transaction Transaction `gorm:"foreignKey:TxnID;references:ID"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
