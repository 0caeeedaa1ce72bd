package model

import (
	"time"
)

// AccountBalance is the cached per-account balance row. Balance is in paise
// and must equal the signed sum of the account's ledger entries at every commit.
type AccountBalance struct {
	AccountID string    `gorm:"primaryKey;size:36"`
	Balance   int64     `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Define relationships
	Account BankAccount `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for AccountBalance
func (AccountBalance) TableName() string {
	return "account_balances"
}
