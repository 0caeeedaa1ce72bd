package model

import (
	"time"
)

// BankAccount represents the database model for bank accounts
type BankAccount struct {
	ID         string    `gorm:"primaryKey;size:36"`
	UserID     string    `gorm:"not null;index;size:36"`
	AccountRef string    `gorm:"uniqueIndex;not null;size:64"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for BankAccount
func (BankAccount) TableName() string {
	return "bank_accounts"
}
