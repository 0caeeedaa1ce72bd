package model

import (
	"time"
)

// Transaction represents the database model for money movements
type Transaction struct {
	ID             string    `gorm:"primaryKey;size:36"`
	IdempotencyKey string    `gorm:"uniqueIndex;not null;size:255"`
	FromVPA        string    `gorm:"column:from_vpa;not null;size:255"`
	ToVPA          string    `gorm:"column:to_vpa;not null;size:255"`
	FromAccountID  *string   `gorm:"index;size:36"` // nil for deposits
	ToAccountID    *string   `gorm:"index;size:36"` // nil for withdrawals
	Amount         int64     `gorm:"not null"`      // Amount in paise
	Status         string    `gorm:"not null;index;size:20"`
	Type           string    `gorm:"not null;size:20"`
	Reason         string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
