package dto

// DepositRequest is the body of POST /transactions/deposit
type DepositRequest struct {
	AccountID string `json:"accountId" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
}

// WithdrawRequest is the body of POST /transactions/withdraw
type WithdrawRequest struct {
	AccountID string `json:"accountId" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
}

// TransferRequest is the body of POST /transactions/transfer
type TransferRequest struct {
	ToVPA         string `json:"toVpa" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	Reason        string `json:"reason"`
	FromAccountID string `json:"fromAccountId"`
}

// BulkTransferRequest is the body of POST /transactions/bulk-transfer
type BulkTransferRequest struct {
	Transfers []TransferRequest `json:"transfers" binding:"required"`
}
