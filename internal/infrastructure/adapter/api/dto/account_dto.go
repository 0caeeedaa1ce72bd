package dto

// CreateAccountRequest is the body of POST /accounts
type CreateAccountRequest struct {
	AccountRef string `json:"accountRef" binding:"required"`
}

// UpdateAccountRequest is the body of PATCH /accounts/:accountId
type UpdateAccountRequest struct {
	AccountRef string `json:"accountRef" binding:"required"`
}
