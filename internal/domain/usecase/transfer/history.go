package transfer

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	errs "github.com/adhishcp/upi-app/internal/domain/error"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
	"github.com/adhishcp/upi-app/internal/domain/port/usecase"
)

var periodPattern = regexp.MustCompile(`^(\d+)([dwmy])$`)

// parsePeriod converts a period string like "30d", "1w", "1m", "1y" into a
// duration. Months are 30 days and years 365; history summaries don't need
// calendar precision.
func parsePeriod(period string) (time.Duration, error) {
	m := periodPattern.FindStringSubmatch(period)
	if m == nil {
		return 0, fmt.Errorf("%w: invalid period %q", errs.ErrInvalidRequest, period)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: invalid period %q", errs.ErrInvalidRequest, period)
	}

	day := 24 * time.Hour
	switch m[2] {
	case "d":
		return time.Duration(n) * day, nil
	case "w":
		return time.Duration(n) * 7 * day, nil
	case "m":
		return time.Duration(n) * 30 * day, nil
	default:
		return time.Duration(n) * 365 * day, nil
	}
}

// GetTransaction returns a transaction with its ledger legs, scoped to the caller
func (s *Service) GetTransaction(ctx context.Context, txnID, userID string) (*usecase.TransactionDetail, error) {
	txn, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, txnID, userID)
	if err != nil {
		return nil, err
	}

	caller, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	legs, err := s.uow.GetLedgerRepository(ctx).ListByTxn(ctx, txn.ID)
	if err != nil {
		return nil, err
	}

	detail := &usecase.TransactionDetail{
		TransactionView: s.projectTransaction(ctx, txn, caller.VPA, map[string]*entity.Counterparty{}),
		LedgerEntries:   make([]usecase.LedgerEntryView, 0, len(legs)),
	}
	for _, leg := range legs {
		detail.LedgerEntries = append(detail.LedgerEntries, usecase.LedgerEntryView{
			Type:      leg.Type,
			Amount:    entity.FormatPaise(leg.Paise),
			CreatedAt: leg.CreatedAt,
		})
	}
	return detail, nil
}

// GetTransactionStatus returns the minimal status projection for polling
func (s *Service) GetTransactionStatus(ctx context.Context, txnID, userID string) (*usecase.TransactionStatusView, error) {
	txn, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, txnID, userID)
	if err != nil {
		return nil, err
	}
	view := &usecase.TransactionStatusView{
		ID:        txn.ID,
		Status:    txn.Status,
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
	if txn.Status == entity.StatusFailed {
		view.Reason = txn.Reason
	}
	return view, nil
}

// ListTransactions pages through the caller's history newest first
func (s *Service) ListTransactions(ctx context.Context, userID string, filter persistence.TransactionFilter, page persistence.Page) (*usecase.TransactionPage, error) {
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 || page.Size > 100 {
		page.Size = 20
	}

	caller, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	txns, total, err := s.uow.GetTransactionRepository(ctx).ListForUser(ctx, userID, filter, page)
	if err != nil {
		return nil, err
	}

	// memo so repeated counterparties in one page cost one lookup each
	memo := map[string]*entity.Counterparty{}
	views := make([]usecase.TransactionView, 0, len(txns))
	for _, txn := range txns {
		views = append(views, s.projectTransaction(ctx, txn, caller.VPA, memo))
	}

	totalPages := total / int64(page.Size)
	if total%int64(page.Size) != 0 {
		totalPages++
	}

	return &usecase.TransactionPage{
		Transactions: views,
		Pagination: usecase.Pagination{
			Page:       page.Number,
			Limit:      page.Size,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// Summarize aggregates the caller's activity over a trailing period
func (s *Service) Summarize(ctx context.Context, userID, period string) (*usecase.SummaryView, error) {
	if period == "" {
		period = "30d"
	}
	window, err := parsePeriod(period)
	if err != nil {
		return nil, err
	}

	since := s.timeProvider.Now().Add(-window)
	summary, err := s.uow.GetTransactionRepository(ctx).Summarize(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	successRate := "0.00%"
	if summary.Total > 0 {
		successRate = fmt.Sprintf("%.2f%%", float64(summary.Completed)/float64(summary.Total)*100)
	}

	return &usecase.SummaryView{
		Period:        period,
		Total:         summary.Total,
		Completed:     summary.Completed,
		Failed:        summary.Failed,
		SuccessRate:   successRate,
		TotalSent:     entity.FormatPaise(summary.TotalSentPaise),
		TotalReceived: entity.FormatPaise(summary.TotalRecvPaise),
	}, nil
}

// projectTransaction renders the history view with direction and counterparty
// resolved relative to the caller's VPA
func (s *Service) projectTransaction(ctx context.Context, txn *entity.Transaction, callerVPA string, memo map[string]*entity.Counterparty) usecase.TransactionView {
	view := usecase.TransactionView{
		ID:        txn.ID,
		Type:      txn.Type,
		Status:    txn.Status,
		Amount:    txn.Amount(),
		FromVPA:   txn.FromVPA,
		ToVPA:     txn.ToVPA,
		Reason:    txn.Reason,
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}

	otherVPA := txn.ToVPA
	if txn.FromVPA == callerVPA {
		view.Direction = "outgoing"
	} else {
		view.Direction = "incoming"
		otherVPA = txn.FromVPA
	}
	view.Counterparty = s.resolveCounterparty(ctx, otherVPA, memo)
	return view
}

func (s *Service) resolveCounterparty(ctx context.Context, vpa string, memo map[string]*entity.Counterparty) *entity.Counterparty {
	if vpa == entity.SystemVPA {
		return &entity.Counterparty{Name: "System", VPA: entity.SystemVPA}
	}
	if cp, ok := memo[vpa]; ok {
		return cp
	}

	cp := &entity.Counterparty{VPA: vpa}
	if user, err := s.uow.GetUserRepository(ctx).GetByVPA(ctx, vpa); err == nil {
		cp.Name = user.Name
	}
	memo[vpa] = cp
	return cp
}
