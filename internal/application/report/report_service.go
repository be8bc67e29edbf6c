package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
)

// ReportService derives period reports from committed transactions and the
// ledger and cashbook. It only reads; all figures come out of the same rows
// the commit engines wrote.
type ReportService struct {
	saleRepo     sales.SaleRepository
	ledgerRepo   finance.LedgerRepository
	cashbookRepo finance.CashbookRepository
	logger       *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	saleRepo sales.SaleRepository,
	ledgerRepo finance.LedgerRepository,
	cashbookRepo finance.CashbookRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		saleRepo:     saleRepo,
		ledgerRepo:   ledgerRepo,
		cashbookRepo: cashbookRepo,
		logger:       logger,
	}
}

// SalesSummary aggregates all transactions with a date inside [from, to).
// Because returns are stored as negative-total sales, the net figure is the
// plain sum of all totals.
func (s *ReportService) SalesSummary(ctx context.Context, from, to time.Time) (*SalesSummaryResponse, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	transactions, err := s.saleRepo.FindBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := &SalesSummaryResponse{
		Period:  Period{From: from, To: to},
		Gross:   decimal.Zero,
		Refunds: decimal.Zero,
		Net:     decimal.Zero,
	}
	for idx := range transactions {
		tx := &transactions[idx]
		if tx.IsReturn() {
			summary.Refunds = summary.Refunds.Add(tx.Total.Neg())
			summary.ReturnCount++
		} else {
			summary.Gross = summary.Gross.Add(tx.Total)
			summary.SaleCount++
		}
	}
	summary.Net = summary.Gross.Sub(summary.Refunds)

	return summary, nil
}

// SaleHistory lists transactions matching the filter, newest first by default
func (s *ReportService) SaleHistory(ctx context.Context, filter shared.Filter) (*SaleHistoryResponse, error) {
	transactions, err := s.saleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.saleRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]SaleHistoryItem, 0, len(transactions))
	for idx := range transactions {
		tx := &transactions[idx]
		items = append(items, SaleHistoryItem{
			SaleID:   tx.ID,
			Date:     tx.Date,
			Total:    tx.Total,
			IsReturn: tx.IsReturn(),
			Lines:    len(tx.Items),
		})
	}

	return &SaleHistoryResponse{Items: items, Total: total}, nil
}

// LedgerEntries lists ledger rows of the period with their signed balance
func (s *ReportService) LedgerEntries(ctx context.Context, from, to time.Time) (*BookReportResponse, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.FindBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &BookReportResponse{
		Period:  Period{From: from, To: to},
		Entries: make([]BookEntry, 0, len(entries)),
		Balance: decimal.Zero,
	}
	for idx := range entries {
		entry := &entries[idx]
		report.Entries = append(report.Entries, BookEntry{
			ID:          entry.ID,
			Date:        entry.Date,
			Type:        string(entry.Type),
			Amount:      entry.Amount,
			Signed:      entry.Signed(),
			Description: entry.Description,
			SaleID:      entry.SaleID,
		})
		report.Balance = report.Balance.Add(entry.Signed())
	}

	return report, nil
}

// CashbookEntries lists cashbook rows of the period with their signed balance
func (s *ReportService) CashbookEntries(ctx context.Context, from, to time.Time) (*BookReportResponse, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	entries, err := s.cashbookRepo.FindBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &BookReportResponse{
		Period:  Period{From: from, To: to},
		Entries: make([]BookEntry, 0, len(entries)),
		Balance: decimal.Zero,
	}
	for idx := range entries {
		entry := &entries[idx]
		report.Entries = append(report.Entries, BookEntry{
			ID:          entry.ID,
			Date:        entry.Date,
			Type:        string(entry.Type),
			Amount:      entry.Amount,
			Signed:      entry.Signed(),
			Description: entry.Description,
			SaleID:      entry.SaleID,
		})
		report.Balance = report.Balance.Add(entry.Signed())
	}

	return report, nil
}

func validatePeriod(from, to time.Time) error {
	if !from.Before(to) {
		return shared.NewDomainError("INVALID_PERIOD", "Period start must be before its end")
	}
	return nil
}
