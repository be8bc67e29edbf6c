package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Period is a half-open date range [From, To)
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// SalesSummaryResponse aggregates committed transactions over a period.
// Gross sums forward sales, Refunds sums the absolute refund totals, and
// Net is their difference, which equals the plain sum of all sale totals.
type SalesSummaryResponse struct {
	Period      Period          `json:"period"`
	Gross       decimal.Decimal `json:"gross"`
	Refunds     decimal.Decimal `json:"refunds"`
	Net         decimal.Decimal `json:"net"`
	SaleCount   int             `json:"sale_count"`
	ReturnCount int             `json:"return_count"`
}

// SaleHistoryItem is one transaction in the history listing
type SaleHistoryItem struct {
	SaleID   uuid.UUID       `json:"sale_id"`
	Date     time.Time       `json:"date"`
	Total    decimal.Decimal `json:"total"`
	IsReturn bool            `json:"is_return"`
	Lines    int             `json:"lines"`
}

// SaleHistoryResponse is a page of transactions with the total match count
type SaleHistoryResponse struct {
	Items []SaleHistoryItem `json:"items"`
	Total int64             `json:"total"`
}

// BookEntry is one ledger or cashbook row in report output
type BookEntry struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Signed      decimal.Decimal `json:"signed"`
	Description string          `json:"description"`
	SaleID      *uuid.UUID      `json:"sale_id,omitempty"`
}

// BookReportResponse lists entries of a period with their signed balance
type BookReportResponse struct {
	Period  Period          `json:"period"`
	Entries []BookEntry     `json:"entries"`
	Balance decimal.Decimal `json:"balance"`
}
