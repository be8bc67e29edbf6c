package finance

import (
	"context"
	"time"
)

// LedgerRepository defines the interface for ledger persistence.
// Entries are append-only; there is no update or delete.
type LedgerRepository interface {
	// Append persists a new ledger entry
	Append(ctx context.Context, entry *LedgerEntry) error

	// FindBetween finds entries with a date inside [from, to), oldest first
	FindBetween(ctx context.Context, from, to time.Time) ([]LedgerEntry, error)
}

// CashbookRepository defines the interface for cashbook persistence.
// Entries are append-only; there is no update or delete.
type CashbookRepository interface {
	// Append persists a new cashbook entry
	Append(ctx context.Context, entry *CashbookEntry) error

	// FindBetween finds entries with a date inside [from, to), oldest first
	FindBetween(ctx context.Context, from, to time.Time) ([]CashbookEntry, error)
}
