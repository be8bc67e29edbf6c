package pos

import (
	"context"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories a commit
// touches. When a function is executed within a transaction scope, all
// repository operations are part of the same database transaction and are
// committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to every repository a sale or
// return commit writes. All repositories returned share the same underlying
// database transaction, so the five tables of a commit move together.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// SaleRepo returns the sale repository scoped to the current transaction
	SaleRepo() sales.SaleRepository
	// ReturnRepo returns the return record repository scoped to the current transaction
	ReturnRepo() sales.ReturnRecordRepository
	// LedgerRepo returns the ledger repository scoped to the current transaction
	LedgerRepo() finance.LedgerRepository
	// CashbookRepo returns the cashbook repository scoped to the current transaction
	CashbookRepo() finance.CashbookRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is not
// required.
type NoOpTransactionScope struct {
	productRepo  catalog.ProductRepository
	saleRepo     sales.SaleRepository
	returnRepo   sales.ReturnRecordRepository
	ledgerRepo   finance.LedgerRepository
	cashbookRepo finance.CashbookRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	saleRepo sales.SaleRepository,
	returnRepo sales.ReturnRecordRepository,
	ledgerRepo finance.LedgerRepository,
	cashbookRepo finance.CashbookRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		returnRepo:   returnRepo,
		ledgerRepo:   ledgerRepo,
		cashbookRepo: cashbookRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// SaleRepo returns the sale repository.
func (s *NoOpTransactionScope) SaleRepo() sales.SaleRepository {
	return s.saleRepo
}

// ReturnRepo returns the return record repository.
func (s *NoOpTransactionScope) ReturnRepo() sales.ReturnRecordRepository {
	return s.returnRepo
}

// LedgerRepo returns the ledger repository.
func (s *NoOpTransactionScope) LedgerRepo() finance.LedgerRepository {
	return s.ledgerRepo
}

// CashbookRepo returns the cashbook repository.
func (s *NoOpTransactionScope) CashbookRepo() finance.CashbookRepository {
	return s.cashbookRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
