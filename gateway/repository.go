package gateway

import (
	"fmt"
	"sync"

	"github.com/alovak/payment-sandbox/gateway/models"
)

var (
	ErrNotFound = fmt.Errorf("not found")
	ErrConflict = fmt.Errorf("conflict")
)

// Repository is the in-process transaction store. Transactions are
// inserted once, never updated, and live until the process exits. The
// mutex keeps the single-insert invariant under concurrent requests.
type Repository struct {
	mu           sync.RWMutex
	transactions map[string]*models.Transaction
}

func NewRepository() *Repository {
	return &Repository{
		transactions: make(map[string]*models.Transaction),
	}
}

// CreateTransaction inserts a transaction keyed by its identifier.
// Identifiers are generated fresh per transaction, so a duplicate
// insert is a conflict, not an overwrite.
func (r *Repository) CreateTransaction(transaction *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.transactions[transaction.TransactionID]; ok {
		return fmt.Errorf("transaction %s exists: %w", transaction.TransactionID, ErrConflict)
	}
	r.transactions[transaction.TransactionID] = transaction

	return nil
}

// GetTransaction looks up a transaction by identifier. An absent
// identifier is a normal outcome, reported as ErrNotFound.
func (r *Repository) GetTransaction(transactionID string) (*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transaction, ok := r.transactions[transactionID]
	if !ok {
		return nil, ErrNotFound
	}

	return transaction, nil
}

// Count returns the number of stored transactions.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.transactions)
}
