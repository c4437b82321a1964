package gateway_test

import (
	"testing"
	"time"

	"github.com/alovak/payment-sandbox/gateway"
	"github.com/alovak/payment-sandbox/gateway/models"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	repo := gateway.NewRepository()

	transaction := &models.Transaction{
		TransactionID: "tx-1",
		Status:        models.StatusApproved,
		Last4:         "4242",
		ProcessedAt:   time.Now(),
	}

	require.NoError(t, repo.CreateTransaction(transaction))
	require.Equal(t, 1, repo.Count())

	got, err := repo.GetTransaction("tx-1")
	require.NoError(t, err)
	require.Equal(t, transaction, got)
}

func TestRepository_NotFound(t *testing.T) {
	repo := gateway.NewRepository()

	_, err := repo.GetTransaction("never-issued")
	require.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestRepository_DuplicateInsert(t *testing.T) {
	repo := gateway.NewRepository()

	transaction := &models.Transaction{TransactionID: "tx-1"}
	require.NoError(t, repo.CreateTransaction(transaction))

	err := repo.CreateTransaction(&models.Transaction{TransactionID: "tx-1"})
	require.ErrorIs(t, err, gateway.ErrConflict)
	require.Equal(t, 1, repo.Count())

	// the original entry is never overwritten
	got, err := repo.GetTransaction("tx-1")
	require.NoError(t, err)
	require.Same(t, transaction, got)
}
