package gateway

import (
	"fmt"
	"time"

	"github.com/alovak/payment-sandbox/gateway/models"
	"github.com/alovak/payment-sandbox/internal/card"
	"github.com/google/uuid"
)

const approvedMessage = "Payment approved."

// Service runs the authorization flow: validate, build, store.
type Service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Authorize validates req and, when every rule passes, records an
// approved transaction. Field failures come back as a non-empty
// FieldErrors map with nothing stored; the error return is reserved for
// store failures.
func (s *Service) Authorize(req models.PaymentRequest) (*models.Transaction, models.FieldErrors, error) {
	payment, fieldErrs := Validate(req, s.now())
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	transaction := buildTransaction(payment, s.now())
	if err := s.repo.CreateTransaction(transaction); err != nil {
		return nil, nil, fmt.Errorf("storing transaction: %w", err)
	}

	return transaction, nil, nil
}

// GetTransaction returns the transaction for the given identifier.
func (s *Service) GetTransaction(transactionID string) (*models.Transaction, error) {
	transaction, err := s.repo.GetTransaction(transactionID)
	if err != nil {
		return nil, fmt.Errorf("finding transaction: %w", err)
	}

	return transaction, nil
}

// buildTransaction turns a validated payment into an immutable approved
// transaction. The sandbox has no decline path: everything the
// validator lets through is approved.
func buildTransaction(payment models.ValidatedPayment, processedAt time.Time) *models.Transaction {
	return &models.Transaction{
		TransactionID:   uuid.New().String(),
		Status:          models.StatusApproved,
		Message:         approvedMessage,
		CardBrand:       card.DetectBrand(payment.CardNumber),
		CardHolder:      payment.CardHolder,
		Last4:           card.Last4(payment.CardNumber),
		Amount:          payment.Amount,
		Currency:        payment.Currency,
		ExpirationMonth: payment.ExpirationMonth,
		ExpirationYear:  payment.ExpirationYear,
		ProcessedAt:     processedAt,
	}
}
