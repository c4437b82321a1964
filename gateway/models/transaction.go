package models

import (
	"time"

	"github.com/alovak/payment-sandbox/internal/card"
)

// StatusApproved is the only transaction status the sandbox issues;
// every request that clears validation is approved.
const StatusApproved = "approved"

// Transaction is one approved mock authorization. It is created exactly
// once per accepted request and never mutated afterwards.
type Transaction struct {
	TransactionID   string     `json:"transactionId"`
	Status          string     `json:"status"`
	Message         string     `json:"message"`
	CardBrand       card.Brand `json:"cardBrand"`
	CardHolder      string     `json:"cardHolder"`
	Last4           string     `json:"last4"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	ExpirationMonth int        `json:"expirationMonth"`
	ExpirationYear  int        `json:"expirationYear"`
	ProcessedAt     time.Time  `json:"processedAt"`
}
