package models

import "encoding/json"

// PaymentRequest is the untyped inbound payload. Month, year and amount
// decode as json.Number so the validator, not the JSON decoder, decides
// whether they are usable numbers.
type PaymentRequest struct {
	CardNumber      string      `json:"cardNumber"`
	CardHolder      string      `json:"cardHolder"`
	ExpirationMonth json.Number `json:"expirationMonth"`
	ExpirationYear  json.Number `json:"expirationYear"`
	CVV             string      `json:"cvv"`
	Amount          json.Number `json:"amount"`
	Currency        string      `json:"currency"`
}

// ValidatedPayment is a PaymentRequest that passed every validation
// rule, with fields coerced to their proper types. It is only
// meaningful when produced alongside an empty FieldErrors map.
type ValidatedPayment struct {
	CardNumber      string // sanitized, digits only
	CardHolder      string // echoed as submitted
	ExpirationMonth int
	ExpirationYear  int
	CVV             string
	Amount          float64
	Currency        string // uppercased
}

// FieldErrors maps a request field name to a human-readable message so
// a caller can render each message next to the offending form control.
// An empty map signals acceptance.
type FieldErrors map[string]string
