package gateway

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/alovak/payment-sandbox/gateway/models"
	"github.com/alovak/payment-sandbox/internal/expiry"
	"github.com/alovak/payment-sandbox/internal/luhn"
)

// Validate applies every field rule to req and reports all failures
// together; it never stops at the first error and never panics. The
// returned ValidatedPayment is only usable when the FieldErrors map is
// empty. now anchors the expiration check so callers control the clock.
func Validate(req models.PaymentRequest, now time.Time) (models.ValidatedPayment, models.FieldErrors) {
	errs := models.FieldErrors{}
	payment := models.ValidatedPayment{}

	if len(strings.TrimSpace(req.CardHolder)) < 5 {
		errs["cardHolder"] = "Card holder must be at least 5 characters long."
	} else {
		payment.CardHolder = req.CardHolder
	}

	number := stripSpaces(req.CardNumber)
	switch {
	case number == "":
		errs["cardNumber"] = "Card number is required."
	case !isDigits(number) || len(number) < 12 || len(number) > 19:
		errs["cardNumber"] = "Card number must be 12 to 19 digits."
	case !luhn.Valid(number):
		errs["cardNumber"] = "Card number failed the checksum."
	default:
		payment.CardNumber = number
	}

	month, merr := strconv.Atoi(req.ExpirationMonth.String())
	if merr != nil || month < 1 || month > 12 {
		errs["expirationMonth"] = "Expiration month must be between 1 and 12."
	} else {
		payment.ExpirationMonth = month
	}

	year, yerr := strconv.Atoi(req.ExpirationYear.String())
	if yerr != nil || year < 2000 {
		errs["expirationYear"] = "Expiration year must be 2000 or later."
	} else {
		payment.ExpirationYear = year
	}

	// The one cross-field rule: only checked when month and year are
	// individually fine, and attributed to expirationMonth.
	_, badMonth := errs["expirationMonth"]
	_, badYear := errs["expirationYear"]
	if !badMonth && !badYear && expiry.Expired(year, month, now) {
		errs["expirationMonth"] = "Card is expired."
	}

	if n := len(req.CVV); (n != 3 && n != 4) || !isDigits(req.CVV) {
		errs["cvv"] = "CVV must be 3 or 4 digits."
	} else {
		payment.CVV = req.CVV
	}

	amount, aerr := req.Amount.Float64()
	if aerr != nil || math.IsNaN(amount) || amount <= 0 {
		errs["amount"] = "Amount must be greater than 0."
	} else {
		payment.Amount = amount
	}

	if currency := strings.TrimSpace(req.Currency); len(currency) != 3 {
		errs["currency"] = "Currency must be a 3-letter code."
	} else {
		payment.Currency = strings.ToUpper(currency)
	}

	return payment, errs
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
