package card

import (
	"strconv"
	"strings"
)

// Brand is the card network label inferred from the number pattern.
// It is advisory metadata, not a validity gate.
type Brand string

const (
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "amex"
	BrandDiscover   Brand = "discover"
	BrandUnknown    Brand = "unknown"
)

// brandRules are evaluated in order; the first match wins.
var brandRules = []struct {
	brand Brand
	match func(pan string) bool
}{
	{BrandVisa, isVisa},
	{BrandMastercard, isMastercard},
	{BrandAmex, isAmex},
	{BrandDiscover, isDiscover},
}

// DetectBrand classifies a card number. The number is sanitized before
// matching; anything that matches no rule is BrandUnknown.
func DetectBrand(number string) Brand {
	pan := Sanitize(number)
	if pan == "" {
		return BrandUnknown
	}
	for _, r := range brandRules {
		if r.match(pan) {
			return r.brand
		}
	}
	return BrandUnknown
}

func isVisa(pan string) bool {
	if pan[0] != '4' {
		return false
	}
	return len(pan) == 13 || len(pan) == 16 || len(pan) == 19
}

func isMastercard(pan string) bool {
	if len(pan) != 16 {
		return false
	}
	if pan[0] == '5' && pan[1] >= '1' && pan[1] <= '5' {
		return true
	}
	// extended BIN range introduced in 2017
	prefix, err := strconv.Atoi(pan[:4])
	if err != nil {
		return false
	}
	return prefix >= 2221 && prefix <= 2720
}

func isAmex(pan string) bool {
	if len(pan) != 15 {
		return false
	}
	return strings.HasPrefix(pan, "34") || strings.HasPrefix(pan, "37")
}

func isDiscover(pan string) bool {
	if len(pan) != 16 {
		return false
	}
	return strings.HasPrefix(pan, "6011") || strings.HasPrefix(pan, "65")
}

// Sanitize strips every non-digit character from a card number.
func Sanitize(number string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, number)
}

// Last4 returns the final four digits of the sanitized number.
func Last4(number string) string {
	pan := Sanitize(number)
	if len(pan) <= 4 {
		return pan
	}
	return pan[len(pan)-4:]
}

// Mask hides all but the last four digits of the sanitized number.
// Use it anywhere a card number could end up in a log.
func Mask(number string) string {
	pan := Sanitize(number)
	n := len(pan)
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	return strings.Repeat("*", n-4) + pan[n-4:]
}
