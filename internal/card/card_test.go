package card

import "testing"

func TestDetectBrand(t *testing.T) {
	cases := []struct {
		in   string
		want Brand
	}{
		{"4242424242424242", BrandVisa},
		{"4000000000002", BrandVisa},     // 13-digit visa
		{"4242 4242 4242 4242", BrandVisa},
		{"5500000000000004", BrandMastercard},
		{"5100000000000008", BrandMastercard},
		{"2221000000000009", BrandMastercard}, // extended range lower bound
		{"2720990000000007", BrandMastercard},
		{"2721000000000005", BrandUnknown}, // just past the extended range
		{"340000000000009", BrandAmex},
		{"370000000000002", BrandAmex},
		{"6011000000000004", BrandDiscover},
		{"6500000000000002", BrandDiscover},
		{"1234567890123", BrandUnknown},
		{"", BrandUnknown},
		{"no digits here", BrandUnknown},
		{"340000000000009000", BrandUnknown}, // amex prefix, wrong length
	}
	for _, c := range cases {
		if got := DetectBrand(c.in); got != c.want {
			t.Fatalf("DetectBrand(%q) got %s want %s", c.in, got, c.want)
		}
		// classification is pure: a second call must agree
		if got := DetectBrand(c.in); got != c.want {
			t.Fatalf("DetectBrand(%q) second call got %s want %s", c.in, got, c.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"4242 4242 4242 4242", "4242424242424242"},
		{"4242-4242-4242-4242", "4242424242424242"},
		{" 4242\t4242 ", "42424242"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Fatalf("Sanitize(%q) got %q want %q", c.in, got, c.want)
		}
	}
}

func TestLast4(t *testing.T) {
	if got := Last4("4242 4242 4242 4242"); got != "4242" {
		t.Fatalf("Last4 got %q want %q", got, "4242")
	}
	if got := Last4("123"); got != "123" {
		t.Fatalf("Last4 got %q want %q", got, "123")
	}
}

func TestMask(t *testing.T) {
	if got := Mask("4242424242424242"); got != "************4242" {
		t.Fatalf("Mask got %q", got)
	}
	if got := Mask("123"); got != "***" {
		t.Fatalf("Mask got %q", got)
	}
	if got := Mask(""); got != "" {
		t.Fatalf("Mask got %q", got)
	}
}
