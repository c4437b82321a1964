package luhn

// Valid reports whether number passes the Luhn checksum. Non-digit
// characters are stripped before checking; the sanitized number must be
// 12 to 19 digits long.
func Valid(number string) bool {
	digits := make([]int, 0, len(number))
	for i := 0; i < len(number); i++ {
		if number[i] >= '0' && number[i] <= '9' {
			digits = append(digits, int(number[i]-'0'))
		}
	}
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}

	sum, dbl := 0, false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}

	return sum%10 == 0
}
