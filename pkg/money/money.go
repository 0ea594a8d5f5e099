package money

import "strings"

// Amount is a monetary value in whole Rupiah. The Rupiah has no fractional
// unit in this domain, so amounts are plain integer counts.
type Amount = int64

// MaxUnitPrice is the largest unit price accepted for a single item.
const MaxUnitPrice Amount = 99_999_999

// Zero is the display form of a zero (or absent) amount.
const Zero = "Rp 0"

// Format renders an amount as a grouped Rupiah string, e.g. 1250000 ->
// "Rp 1.250.000". Negative amounts are formatted by absolute value; the
// caller decides how to present the sign (shortage, negative change).
func Format(a Amount) string {
	if a == 0 {
		return Zero
	}
	if a < 0 {
		a = -a
	}

	digits := []byte{}
	for a > 0 {
		digits = append(digits, byte('0'+a%10))
		a /= 10
	}

	var b strings.Builder
	b.WriteString("Rp ")
	n := len(digits)
	for i := n - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
		if i > 0 && i%3 == 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Parse extracts an amount from raw user input by stripping every non-digit
// rune. Input with no digits parses to 0; Parse never fails. Digits beyond
// twelve are ignored, matching the input length cap on the register UI.
func Parse(raw string) Amount {
	var a Amount
	var seen int
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if seen == 12 {
			break
		}
		a = a*10 + Amount(r-'0')
		seen++
	}
	return a
}
