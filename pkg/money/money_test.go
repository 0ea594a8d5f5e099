package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount Amount
		want   string
	}{
		{"zero", 0, "Rp 0"},
		{"single digit", 5, "Rp 5"},
		{"three digits", 999, "Rp 999"},
		{"four digits", 1500, "Rp 1.500"},
		{"typical price", 15000, "Rp 15.000"},
		{"millions", 1250000, "Rp 1.250.000"},
		{"max unit price", 99999999, "Rp 99.999.999"},
		{"negative formats absolute value", -20000, "Rp 20.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Amount
	}{
		{"plain digits", "15000", 15000},
		{"grouped input", "1.250.000", 1250000},
		{"prefixed input", "Rp 50.000", 50000},
		{"empty string", "", 0},
		{"no digits", "Rp .-", 0},
		{"mixed garbage", "a1b2c3", 123},
		{"caps at twelve digits", "1234567890123456", 123456789012},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, s := range []string{"Rp 1.500", "Rp 999", "Rp 15.000", "Rp 99.999.999"} {
		assert.Equal(t, s, Format(Parse(s)))
	}
}
