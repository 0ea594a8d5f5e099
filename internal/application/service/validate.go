package service

import (
	"strings"
	"unicode/utf8"

	"github.com/prasety/kasirku-api/pkg/apperror"
	"github.com/prasety/kasirku-api/pkg/money"
)

// ValidateCandidate checks a (name, raw price) pair before it may enter the
// cart or the catalog. Both fields are checked independently; only the first
// failure per field is reported. The returned name is trimmed and the price
// parsed; both are only meaningful when the error slice is empty.
func ValidateCandidate(name, priceRaw string) (string, money.Amount, []apperror.FieldError) {
	var fieldErrors []apperror.FieldError

	name = strings.TrimSpace(name)
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "name",
			Message: "Nama barang wajib diisi",
		})
	} else if utf8.RuneCountInString(name) > 50 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "name",
			Message: "Nama barang terlalu panjang (maksimal 50 karakter)",
		})
	}

	price := money.Parse(priceRaw)
	if !strings.ContainsAny(priceRaw, "0123456789") {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "price",
			Message: "Harga barang wajib diisi",
		})
	} else if price <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "price",
			Message: "Harga harus lebih dari 0",
		})
	} else if price > money.MaxUnitPrice {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "price",
			Message: "Harga terlalu besar (maksimal Rp 99.999.999)",
		})
	}

	return name, price, fieldErrors
}
