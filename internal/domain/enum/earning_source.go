package enum

// EarningSource identifies where an income entry came from
type EarningSource string

const (
	// EarningSourceSale is income recorded when a transaction is closed
	EarningSourceSale EarningSource = "sale"
	// EarningSourceManual is income entered by hand from the earnings panel
	EarningSourceManual EarningSource = "manual"
)

// Valid reports whether the source is a known value
func (s EarningSource) Valid() bool {
	return s == EarningSourceSale || s == EarningSourceManual
}
