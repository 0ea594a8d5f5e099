package enum

// TransactionStatus represents the lifecycle state of a finalized transaction
type TransactionStatus int

const (
	// TransactionStatusFinalized means the record is frozen and a receipt
	// can be rendered; the originating cart may still be open.
	TransactionStatusFinalized TransactionStatus = iota
	// TransactionStatusClosed means the operator confirmed starting a new
	// transaction; the sale has been recorded in the earnings ledger.
	TransactionStatusClosed
)

// String returns the string representation of the status
func (s TransactionStatus) String() string {
	switch s {
	case TransactionStatusFinalized:
		return "finalized"
	case TransactionStatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}
