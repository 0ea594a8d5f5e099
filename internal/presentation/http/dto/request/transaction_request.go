package request

// FinalizeRequest carries the cash tendered for a sale, as raw text.
type FinalizeRequest struct {
	Tendered string `json:"tendered"`
}

// CloseRequest confirms starting a new transaction. Without a token the
// call issues one; with a token it executes the reset.
type CloseRequest struct {
	Token string `json:"token"`
}

// TransactionFilterRequest represents history filter parameters
type TransactionFilterRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	From    string `form:"from"`
	To      string `form:"to"`
}
