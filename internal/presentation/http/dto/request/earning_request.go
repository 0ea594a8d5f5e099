package request

// AddEarningRequest carries a manual income amount, as raw text.
type AddEarningRequest struct {
	Amount string `json:"amount"`
}
