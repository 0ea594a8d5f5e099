package request

// AddLineRequest carries a cart line candidate. Price arrives as the raw
// text the operator typed; parsing strips everything but digits.
type AddLineRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ConfirmRequest carries the token of a pending destructive action.
type ConfirmRequest struct {
	Token string `json:"token" binding:"required"`
}
