package request

// ItemRequest carries a catalog item's name and prices, prices as the raw
// text the operator typed.
type ItemRequest struct {
	Name         string `json:"name"`
	BuyingPrice  string `json:"buying_price"`
	SellingPrice string `json:"selling_price"`
}

// ItemFilterRequest represents catalog filter parameters
type ItemFilterRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
}
