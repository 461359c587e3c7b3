package models

// CartItem is a configuration in the cart. Id is the composite key
// productId-colorId-selectionKey, so equal configurations share an entry.
type CartItem struct {
	Id string `json:"id"`
	Configuration
	Quantity int `json:"quantity"`
}

// LineTotal is the configuration price times the quantity.
func (ci CartItem) LineTotal() int {
	return ci.TotalPrice * ci.Quantity
}

type CartSummary struct {
	Items     []CartItem `json:"items"`
	Total     int        `json:"total"`
	ItemCount int        `json:"itemCount"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartQuantityResponse reports the state of a line after a quantity change.
type CartQuantityResponse struct {
	ItemId     string `json:"itemId"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unitPrice"`
	TotalPrice int    `json:"totalPrice"`
	Removed    bool   `json:"removed"`
}

type CartItemIssue string

const (
	CartItemIssueProductGone  CartItemIssue = "product_unavailable"
	CartItemIssueColorGone    CartItemIssue = "color_unavailable"
	CartItemIssueIncomplete   CartItemIssue = "incomplete_configuration"
	CartItemIssuePriceChanged CartItemIssue = "price_changed"
)

// CartItemValidation explains why a line no longer matches the catalog.
type CartItemValidation struct {
	Item         CartItem        `json:"item"`
	Issues       []CartItemIssue `json:"issues"`
	CurrentPrice int             `json:"currentPrice"`
}

type CartValidationResult struct {
	ValidItems      []CartItem           `json:"validItems"`
	InvalidItems    []CartItemValidation `json:"invalidItems"`
	TotalItems      int                  `json:"totalItems"`
	TotalValid      int                  `json:"totalValid"`
	TotalInvalid    int                  `json:"totalInvalid"`
	HasInvalidItems bool                 `json:"hasInvalidItems"`
}
