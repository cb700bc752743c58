package domain

// LineItem is one product in a quote cart. Quantity is always at least 1.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l LineItem) LineTotal() int64 {
	return l.Product.PriceKES * int64(l.Quantity)
}
