package httpserver

import (
	"strings"

	"laptophub/internal/domain"
	"laptophub/internal/message"
	cartsvc "laptophub/internal/service/cart"
	productsvc "laptophub/internal/service/product"
)

const currencyKES = "KES"

type moneyValue struct {
	CurrencyCode string `json:"currencyCode"`
	Amount       int64  `json:"amount"`
	Formatted    string `json:"formatted"`
}

func kes(n int64) moneyValue {
	return moneyValue{CurrencyCode: currencyKES, Amount: n, Formatted: message.KES(n)}
}

type discountValue struct {
	Amount  moneyValue `json:"amount"`
	Percent int        `json:"percent"`
}

type productResponse struct {
	domain.Product
	Price    moneyValue     `json:"price"`
	Discount *discountValue `json:"discount,omitempty"`
}

type productListResponse struct {
	Count   int               `json:"count"`
	Results []productResponse `json:"results"`
	Facets  productsvc.Facets `json:"facets"`
	Query   productQueryEcho  `json:"query"`
}

type productQueryEcho struct {
	Search  string `json:"q,omitempty"`
	Brand   string `json:"brand,omitempty"`
	Min     int64  `json:"minPrice,omitempty"`
	Max     int64  `json:"maxPrice,omitempty"`
	InStock bool   `json:"inStock,omitempty"`
	Sort    string `json:"sort"`
}

type productDetailResponse struct {
	Product productResponse `json:"product"`
	Gallery []string        `json:"gallery"`
	Inquiry cartsvc.Inquiry `json:"inquiry"`
}

type compareResponse struct {
	Count   int               `json:"count"`
	Results []productResponse `json:"results"`
}

type lineItemResponse struct {
	ProductID string     `json:"productId"`
	Slug      string     `json:"slug"`
	Name      string     `json:"name"`
	Brand     string     `json:"brand"`
	Image     string     `json:"image"`
	InStock   bool       `json:"inStock"`
	UnitPrice moneyValue `json:"unitPrice"`
	Quantity  int        `json:"quantity"`
	LineTotal moneyValue `json:"lineTotal"`
}

type cartResponse struct {
	LineItems []lineItemResponse `json:"lineItems"`
	ItemCount int                `json:"itemCount"`
	Subtotal  moneyValue         `json:"subtotal"`
}

type sessionResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

type responseMapper struct {
	imageHost string
}

// imageURL prefixes root-relative asset paths with the configured host.
func (m responseMapper) imageURL(path string) string {
	if m.imageHost == "" || !strings.HasPrefix(path, "/") {
		return path
	}
	return strings.TrimRight(m.imageHost, "/") + path
}

func (m responseMapper) images(paths []string) []string {
	if len(paths) == 0 {
		return paths
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = m.imageURL(p)
	}
	return out
}

func (m responseMapper) product(p domain.Product) productResponse {
	p.Image = m.imageURL(p.Image)
	p.Images = m.images(p.Images)
	resp := productResponse{Product: p, Price: kes(p.PriceKES)}
	if amount, pct, ok := p.Discount(); ok {
		resp.Discount = &discountValue{Amount: kes(amount), Percent: pct}
	}
	return resp
}

func (m responseMapper) products(ps []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, m.product(p))
	}
	return out
}

func (m responseMapper) cart(v cartsvc.View) cartResponse {
	items := make([]lineItemResponse, 0, len(v.Items))
	for _, li := range v.Items {
		items = append(items, lineItemResponse{
			ProductID: li.Product.ID,
			Slug:      li.Product.Slug,
			Name:      li.Product.Name,
			Brand:     li.Product.Brand,
			Image:     m.imageURL(li.Product.Image),
			InStock:   li.Product.InStock,
			UnitPrice: kes(li.Product.PriceKES),
			Quantity:  li.Quantity,
			LineTotal: kes(li.LineTotal()),
		})
	}
	return cartResponse{LineItems: items, ItemCount: v.ItemCount, Subtotal: kes(v.Subtotal)}
}
