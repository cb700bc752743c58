package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a laptop listed in the catalog. Prices are whole Kenyan shillings.
type Product struct {
	ID               string         `json:"id"`
	Slug             string         `json:"slug"`
	Name             string         `json:"name"`
	Brand            string         `json:"brand"`
	Category         string         `json:"category"`
	Description      string         `json:"description,omitempty"`
	PriceKES         int64          `json:"priceKES"`
	OriginalPriceKES *int64         `json:"originalPrice,omitempty"`
	CPU              string         `json:"cpu"`
	RAM              string         `json:"ram"`
	Storage          string         `json:"storage"`
	GPU              string         `json:"gpu,omitempty"`
	Display          string         `json:"display"`
	Image            string         `json:"image"`
	Images           []string       `json:"images,omitempty"`
	Rating           float64        `json:"rating"`
	Reviews          int            `json:"reviews"`
	InStock          bool           `json:"inStock"`
	IsNew            bool           `json:"isNew,omitempty"`
	IsFeatured       bool           `json:"isFeatured,omitempty"`
	Highlights       []string       `json:"highlights,omitempty"`
	KeyFeatures      []string       `json:"keyFeatures,omitempty"`
	TargetAudience   []string       `json:"targetAudience,omitempty"`
	DetailedSpecs    *DetailedSpecs `json:"detailedSpecs,omitempty"`
}

// DetailedSpecs is the optional long-form specification sheet.
type DetailedSpecs struct {
	Processor    string   `json:"processor"`
	Memory       string   `json:"memory"`
	Storage      string   `json:"storage"`
	Graphics     string   `json:"graphics"`
	Display      string   `json:"display"`
	Weight       string   `json:"weight"`
	Dimensions   string   `json:"dimensions"`
	Ports        []string `json:"ports"`
	Connectivity []string `json:"connectivity"`
	OS           string   `json:"os"`
	Battery      string   `json:"battery"`
	Warranty     string   `json:"warranty"`
}

// Discount reports the amount saved against the original price and the saving
// as a whole percentage rounded half up. ok is false when there is no original
// price or it does not exceed the current price.
func (p Product) Discount() (amount int64, percent int, ok bool) {
	if p.OriginalPriceKES == nil || *p.OriginalPriceKES <= p.PriceKES {
		return 0, 0, false
	}
	original := *p.OriginalPriceKES
	amount = original - p.PriceKES
	pct := decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(original)).
		Round(0)
	return amount, int(pct.IntPart()), true
}

// Gallery returns the product images, falling back to the primary image.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		out := make([]string, len(p.Images))
		copy(out, p.Images)
		return out
	}
	if p.Image == "" {
		return nil
	}
	return []string{p.Image}
}

// Validate checks the invariants a single record must hold before it can be
// listed: identity fields present, non-negative price, and an original price
// no lower than the current one.
func (p Product) Validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("%w: id required", ErrInvalidProduct)
	case strings.TrimSpace(p.Slug) == "":
		return fmt.Errorf("%w: slug required for id %q", ErrInvalidProduct, p.ID)
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name required for id %q", ErrInvalidProduct, p.ID)
	case p.PriceKES < 0:
		return fmt.Errorf("%w: negative price for id %q", ErrInvalidProduct, p.ID)
	case p.OriginalPriceKES != nil && *p.OriginalPriceKES < p.PriceKES:
		return fmt.Errorf("%w: original price below price for id %q", ErrInvalidProduct, p.ID)
	}
	return nil
}

func Int64Ptr(v int64) *int64 {
	return &v
}
