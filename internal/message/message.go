// Package message renders the plain-text WhatsApp messages sent to the store.
package message

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	xmessage "golang.org/x/text/message"
	"golang.org/x/text/number"

	"laptophub/internal/domain"
)

const (
	emptyCart = "Hello, I would like to inquire about laptops."
	closing   = "Please confirm availability and delivery options."
	help      = "Hello! I need help choosing a laptop."
)

// Contact is the optional shopper details entered on the cart page.
type Contact struct {
	Name string
	Note string
}

// Cart renders the order summary for items. Lines show unit prices and
// subtotal is printed as given.
func Cart(items []domain.LineItem, subtotal int64, c Contact) string {
	if len(items) == 0 {
		return emptyCart
	}

	var b strings.Builder
	if name := strings.TrimSpace(c.Name); name != "" {
		fmt.Fprintf(&b, "Hello, I'm %s.", name)
	} else {
		b.WriteString("Hello,")
	}
	b.WriteString(" I'd like to order the following laptops:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "• %s x%d — %s\n", item.Product.Name, item.Quantity, KES(item.Product.PriceKES))
	}
	fmt.Fprintf(&b, "Subtotal: %s", KES(subtotal))
	if note := strings.TrimSpace(c.Note); note != "" {
		fmt.Fprintf(&b, "\nNotes: %s", note)
	}
	b.WriteString("\n")
	b.WriteString(closing)
	return b.String()
}

// Product renders the single-product inquiry.
func Product(p domain.Product) string {
	return fmt.Sprintf("Hello, I'm interested in the %s (%s, %s, %s). Please share availability and best price.",
		p.Name, p.CPU, p.RAM, p.Storage)
}

func Help() string {
	return help
}

// Amount formats n with comma thousands separators, e.g. 1,234,999.
func Amount(n int64) string {
	return xmessage.NewPrinter(language.English).Sprint(number.Decimal(n))
}

func KES(n int64) string {
	return "KES " + Amount(n)
}
