// Package export renders the catalog as a downloadable price list.
package export

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"

	"laptophub/internal/domain"
)

const (
	SheetName   = "Laptops"
	FileName    = "laptops.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var Headers = []string{
	"ID", "Slug", "Name", "Brand", "Category", "PriceKES", "OriginalPriceKES",
	"CPU", "RAM", "Storage", "GPU", "Display", "InStock",
}

// WriteCatalog writes one header row then one row per product in the given order.
func WriteCatalog(w io.Writer, products []domain.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range Headers {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Slug)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Brand)
		row.AddCell().SetString(p.Category)
		row.AddCell().SetInt64(p.PriceKES)
		original := row.AddCell()
		if p.OriginalPriceKES != nil {
			original.SetInt64(*p.OriginalPriceKES)
		}
		row.AddCell().SetString(p.CPU)
		row.AddCell().SetString(p.RAM)
		row.AddCell().SetString(p.Storage)
		row.AddCell().SetString(p.GPU)
		row.AddCell().SetString(p.Display)
		row.AddCell().SetString(yesNo(p.InStock))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
