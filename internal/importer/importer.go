package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"laptophub/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, p domain.Product, position int) error
}

// CSVImporter reads a laptop price list and upserts one product per id.
// A row with an empty id and an image URL adds that image to the product
// above it.
type CSVImporter struct {
	reader *csv.Reader
	repo   ProductWriter
	logger *zap.SugaredLogger
}

func NewCSVImporter(r io.Reader, repo ProductWriter, logger *zap.SugaredLogger) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &CSVImporter{reader: csvr, repo: repo, logger: logger}
}

var requiredHeaders = []string{"id", "slug", "name", "brand", "price_kes"}

// Run parses every row and returns the number of products written.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, h := range requiredHeaders {
		if _, ok := index[h]; !ok {
			return 0, fmt.Errorf("missing column %q", h)
		}
	}

	var (
		current  *domain.Product
		line     = 1
		imported int
		ids      = map[string]int{}
		slugs    = map[string]int{}
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		if err := i.save(ctx, current, imported); err != nil {
			return err
		}
		imported++
		return nil
	}

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}

		id := pick(record, index, "id")
		if id == "" {
			// Continuation rows carry extra images for the current product.
			if current != nil {
				current.Images = append(current.Images, pickList(record, index, "image", "images")...)
			}
			continue
		}

		if err := flush(); err != nil {
			return imported, err
		}
		p, err := parseProduct(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if prev, dup := ids[p.ID]; dup {
			return imported, fmt.Errorf("row %d: %w: id %q already on row %d", line, domain.ErrInvalidProduct, p.ID, prev)
		}
		if prev, dup := slugs[p.Slug]; dup {
			return imported, fmt.Errorf("row %d: %w: slug %q already on row %d", line, domain.ErrInvalidProduct, p.Slug, prev)
		}
		ids[p.ID], slugs[p.Slug] = line, line
		current = p
	}

	if err := flush(); err != nil {
		return imported, err
	}
	i.logger.Infof("importer: imported products=%d", imported)
	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, p *domain.Product, position int) error {
	if len(p.Images) > 0 && p.Image == "" {
		p.Image = p.Images[0]
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := i.repo.Upsert(ctx, *p, position); err != nil {
		return fmt.Errorf("upsert product %q: %w", p.ID, err)
	}
	i.logger.Debugf("importer: saved id=%s slug=%s images=%d", p.ID, p.Slug, len(p.Images))
	return nil
}

func parseProduct(record []string, index map[string]int) (*domain.Product, error) {
	p := &domain.Product{
		ID:             pick(record, index, "id"),
		Slug:           pick(record, index, "slug"),
		Name:           pick(record, index, "name"),
		Brand:          pick(record, index, "brand"),
		Category:       pick(record, index, "category"),
		Description:    pick(record, index, "description"),
		CPU:            pick(record, index, "cpu"),
		RAM:            pick(record, index, "ram"),
		Storage:        pick(record, index, "storage"),
		GPU:            pick(record, index, "gpu"),
		Display:        pick(record, index, "display"),
		Image:          pick(record, index, "image"),
		Images:         pickList(record, index, "images"),
		Highlights:     pickList(record, index, "highlights"),
		KeyFeatures:    pickList(record, index, "key_features"),
		TargetAudience: pickList(record, index, "target_audience"),
		InStock:        true,
	}
	if p.Slug == "" || p.Name == "" || p.Brand == "" {
		return nil, fmt.Errorf("%w: missing required fields for id %q", domain.ErrInvalidProduct, p.ID)
	}
	if p.Image != "" && len(p.Images) == 0 {
		p.Images = []string{p.Image}
	}

	var err error
	if p.PriceKES, err = parseAmount(pick(record, index, "price_kes")); err != nil {
		return nil, fmt.Errorf("price_kes for id %q: %w", p.ID, err)
	}
	if raw := pick(record, index, "original_price_kes"); raw != "" {
		original, err := parseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("original_price_kes for id %q: %w", p.ID, err)
		}
		if original > 0 {
			p.OriginalPriceKES = domain.Int64Ptr(original)
		}
	}
	if raw := pick(record, index, "rating"); raw != "" {
		if p.Rating, err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, fmt.Errorf("rating for id %q: %w", p.ID, err)
		}
	}
	if raw := pick(record, index, "reviews"); raw != "" {
		if p.Reviews, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("reviews for id %q: %w", p.ID, err)
		}
	}
	if raw := pick(record, index, "in_stock"); raw != "" {
		p.InStock = parseBool(raw)
	}
	p.IsNew = parseBool(pick(record, index, "is_new"))
	p.IsFeatured = parseBool(pick(record, index, "is_featured"))
	return p, nil
}

// parseAmount accepts whole shillings, optionally grouped with commas.
func parseAmount(raw string) (int64, error) {
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return 0, errors.New("empty amount")
	}
	return strconv.ParseInt(raw, 10, 64)
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

// pickList reads ";"-separated values from each named column in turn.
func pickList(record []string, index map[string]int, keys ...string) []string {
	var out []string
	for _, key := range keys {
		for _, v := range strings.Split(pick(record, index, key), ";") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
