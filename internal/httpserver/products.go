package httpserver

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"laptophub/internal/catalog"
	"laptophub/internal/export"
)

type handlers struct {
	products  productService
	carts     cartService
	sessions  sessionManager
	imageHost string
	logger    *zap.SugaredLogger
}

func (h *handlers) mapper() responseMapper {
	return responseMapper{imageHost: h.imageHost}
}

// parseQuery reads the browse filters. Unparseable numbers disable the bound.
func parseQuery(c *gin.Context) catalog.Query {
	return catalog.Query{
		Search:      strings.TrimSpace(c.Query("q")),
		Brand:       strings.TrimSpace(c.Query("brand")),
		MinPrice:    parseAmount(c.Query("minPrice")),
		MaxPrice:    parseAmount(c.Query("maxPrice")),
		InStockOnly: parseFlag(c.Query("inStock")),
		Sort:        catalog.ParseSort(c.Query("sort")),
	}
}

func parseAmount(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseFlag(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

func (h *handlers) listProducts(c *gin.Context) {
	q := parseQuery(c)
	res := h.products.List(c.Request.Context(), q)
	c.JSON(http.StatusOK, productListResponse{
		Count:   len(res.Products),
		Results: h.mapper().products(res.Products),
		Facets:  res.Facets,
		Query: productQueryEcho{
			Search:  q.Search,
			Brand:   q.Brand,
			Min:     q.MinPrice,
			Max:     q.MaxPrice,
			InStock: q.InStockOnly,
			Sort:    string(q.Sort),
		},
	})
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.products.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	inq, err := h.carts.ProductInquiry(p)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	m := h.mapper()
	c.JSON(http.StatusOK, productDetailResponse{
		Product: m.product(p),
		Gallery: m.images(p.Gallery()),
		Inquiry: inq,
	})
}

// compare accepts repeated slug params or a comma separated slugs param.
func (h *handlers) compare(c *gin.Context) {
	slugs := c.QueryArray("slug")
	if raw := c.Query("slugs"); raw != "" {
		slugs = append(slugs, strings.Split(raw, ",")...)
	}
	found := h.products.Compare(c.Request.Context(), slugs)
	c.JSON(http.StatusOK, compareResponse{Count: len(found), Results: h.mapper().products(found)})
}

func (h *handlers) contact(c *gin.Context) {
	inq, err := h.carts.Help()
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, inq)
}

// exportCatalog streams the filtered catalog as a spreadsheet.
func (h *handlers) exportCatalog(c *gin.Context) {
	res := h.products.List(c.Request.Context(), parseQuery(c))
	var buf bytes.Buffer
	if err := export.WriteCatalog(&buf, res.Products); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
