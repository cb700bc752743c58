package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"

	"laptophub/internal/catalog"
	"laptophub/internal/export"
	"laptophub/internal/session"
	cartsvc "laptophub/internal/service/cart"
	productsvc "laptophub/internal/service/product"
	"laptophub/internal/whatsapp"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func testDeps(t *testing.T) Deps {
	t.Helper()
	cat, err := catalog.New(catalog.Laptops())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	links, err := whatsapp.New(whatsapp.DefaultHost, whatsapp.DefaultNumber)
	if err != nil {
		t.Fatalf("whatsapp: %v", err)
	}
	return Deps{
		ProductSvc: productsvc.New(cat, nil),
		CartSvc:    cartsvc.New(cat, links, nil),
		Sessions:   session.NewManager(time.Hour, nil),
	}
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(zap.NewNop().Sugar(), deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func do(router *gin.Engine, method, target, token, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

type listBody struct {
	Count   int `json:"count"`
	Results []struct {
		ID       string         `json:"id"`
		Image    string         `json:"image"`
		Price    moneyValue     `json:"price"`
		Discount *discountValue `json:"discount"`
	} `json:"results"`
	Facets productsvc.Facets `json:"facets"`
	Query  productQueryEcho  `json:"query"`
}

type cartBody struct {
	LineItems []struct {
		ProductID string     `json:"productId"`
		Quantity  int        `json:"quantity"`
		LineTotal moneyValue `json:"lineTotal"`
	} `json:"lineItems"`
	ItemCount int        `json:"itemCount"`
	Subtotal  moneyValue `json:"subtotal"`
}

func issueToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := do(router, http.MethodPost, "/cart/session", "", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("issue session: expected 201, got %d", rec.Code)
	}
	body := decode[sessionResponse](t, rec)
	if body.Token == "" || body.TokenType != "Bearer" || body.ExpiresIn != 3600 {
		t.Fatalf("unexpected session response %+v", body)
	}
	return body.Token
}

func TestBuildRouterRequiresServices(t *testing.T) {
	if _, err := buildRouter(zap.NewNop().Sugar(), Deps{}); err == nil {
		t.Fatalf("expected error for missing services")
	}
}

func TestHealthAndReady(t *testing.T) {
	router := newTestRouter(t, testDeps(t))
	if rec := do(router, http.MethodGet, "/healthz", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", rec.Code)
	}
	if rec := do(router, http.MethodGet, "/readyz", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("readyz static catalog: expected 200, got %d", rec.Code)
	}

	deps := testDeps(t)
	deps.DB = stubPinger{err: errors.New("down")}
	router = newTestRouter(t, deps)
	rec := do(router, http.MethodGet, "/readyz", "", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz db down: expected 503, got %d", rec.Code)
	}
}

func TestRequestIDIsEchoedOrGenerated(t *testing.T) {
	router := newTestRouter(t, testDeps(t))

	rec := do(router, http.MethodGet, "/healthz", "", "")
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}

func TestListProductsFiltersAndSorts(t *testing.T) {
	router := newTestRouter(t, testDeps(t))

	rec := do(router, http.MethodGet, "/products?brand=HP&sort=price-desc", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode[listBody](t, rec)
	if body.Count != 2 || body.Results[0].ID != "lp-007" || body.Results[1].ID != "lp-003" {
		t.Fatalf("unexpected results %+v", body.Results)
	}
	if body.Facets.Total != 8 || len(body.Facets.Brands) != 6 {
		t.Fatalf("facets should describe the whole catalog, got %+v", body.Facets)
	}
	if body.Query.Sort != "price-desc" || body.Query.Brand != "HP" {
		t.Fatalf("unexpected query echo %+v", body.Query)
	}

	rec = do(router, http.MethodGet, "/products?inStock=true&sort=bogus&minPrice=abc", "", "")
	body = decode[listBody](t, rec)
	if body.Count != 6 || body.Query.Sort != "newest" {
		t.Fatalf("expected 6 in-stock products in newest order, got %d sort=%s", body.Count, body.Query.Sort)
	}
	if body.Results[0].ID != "lp-001" {
		t.Fatalf("newest keeps catalog order, got %s first", body.Results[0].ID)
	}

	rec = do(router, http.MethodGet, "/products?q=zzz", "", "")
	if body = decode[listBody](t, rec); body.Count != 0 || body.Results == nil {
		t.Fatalf("expected empty non-null results, got %s", rec.Body.String())
	}
}

func TestListProductsImageHost(t *testing.T) {
	deps := testDeps(t)
	deps.ImageURLHost = "https://cdn.example.com/"
	router := newTestRouter(t, deps)

	body := decode[listBody](t, do(router, http.MethodGet, "/products?q=victus", "", ""))
	if body.Count != 1 || body.Results[0].Image != "https://cdn.example.com/images/hp-victus-15.jpg" {
		t.Fatalf("unexpected image %+v", body.Results)
	}
}

type detailBody struct {
	Product struct {
		ID       string         `json:"id"`
		Discount *discountValue `json:"discount"`
		Price    moneyValue     `json:"price"`
	} `json:"product"`
	Gallery []string        `json:"gallery"`
	Inquiry cartsvc.Inquiry `json:"inquiry"`
}

func TestGetProductDetail(t *testing.T) {
	router := newTestRouter(t, testDeps(t))

	rec := do(router, http.MethodGet, "/products/macbook-air-m3-13", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode[detailBody](t, rec)

	if body.Product.Discount == nil || body.Product.Discount.Amount.Amount != 15000 || body.Product.Discount.Percent != 8 {
		t.Fatalf("unexpected discount %+v", body.Product.Discount)
	}
	if body.Product.Price.Formatted != "KES 164,999" {
		t.Fatalf("unexpected price %+v", body.Product.Price)
	}
	if len(body.Gallery) != 3 {
		t.Fatalf("expected 3 gallery images, got %v", body.Gallery)
	}
	if !strings.HasPrefix(body.Inquiry.Link, "https://wa.me/254720363215?text=") {
		t.Fatalf("unexpected link %q", body.Inquiry.Link)
	}
	u, err := url.Parse(body.Inquiry.Link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if got := u.Query().Get("text"); got != body.Inquiry.Message {
		t.Fatalf("link text %q does not round-trip message %q", got, body.Inquiry.Message)
	}

	rec = do(router, http.MethodGet, "/products/nope", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCompare(t *testing.T) {
	router := newTestRouter(t, testDeps(t))

	target := "/compare?slug=hp-victus-15&slug=nope&slug=hp-victus-15&slugs=dell-xps-13-9340,acer-aspire-5-a515,lenovo-ideapad-slim-3"
	body := decode[listBody](t, do(router, http.MethodGet, target, "", ""))
	if body.Count != 3 {
		t.Fatalf("expected 3, got %d", body.Count)
	}
	want := []string{"lp-003", "lp-002", "lp-006"}
	for i, id := range want {
		if body.Results[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, body.Results[i].ID)
		}
	}
}

func TestContact(t *testing.T) {
	router := newTestRouter(t, testDeps(t))
	rec := do(router, http.MethodGet, "/contact", "", "")
	body := decode[cartsvc.Inquiry](t, rec)
	if body.Message != "Hello! I need help choosing a laptop." {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.Link != "https://wa.me/254720363215?text=Hello!%20I%20need%20help%20choosing%20a%20laptop." {
		t.Fatalf("unexpected link %q", body.Link)
	}
}

func TestExportCatalog(t *testing.T) {
	router := newTestRouter(t, testDeps(t))

	rec := do(router, http.MethodGet, "/catalog/export.xlsx?brand=Lenovo", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != export.ContentType {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, export.FileName) {
		t.Fatalf("unexpected disposition %q", cd)
	}
	file, err := xlsx.OpenBinary(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	if rows := len(file.Sheet[export.SheetName].Rows); rows != 3 {
		t.Fatalf("expected header plus 2 Lenovo rows, got %d", rows)
	}
}

func TestCartRequiresSession(t *testing.T) {
	router := newTestRouter(t, testDeps(t))

	if rec := do(router, http.MethodGet, "/cart", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", rec.Code)
	}
	if rec := do(router, http.MethodGet, "/cart", "forged", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown token: expected 401, got %d", rec.Code)
	}
}

type failingSessions struct{}

func (failingSessions) Issue(context.Context) (string, *session.Session, error) {
	return "", nil, errors.New("entropy exhausted")
}

func (failingSessions) Lookup(context.Context, string) (*session.Session, error) {
	return nil, errors.New("boom")
}

func (failingSessions) TTLSeconds() int { return 0 }

func TestSessionFailuresAreInternalErrors(t *testing.T) {
	deps := testDeps(t)
	deps.Sessions = failingSessions{}
	router := newTestRouter(t, deps)

	if rec := do(router, http.MethodPost, "/cart/session", "", ""); rec.Code != http.StatusInternalServerError {
		t.Fatalf("issue: expected 500, got %d", rec.Code)
	}
	if rec := do(router, http.MethodGet, "/cart", "tok", ""); rec.Code != http.StatusInternalServerError {
		t.Fatalf("lookup: expected 500, got %d", rec.Code)
	}
}

func TestCartFlow(t *testing.T) {
	router := newTestRouter(t, testDeps(t))
	token := issueToken(t, router)

	empty := decode[cartBody](t, do(router, http.MethodGet, "/cart", token, ""))
	if empty.ItemCount != 0 || len(empty.LineItems) != 0 || empty.Subtotal.Amount != 0 {
		t.Fatalf("expected empty cart, got %+v", empty)
	}

	do(router, http.MethodPost, "/cart/items", token, `{"productId":"lp-003"}`)
	rec := do(router, http.MethodPost, "/cart/items", token, `{"slug":"hp-victus-15"}`)
	cart := decode[cartBody](t, rec)
	if len(cart.LineItems) != 1 || cart.LineItems[0].Quantity != 2 || cart.Subtotal.Amount != 249998 {
		t.Fatalf("expected one line of 2, got %+v", cart)
	}
	if cart.Subtotal.Formatted != "KES 249,998" {
		t.Fatalf("unexpected formatted subtotal %q", cart.Subtotal.Formatted)
	}

	cases := []struct {
		body string
		want int
	}{
		{`{"quantity":"abc"}`, 1},
		{`{"quantity":0}`, 1},
		{`{"quantity":-4}`, 1},
		{`{"quantity":3.9}`, 3},
		{`{"quantity":"5"}`, 5},
		{`{}`, 1},
	}
	for _, tc := range cases {
		rec = do(router, http.MethodPatch, "/cart/items/lp-003", token, tc.body)
		if rec.Code != http.StatusOK {
			t.Fatalf("patch %s: expected 200, got %d", tc.body, rec.Code)
		}
		if got := decode[cartBody](t, rec).LineItems[0].Quantity; got != tc.want {
			t.Fatalf("patch %s: expected quantity %d, got %d", tc.body, tc.want, got)
		}
	}

	do(router, http.MethodPost, "/cart/items", token, `{"productId":"lp-008"}`)
	rec = do(router, http.MethodPost, "/cart/checkout", token, `{"name":"  Wanjiru ","note":"Deliver to Westlands"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("checkout: expected 200, got %d", rec.Code)
	}
	inq := decode[cartsvc.Inquiry](t, rec)
	want := "Hello, I'm Wanjiru. I'd like to order the following laptops:\n" +
		"• HP Victus 15 x1 — KES 124,999\n" +
		"• Lenovo IdeaPad Slim 3 x1 — KES 54,999\n" +
		"Subtotal: KES 179,998\n" +
		"Notes: Deliver to Westlands\n" +
		"Please confirm availability and delivery options."
	if inq.Message != want {
		t.Fatalf("unexpected message:\n%s", inq.Message)
	}

	cart = decode[cartBody](t, do(router, http.MethodDelete, "/cart/items/lp-003", token, ""))
	if len(cart.LineItems) != 1 || cart.LineItems[0].ProductID != "lp-008" {
		t.Fatalf("expected only lp-008 left, got %+v", cart.LineItems)
	}

	cart = decode[cartBody](t, do(router, http.MethodDelete, "/cart", token, ""))
	if len(cart.LineItems) != 0 {
		t.Fatalf("expected cleared cart, got %+v", cart.LineItems)
	}

	inq = decode[cartsvc.Inquiry](t, do(router, http.MethodPost, "/cart/checkout", token, ""))
	if inq.Message != "Hello, I would like to inquire about laptops." {
		t.Fatalf("empty cart checkout: unexpected message %q", inq.Message)
	}
}

func TestAddItemErrors(t *testing.T) {
	router := newTestRouter(t, testDeps(t))
	token := issueToken(t, router)

	if rec := do(router, http.MethodPost, "/cart/items", token, `{"productId":"lp-999"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown product: expected 404, got %d", rec.Code)
	}
	if rec := do(router, http.MethodPost, "/cart/items", token, `{}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing product: expected 400, got %d", rec.Code)
	}
	if rec := do(router, http.MethodPost, "/cart/items", token, `{`); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json: expected 400, got %d", rec.Code)
	}
	cart := decode[cartBody](t, do(router, http.MethodGet, "/cart", token, ""))
	if len(cart.LineItems) != 0 {
		t.Fatalf("failed adds must leave the cart untouched, got %+v", cart.LineItems)
	}
}

func TestUpdateCartActions(t *testing.T) {
	router := newTestRouter(t, testDeps(t))
	token := issueToken(t, router)

	body := `{"actions":[
		{"action":"addLineItem","productId":"lp-001"},
		{"action":"addLineItem","slug":"acer-aspire-5-a515"},
		{"action":"changeLineItemQuantity","productId":"lp-001","quantity":2}
	]}`
	rec := do(router, http.MethodPost, "/cart", token, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cart := decode[cartBody](t, rec)
	if cart.ItemCount != 3 || cart.Subtotal.Amount != 2*164999+64999 {
		t.Fatalf("unexpected cart %+v", cart)
	}

	bad := `{"actions":[{"action":"clear"},{"action":"explode"}]}`
	if rec := do(router, http.MethodPost, "/cart", token, bad); rec.Code != http.StatusBadRequest {
		t.Fatalf("unsupported action: expected 400, got %d", rec.Code)
	}
	cart = decode[cartBody](t, do(router, http.MethodGet, "/cart", token, ""))
	if cart.ItemCount != 3 {
		t.Fatalf("rejected batch must not apply, got %d items", cart.ItemCount)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	router := newTestRouter(t, testDeps(t))
	a := issueToken(t, router)
	b := issueToken(t, router)

	do(router, http.MethodPost, "/cart/items", a, `{"productId":"lp-002"}`)
	cart := decode[cartBody](t, do(router, http.MethodGet, "/cart", b, ""))
	if len(cart.LineItems) != 0 {
		t.Fatalf("session b should not see session a's cart")
	}
}

func TestCORSPreflight(t *testing.T) {
	deps := testDeps(t)
	deps.AllowOrigins = []string{"https://shop.example.com"}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodOptions, "/cart/items", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
		t.Fatalf("unexpected allow origin %q", got)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"Bearer":       "",
		"":             "",
	}
	for header, want := range cases {
		if got := bearerToken(header); got != want {
			t.Fatalf("bearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}
