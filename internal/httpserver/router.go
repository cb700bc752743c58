package httpserver

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"laptophub/internal/catalog"
	"laptophub/internal/domain"
	"laptophub/internal/session"
	cartsvc "laptophub/internal/service/cart"
	productsvc "laptophub/internal/service/product"
)

type productService interface {
	List(ctx context.Context, q catalog.Query) productsvc.ListResult
	GetBySlug(ctx context.Context, slug string) (domain.Product, error)
	Compare(ctx context.Context, slugs []string) []domain.Product
}

type cartService interface {
	View(ctx context.Context, owner cartsvc.Owner) cartsvc.View
	Add(ctx context.Context, owner cartsvc.Owner, in cartsvc.AddInput) (cartsvc.View, error)
	SetQuantity(ctx context.Context, owner cartsvc.Owner, productID string, quantity int) cartsvc.View
	Remove(ctx context.Context, owner cartsvc.Owner, productID string) cartsvc.View
	Clear(ctx context.Context, owner cartsvc.Owner) cartsvc.View
	Update(ctx context.Context, owner cartsvc.Owner, in cartsvc.UpdateInput) (cartsvc.View, error)
	Checkout(ctx context.Context, owner cartsvc.Owner, in cartsvc.CheckoutInput) (cartsvc.Inquiry, error)
	ProductInquiry(p domain.Product) (cartsvc.Inquiry, error)
	Help() (cartsvc.Inquiry, error)
}

type sessionManager interface {
	Issue(ctx context.Context) (string, *session.Session, error)
	Lookup(ctx context.Context, token string) (*session.Session, error)
	TTLSeconds() int
}

// Deps carries the services the router dispatches to.
type Deps struct {
	ProductSvc   productService
	CartSvc      cartService
	Sessions     sessionManager
	DB           Pinger
	AllowOrigins []string
	ImageURLHost string
}

func (d Deps) validate() error {
	switch {
	case d.ProductSvc == nil:
		return errors.New("httpserver: product service required")
	case d.CartSvc == nil:
		return errors.New("httpserver: cart service required")
	case d.Sessions == nil:
		return errors.New("httpserver: session manager required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.SugaredLogger, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(requestID(), accessLog(logger), gin.Recovery(), cors.New(corsConfig(deps.AllowOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.ProductSvc, deps.DB))

	h := &handlers{
		products:  deps.ProductSvc,
		carts:     deps.CartSvc,
		sessions:  deps.Sessions,
		imageHost: deps.ImageURLHost,
		logger:    logger,
	}

	router.GET("/products", h.listProducts)
	router.GET("/products/:slug", h.getProduct)
	router.GET("/compare", h.compare)
	router.GET("/contact", h.contact)
	router.GET("/catalog/export.xlsx", h.exportCatalog)

	router.POST("/cart/session", h.issueSession)

	cart := router.Group("/cart", sessionMiddleware(deps.Sessions))
	cart.GET("", h.getCart)
	cart.POST("", h.updateCart)
	cart.DELETE("", h.clearCart)
	cart.POST("/items", h.addItem)
	cart.PATCH("/items/:id", h.setQuantity)
	cart.DELETE("/items/:id", h.removeItem)
	cart.POST("/checkout", h.checkout)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
