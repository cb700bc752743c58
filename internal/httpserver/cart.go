package httpserver

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	cartstore "laptophub/internal/cart"
	cartsvc "laptophub/internal/service/cart"
)

func (h *handlers) issueSession(c *gin.Context) {
	token, sess, err := h.sessions.Issue(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.logger.Infow("quote session issued", "rid", c.GetString(requestIDKey), "session_id", sess.ID)
	c.JSON(http.StatusCreated, sessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: h.sessions.TTLSeconds(),
	})
}

func (h *handlers) getCart(c *gin.Context) {
	v := h.carts.View(c.Request.Context(), sessionFrom(c))
	c.JSON(http.StatusOK, h.mapper().cart(v))
}

func (h *handlers) addItem(c *gin.Context) {
	var in cartsvc.AddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid json")
		return
	}
	v, err := h.carts.Add(c.Request.Context(), sessionFrom(c), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.mapper().cart(v))
}

type quantityRequest struct {
	Quantity any `json:"quantity"`
}

// setQuantity accepts any JSON scalar; non-numeric input becomes 1 and
// anything below 1 is clamped.
func (h *handlers) setQuantity(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "invalid json")
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	v := h.carts.SetQuantity(c.Request.Context(), sessionFrom(c), id, cartstore.QuantityFromValue(req.Quantity))
	c.JSON(http.StatusOK, h.mapper().cart(v))
}

func (h *handlers) removeItem(c *gin.Context) {
	v := h.carts.Remove(c.Request.Context(), sessionFrom(c), strings.TrimSpace(c.Param("id")))
	c.JSON(http.StatusOK, h.mapper().cart(v))
}

func (h *handlers) clearCart(c *gin.Context) {
	v := h.carts.Clear(c.Request.Context(), sessionFrom(c))
	c.JSON(http.StatusOK, h.mapper().cart(v))
}

// updateCart applies a batch of update actions in one step.
func (h *handlers) updateCart(c *gin.Context) {
	var in cartsvc.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid json")
		return
	}
	v, err := h.carts.Update(c.Request.Context(), sessionFrom(c), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.mapper().cart(v))
}

// checkout builds the order message; the body is optional.
func (h *handlers) checkout(c *gin.Context) {
	var in cartsvc.CheckoutInput
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "invalid json")
		return
	}
	inq, err := h.carts.Checkout(c.Request.Context(), sessionFrom(c), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, inq)
}
