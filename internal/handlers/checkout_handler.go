package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dijlah_store/internal/services"
)

type CheckoutHandler struct {
	checkout  services.CheckoutService
	cart      services.CartService
	cookieAge int
}

func NewCheckoutHandler(checkout services.CheckoutService, cart services.CartService, cookieAge int) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, cart: cart, cookieAge: cookieAge}
}

// GET /checkout
//
// Shows what the submission will order: the priced cart plus the required
// customer fields.
func (h *CheckoutHandler) ShowForm(c *gin.Context) {
	token := sessionToken(c, h.cookieAge)
	view, err := h.cart.View(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":   view,
		"fields": []string{"name", "phone", "address"},
	})
}

type checkoutInput struct {
	Name    string `form:"name" binding:"required"`
	Phone   string `form:"phone" binding:"required"`
	Address string `form:"address" binding:"required"`
}

// POST /checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var input checkoutInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	token := sessionToken(c, h.cookieAge)
	result, err := h.checkout.Checkout(c.Request.Context(), token, services.CheckoutInput{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.Redirect(http.StatusSeeOther, result.RedirectURL)
}
