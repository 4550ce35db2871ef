package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dijlah_store/internal/services"
)

type CartHandler struct {
	cart      services.CartService
	cookieAge int
}

func NewCartHandler(cart services.CartService, cookieAge int) *CartHandler {
	return &CartHandler{cart: cart, cookieAge: cookieAge}
}

type addToCartInput struct {
	ProductID    uint   `form:"product_id" binding:"required"`
	SelectedSize string `form:"selected_size" binding:"required"`
}

// POST /add-to-cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var input addToCartInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	token := sessionToken(c, h.cookieAge)
	if err := h.cart.Add(c.Request.Context(), token, input.ProductID, input.SelectedSize); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// GET /cart
func (h *CartHandler) ViewCart(c *gin.Context) {
	token := sessionToken(c, h.cookieAge)
	view, err := h.cart.View(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /remove-from-cart
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.ParseUint(c.PostForm("product_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	token := sessionToken(c, h.cookieAge)
	if err := h.cart.Remove(c.Request.Context(), token, uint(productID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}
