package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dijlah_store/internal/services"
)

type AdminHandler struct {
	admin services.AdminService
}

func NewAdminHandler(admin services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// GET /admin/add
func (h *AdminHandler) ShowAddProduct(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"name", "description", "old_price", "new_price", "images", "category", "sizes"},
		"sizes":  "label:quantity pairs, e.g. M:10",
		"images": "comma-separated filenames",
	})
}

type addProductInput struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	OldPrice    int    `form:"old_price"`
	NewPrice    int    `form:"new_price" binding:"required"`
	Images      string `form:"images"`
	Category    string `form:"category"`
}

// POST /admin/add
func (h *AdminHandler) AddProduct(c *gin.Context) {
	var input addProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	_, err := h.admin.CreateProduct(services.ProductInput{
		Name:        input.Name,
		Description: input.Description,
		OldPrice:    input.OldPrice,
		NewPrice:    input.NewPrice,
		Images:      input.Images,
		Category:    input.Category,
		Sizes:       c.PostFormArray("sizes"),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// GET /admin/products
func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.admin.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /admin/orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.admin.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// POST /admin/mark-delivered
func (h *AdminHandler) MarkDelivered(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.PostForm("order_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	if err := h.admin.MarkDelivered(uint(orderID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/orders")
}
