package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dijlah_store/internal/repository"
	"dijlah_store/internal/services"
)

// CategoryTile is one tile on the landing page. The menu is fixed in this
// layer and is not validated against stored categories.
type CategoryTile struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

var categoryTiles = []CategoryTile{
	{Name: "الموسم الحالي", Image: "class1.jpg", Description: "تصاميم عصرية وخامات عالية الجودة."},
	{Name: "نسخة لاعب", Image: "pants.jpg", Description: "بناطيل رياضية مرنة ومناسبة للتمارين."},
	{Name: "نسخة مشجع", Image: "jackets.jpg", Description: "جاكيتات مقاومة للرياح والبرد."},
	{Name: "كلاسيك", Image: "shoes.jpg", Description: "أحذية رياضية لجميع الأنشطة."},
	{Name: "منتخبات", Image: "accessories.jpg", Description: "قبعات، جوارب، حقائب والمزيد."},
	{Name: "تراكات", Image: "kids.jpg", Description: "ملابس رياضية للأطفال بجودة عالية."},
	{Name: "أطقم تدريبات", Image: "women.jpg", Description: "ملابس رياضية أنيقة للنساء."},
	{Name: "أحذية", Image: "men.jpg", Description: "أطقم رياضية للرجال بجميع المقاسات."},
}

type CatalogHandler struct {
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /
func (h *CatalogHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": categoryTiles})
}

// GET /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "category": nil})
}

// GET /category/:name
func (h *CatalogHandler) ListByCategory(c *gin.Context) {
	name := c.Param("name")
	products, err := h.catalog.ListByCategory(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "category": name})
}

// GET /product/:id
func (h *CatalogHandler) ProductDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "المنتج غير موجود"})
		return
	}

	detail, err := h.catalog.GetDetail(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "المنتج غير موجود"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	c.JSON(http.StatusOK, detail)
}
