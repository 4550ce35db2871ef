package services

import (
	"testing"

	"dijlah_store/internal/models"
)

func TestParseSizeStock(t *testing.T) {
	sizes, err := ParseSizeStock([]string{"M:10", " L : 5 ", "XL"})
	if err != nil {
		t.Fatalf("ParseSizeStock returned error: %v", err)
	}
	if sizes["M"] != 10 || sizes["L"] != 5 {
		t.Fatalf("unexpected quantities: %v", sizes)
	}
	if qty, ok := sizes["XL"]; !ok || qty != 0 {
		t.Fatalf("bare label should default to 0, got %v", sizes)
	}
}

func TestParseSizeStockRejectsBadQuantities(t *testing.T) {
	if _, err := ParseSizeStock([]string{"M:abc"}); err == nil {
		t.Fatal("expected error for non-numeric quantity")
	}
	if _, err := ParseSizeStock([]string{"M:-1"}); err == nil {
		t.Fatal("expected error for negative quantity")
	}
	if _, err := ParseSizeStock([]string{":5"}); err == nil {
		t.Fatal("expected error for empty label")
	}
}

func TestCreateProductSplitsImages(t *testing.T) {
	products := newFakeProductRepo()
	admin := NewAdminService(products, &memOrderRepo{})

	created, err := admin.CreateProduct(ProductInput{
		Name:     "جاكيت شتوي",
		NewPrice: 15000,
		Images:   "front.jpg, back.jpg,",
		Category: "جاكيتات شتوية",
		Sizes:    []string{"M:2", "L:1"},
	})
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if len(created.Images) != 2 || created.Images[0] != "front.jpg" || created.Images[1] != "back.jpg" {
		t.Fatalf("unexpected images: %v", created.Images)
	}
	if created.Sizes["M"] != 2 || created.Sizes["L"] != 1 {
		t.Fatalf("unexpected sizes: %v", created.Sizes)
	}
}

func TestListProductsReturnsSummaryOnly(t *testing.T) {
	products := newFakeProductRepo()
	admin := NewAdminService(products, &memOrderRepo{})

	products.Create(&models.Product{
		Name:     "جاكيت",
		NewPrice: 15000,
		Category: "جاكيتات",
		Images:   models.ImageList{"a.jpg"},
		Sizes:    models.SizeStock{"M": 2},
	})

	summaries, err := admin.ListProducts()
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	s := summaries[0]
	if s.ID != 1 || s.Name != "جاكيت" || s.Category != "جاكيتات" || s.NewPrice != 15000 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestMarkDelivered(t *testing.T) {
	orders := &memOrderRepo{}
	admin := NewAdminService(newFakeProductRepo(), orders)

	orders.Create(&models.Order{Name: "أحمد", Total: 5000, Status: string(models.OrderPending)})

	if err := admin.MarkDelivered(1); err != nil {
		t.Fatalf("MarkDelivered returned error: %v", err)
	}
	if orders.orders[0].Status != string(models.OrderDelivered) {
		t.Fatalf("expected delivered status, got %s", orders.orders[0].Status)
	}
}

func TestCategorySubstringMatch(t *testing.T) {
	products := newFakeProductRepo()
	catalog := NewCatalogService(products)

	products.Create(&models.Product{Name: "جاكيت شتوي", Category: "جاكيتات شتوية", NewPrice: 15000})
	products.Create(&models.Product{Name: "بنطال", Category: "بناطيل", NewPrice: 8000})

	matched, err := catalog.ListByCategory("جاكيتات")
	if err != nil {
		t.Fatalf("ListByCategory returned error: %v", err)
	}
	if len(matched) != 1 || matched[0].Name != "جاكيت شتوي" {
		t.Fatalf("expected substring match on category, got %v", matched)
	}
}

func TestGetDetailFiltersEmptySizes(t *testing.T) {
	products := newFakeProductRepo()
	catalog := NewCatalogService(products)

	products.Create(&models.Product{
		Name:     "جاكيت",
		NewPrice: 15000,
		Sizes:    models.SizeStock{"S": 0, "M": 2},
	})

	detail, err := catalog.GetDetail(1)
	if err != nil {
		t.Fatalf("GetDetail returned error: %v", err)
	}
	if len(detail.Sizes) != 1 || detail.Sizes[0] != "M" {
		t.Fatalf("expected only size M, got %v", detail.Sizes)
	}
}
