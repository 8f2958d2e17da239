package service

import (
	"context"
	"errors"
	"testing"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/constants"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/kvstore"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/pricing"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartTest(t *testing.T) (*CartService, *repository.GormSweetRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Sweet{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.Exec("DELETE FROM sweets").Error; err != nil {
		t.Fatalf("reset sweets failed: %v", err)
	}
	sweetRepo := repository.NewSweetRepository(db)
	table := pricing.NewTable(pricing.DefaultMultipliers(), 0.10)
	return NewCartService(kvstore.NewMemoryStore(), sweetRepo, table), sweetRepo
}

func seedSweet(t *testing.T, repo *repository.GormSweetRepository, name string, price string, stock int) *models.Sweet {
	t.Helper()
	d, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("bad price %q: %v", price, err)
	}
	sweet := &models.Sweet{
		Name:        name,
		Category:    "traditional",
		PriceAmount: models.NewMoneyFromDecimal(d),
		Stock:       stock,
	}
	if err := repo.Create(sweet); err != nil {
		t.Fatalf("create sweet failed: %v", err)
	}
	return sweet
}

func TestCartAddMergesSameVariant(t *testing.T) {
	cartSvc, sweetRepo := setupCartTest(t)
	ctx := context.Background()
	sweet := seedSweet(t, sweetRepo, "Laddu", "14.99", 30)

	view, err := cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, VariantLabel: "500g", Quantity: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(view.Items) != 1 || view.ItemCount != 2 {
		t.Fatalf("after first add: items=%d count=%d", len(view.Items), view.ItemCount)
	}

	view, err = cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, VariantLabel: "500g", Quantity: 3})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("same variant must merge, got %d lines", len(view.Items))
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("merged quantity: got %d, want 5", view.Items[0].Quantity)
	}
}

func TestCartAddDifferentVariantsAreSeparateLines(t *testing.T) {
	cartSvc, sweetRepo := setupCartTest(t)
	ctx := context.Background()
	sweet := seedSweet(t, sweetRepo, "Kaju Katli", "24.99", 15)

	if _, err := cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, VariantLabel: "250g", Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, VariantLabel: "1kg", Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("variants must not merge, got %d lines", len(view.Items))
	}
	// 24.99 * 0.6 = 14.994 -> 14.99; 24.99 * 1.8 = 44.982 -> 44.98
	prices := map[string]string{}
	for _, item := range view.Items {
		prices[item.VariantLabel] = item.UnitPrice.String()
	}
	if prices["250g"] != "14.99" || prices["1kg"] != "44.98" {
		t.Fatalf("variant prices wrong: %v", prices)
	}
}

func TestCartTotalsUseCartTaxRate(t *testing.T) {
	cartSvc, sweetRepo := setupCartTest(t)
	ctx := context.Background()
	sweet := seedSweet(t, sweetRepo, "Jalebi", "100.00", 40)

	view, err := cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, VariantLabel: "500g", Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if view.Subtotal.String() != "100.00" || view.Tax.String() != "10.00" || view.Total.String() != "110.00" {
		t.Fatalf("totals: subtotal=%s tax=%s total=%s", view.Subtotal, view.Tax, view.Total)
	}
}

func TestCartUpdateQuantityZeroRemovesLine(t *testing.T) {
	cartSvc, sweetRepo := setupCartTest(t)
	ctx := context.Background()
	sweet := seedSweet(t, sweetRepo, "Rasgulla", "11.99", 30)

	view, err := cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, VariantLabel: "500g", Quantity: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	lineID := view.Items[0].ID

	view, err = cartSvc.UpdateQuantity(ctx, "s1", lineID, 0)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("zero quantity must remove the line, got %d lines", len(view.Items))
	}
}

func TestCartUpdateUnknownLineIsNoop(t *testing.T) {
	cartSvc, sweetRepo := setupCartTest(t)
	ctx := context.Background()
	sweet := seedSweet(t, sweetRepo, "Laddu", "14.99", 35)

	if _, err := cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, VariantLabel: "500g", Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	view, err := cartSvc.UpdateQuantity(ctx, "s1", "42:500g", 3)
	if err != nil {
		t.Fatalf("updating an absent line must be a no-op, got error: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 2 {
		t.Fatalf("cart must be unchanged: %+v", view.Items)
	}
}

func TestCartRemoveUnknownLineIsNoop(t *testing.T) {
	cartSvc, _ := setupCartTest(t)

	view, err := cartSvc.Remove(context.Background(), "s1", "999:500g")
	if err != nil {
		t.Fatalf("removing an absent line must be a no-op, got error: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("empty cart must stay empty, got %+v", view.Items)
	}
}

func TestCartAddNegativeQuantityIsNoop(t *testing.T) {
	cartSvc, sweetRepo := setupCartTest(t)
	ctx := context.Background()
	sweet := seedSweet(t, sweetRepo, "Jalebi", "8.99", 40)

	view, err := cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, VariantLabel: "500g", Quantity: -3})
	if err != nil {
		t.Fatalf("negative quantity must be a no-op, got error: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("negative quantity must not create a line, got %+v", view.Items)
	}

	// a merged negative add leaves the existing line alone too
	if _, err := cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, VariantLabel: "500g", Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err = cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, VariantLabel: "500g", Quantity: -1})
	if err != nil {
		t.Fatalf("negative quantity must be a no-op, got error: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 2 {
		t.Fatalf("existing line must be unchanged: %+v", view.Items)
	}
}

func TestCartAddUnknownSweet(t *testing.T) {
	cartSvc, _ := setupCartTest(t)

	_, err := cartSvc.Add(context.Background(), "s1", AddInput{SweetID: 99999, VariantLabel: "500g", Quantity: 1})
	if !errors.Is(err, ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}

func TestCartAddUnknownVariant(t *testing.T) {
	cartSvc, sweetRepo := setupCartTest(t)
	sweet := seedSweet(t, sweetRepo, "Sandesh", "16.99", 20)

	_, err := cartSvc.Add(context.Background(), "s1", AddInput{SweetID: sweet.ID, VariantLabel: "2kg", Quantity: 1})
	if !errors.Is(err, ErrVariantInvalid) {
		t.Fatalf("expected ErrVariantInvalid, got %v", err)
	}
}

func TestCartDefaultsVariantAndQuantity(t *testing.T) {
	cartSvc, sweetRepo := setupCartTest(t)
	sweet := seedSweet(t, sweetRepo, "Gulab Jamun", "12.99", 25)

	view, err := cartSvc.Add(context.Background(), "s1", AddInput{SweetID: sweet.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if view.Items[0].VariantLabel != constants.VariantHalfKilo {
		t.Fatalf("default variant: got %s", view.Items[0].VariantLabel)
	}
	if view.Items[0].Quantity != 1 {
		t.Fatalf("default quantity: got %d", view.Items[0].Quantity)
	}
}

func TestCartSessionIsolation(t *testing.T) {
	cartSvc, sweetRepo := setupCartTest(t)
	ctx := context.Background()
	sweet := seedSweet(t, sweetRepo, "Barfi", "18.99", 20)

	if _, err := cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := cartSvc.Get(ctx, "s2")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("session s2 must have an empty cart, got %d lines", len(view.Items))
	}
}
