package service

import (
	"errors"
	"testing"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCatalogTest(t *testing.T) (*CatalogService, *repository.GormSweetRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Sweet{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.Exec("DELETE FROM sweets").Error; err != nil {
		t.Fatalf("reset sweets failed: %v", err)
	}
	repo := repository.NewSweetRepository(db)
	return NewCatalogService(repo), repo
}

func TestCatalogCreateAndGet(t *testing.T) {
	svc, _ := setupCatalogTest(t)

	created, err := svc.Create(CreateSweetInput{
		Name:     "Chocolate Barfi",
		Category: "modern",
		Price:    models.NewMoneyFromDecimal(decimal.RequireFromString("18.99")),
		Stock:    20,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created sweet must get an id")
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Chocolate Barfi" || got.Stock != 20 {
		t.Fatalf("got %+v", got)
	}

	if _, err := svc.Get(99999); !errors.Is(err, ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}

func TestCatalogPurchase(t *testing.T) {
	svc, repo := setupCatalogTest(t)
	sweet := seedSweet(t, repo, "Gulab Jamun", "12.99", 25)

	got, err := svc.Purchase(sweet.ID, 5)
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if got.Stock != 20 {
		t.Fatalf("stock after purchase: got %d, want 20", got.Stock)
	}

	if _, err := svc.Purchase(sweet.ID, 100); !errors.Is(err, ErrStockInsufficient) {
		t.Fatalf("expected ErrStockInsufficient, got %v", err)
	}
	if _, err := svc.Purchase(sweet.ID, 0); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
	if _, err := svc.Purchase(99999, 1); !errors.Is(err, ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}

func TestCatalogRestock(t *testing.T) {
	svc, repo := setupCatalogTest(t)
	sweet := seedSweet(t, repo, "Rasmalai", "19.99", 3)

	got, err := svc.Restock(sweet.ID, 7)
	if err != nil {
		t.Fatalf("restock failed: %v", err)
	}
	if got.Stock != 10 {
		t.Fatalf("stock after restock: got %d, want 10", got.Stock)
	}

	if _, err := svc.Restock(99999, 5); !errors.Is(err, ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
	if _, err := svc.Restock(sweet.ID, -1); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
}
