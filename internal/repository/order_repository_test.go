package repository

import (
	"testing"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/constants"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) *GormOrderRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.Exec("DELETE FROM orders").Error; err != nil {
		t.Fatalf("reset orders failed: %v", err)
	}
	if err := db.Exec("DELETE FROM order_items").Error; err != nil {
		t.Fatalf("reset order_items failed: %v", err)
	}
	return NewOrderRepository(db)
}

func TestOrderRepositoryCreateAndLoad(t *testing.T) {
	repo := setupOrderRepositoryTest(t)

	order := &models.Order{
		OrderNo:         "SS100",
		SessionID:       "sess-1",
		Status:          constants.OrderStatusConfirmed,
		Currency:        constants.CurrencyDefault,
		Subtotal:        models.NewMoneyFromDecimal(decimal.NewFromInt(30)),
		Tax:             models.NewMoneyFromDecimal(decimal.NewFromFloat(5.4)),
		TotalAmount:     models.NewMoneyFromDecimal(decimal.NewFromFloat(35.4)),
		CustomerName:    "Asha",
		Email:           "asha@example.com",
		PhoneNumber:     "9876543210",
		DeliveryAddress: "12 MG Road",
		Items: []models.OrderItem{
			{
				SweetID:      1,
				SweetName:    "Laddu",
				VariantLabel: constants.VariantHalfKilo,
				Quantity:     2,
				UnitPrice:    models.NewMoneyFromDecimal(decimal.NewFromInt(15)),
				TotalPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(30)),
			},
		},
	}
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.GetByOrderNo("SS100")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected order")
	}
	if len(got.Items) != 1 || got.Items[0].SweetName != "Laddu" {
		t.Fatalf("items not loaded: %+v", got.Items)
	}
	if got.TotalAmount.String() != "35.40" {
		t.Fatalf("total: got %s", got.TotalAmount.String())
	}
}

func TestOrderRepositoryListBySession(t *testing.T) {
	repo := setupOrderRepositoryTest(t)

	for _, no := range []string{"SS200", "SS201"} {
		order := &models.Order{
			OrderNo:         no,
			SessionID:       "sess-a",
			Status:          constants.OrderStatusConfirmed,
			Currency:        constants.CurrencyDefault,
			CustomerName:    "Ravi",
			Email:           "ravi@example.com",
			PhoneNumber:     "9876543210",
			DeliveryAddress: "5 Park Street",
		}
		if err := repo.Create(order); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	other := &models.Order{
		OrderNo:         "SS202",
		SessionID:       "sess-b",
		Status:          constants.OrderStatusConfirmed,
		Currency:        constants.CurrencyDefault,
		CustomerName:    "Meera",
		Email:           "meera@example.com",
		PhoneNumber:     "9876543211",
		DeliveryAddress: "7 Lake View",
	}
	if err := repo.Create(other); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	orders, total, err := repo.ListBySession("sess-a", 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("got total=%d len=%d", total, len(orders))
	}
	for _, o := range orders {
		if o.SessionID != "sess-a" {
			t.Fatalf("leaked order from another session: %s", o.OrderNo)
		}
	}
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	repo := setupOrderRepositoryTest(t)

	order := &models.Order{
		OrderNo:         "SS300",
		SessionID:       "sess-1",
		Status:          constants.OrderStatusPending,
		Currency:        constants.CurrencyDefault,
		CustomerName:    "Asha",
		Email:           "asha@example.com",
		PhoneNumber:     "9876543210",
		DeliveryAddress: "12 MG Road",
	}
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.UpdateStatus("SS300", constants.OrderStatusDelivered); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	got, err := repo.GetByOrderNo("SS300")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != constants.OrderStatusDelivered {
		t.Fatalf("status: got %s", got.Status)
	}
}
