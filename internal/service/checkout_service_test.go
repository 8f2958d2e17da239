package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/constants"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/kvstore"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/orderapi"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/payment"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/pricing"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/queue"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type stubSubmitter struct {
	result *orderapi.SubmitResult
	err    error
	calls  int
}

func (s *stubSubmitter) Submit(_ context.Context, _ *models.OrderSnapshot) (*orderapi.SubmitResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type checkoutFixture struct {
	cartSvc     *CartService
	historySvc  *HistoryService
	checkoutSvc *CheckoutService
	sweetRepo   *repository.GormSweetRepository
	orderRepo   *repository.GormOrderRepository
	submitter   *stubSubmitter
}

func setupCheckoutTest(t *testing.T, submitter *stubSubmitter) *checkoutFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Sweet{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, table := range []string{"sweets", "orders", "order_items"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("reset %s failed: %v", table, err)
		}
	}

	store := kvstore.NewMemoryStore()
	sweetRepo := repository.NewSweetRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartTable := pricing.NewTable(pricing.DefaultMultipliers(), 0.10)
	checkoutTable := pricing.NewTable(pricing.DefaultMultipliers(), 0.18)

	cartSvc := NewCartService(store, sweetRepo, cartTable)
	historySvc := NewHistoryService(store)
	queueClient, err := queue.NewClient(nil) // disabled; enqueues are no-ops
	if err != nil {
		t.Fatalf("queue client: %v", err)
	}
	checkoutSvc := NewCheckoutService(
		cartSvc, historySvc, sweetRepo, orderRepo,
		checkoutTable, payment.NewMockProcessor(), submitter, queueClient,
	)
	return &checkoutFixture{
		cartSvc:     cartSvc,
		historySvc:  historySvc,
		checkoutSvc: checkoutSvc,
		sweetRepo:   sweetRepo,
		orderRepo:   orderRepo,
		submitter:   submitter,
	}
}

func validInput() CheckoutInput {
	return CheckoutInput{
		CustomerName:    "Asha",
		Email:           "asha@example.com",
		PhoneNumber:     "98765 43210",
		DeliveryAddress: "12 MG Road, Pune",
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	fix := setupCheckoutTest(t, &stubSubmitter{
		result: &orderapi.SubmitResult{RemoteOrderID: "r-42", Status: "confirmed"},
	})
	ctx := context.Background()
	sweet := seedSweet(t, fix.sweetRepo, "Laddu", "100.00", 10)

	if _, err := fix.cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, VariantLabel: "500g", Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	snapshot, err := fix.checkoutSvc.Checkout(ctx, "s1", validInput())
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if snapshot.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status: got %s", snapshot.Status)
	}
	if snapshot.RemoteOrderID != "r-42" {
		t.Fatalf("remote id: got %s", snapshot.RemoteOrderID)
	}
	// checkout applies the 18% rate, not the cart preview rate
	if snapshot.Subtotal.String() != "100.00" || snapshot.Tax.String() != "18.00" || snapshot.TotalAmount.String() != "118.00" {
		t.Fatalf("totals: subtotal=%s tax=%s total=%s", snapshot.Subtotal, snapshot.Tax, snapshot.TotalAmount)
	}
	// phone normalized: spaces stripped
	if snapshot.PhoneNumber != "9876543210" {
		t.Fatalf("phone: got %s", snapshot.PhoneNumber)
	}

	// cart cleared
	view, err := fix.cartSvc.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart must be empty after checkout")
	}

	// history holds the snapshot
	history, err := fix.historySvc.List(ctx, "s1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 1 || history[0].OrderNo != snapshot.OrderNo {
		t.Fatalf("history: %+v", history)
	}

	// order recorded with stock decremented
	order, err := fix.orderRepo.GetByOrderNo(snapshot.OrderNo)
	if err != nil || order == nil {
		t.Fatalf("order record missing: %v", err)
	}
	if !strings.HasPrefix(order.PaymentRef, "mock-") {
		t.Fatalf("payment reference must be recorded, got %q", order.PaymentRef)
	}
	got, _ := fix.sweetRepo.GetByID(sweet.ID)
	if got.Stock != 9 {
		t.Fatalf("stock after checkout: got %d, want 9", got.Stock)
	}
}

func TestCheckoutSubmitFailureDegradesToLocalConfirmed(t *testing.T) {
	fix := setupCheckoutTest(t, &stubSubmitter{err: orderapi.ErrRequestFailed})
	ctx := context.Background()
	sweet := seedSweet(t, fix.sweetRepo, "Jalebi", "8.99", 40)

	if _, err := fix.cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	snapshot, err := fix.checkoutSvc.Checkout(ctx, "s1", validInput())
	if err != nil {
		t.Fatalf("checkout must not fail on submit error: %v", err)
	}
	if snapshot.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status: got %s", snapshot.Status)
	}
	if snapshot.RemoteOrderID != "" {
		t.Fatalf("degraded order must have no remote id, got %s", snapshot.RemoteOrderID)
	}
	if fix.submitter.calls != 1 {
		t.Fatalf("submit must be attempted exactly once, got %d", fix.submitter.calls)
	}

	// still recorded and cart cleared
	history, _ := fix.historySvc.List(ctx, "s1")
	if len(history) != 1 {
		t.Fatalf("history: got %d entries", len(history))
	}
	view, _ := fix.cartSvc.Get(ctx, "s1")
	if len(view.Items) != 0 {
		t.Fatal("cart must be cleared")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	fix := setupCheckoutTest(t, &stubSubmitter{})

	_, err := fix.checkoutSvc.Checkout(context.Background(), "s1", validInput())
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
	if fix.submitter.calls != 0 {
		t.Fatal("empty cart must not reach the submitter")
	}
}

func TestCheckoutValidationFailFast(t *testing.T) {
	fix := setupCheckoutTest(t, &stubSubmitter{})
	ctx := context.Background()
	sweet := seedSweet(t, fix.sweetRepo, "Sandesh", "16.99", 20)
	if _, err := fix.cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	cases := []struct {
		name  string
		input CheckoutInput
		field string
	}{
		{"missing name", CheckoutInput{Email: "a@b.com", PhoneNumber: "9876543210", DeliveryAddress: "x"}, "customer_name"},
		{"bad email", CheckoutInput{CustomerName: "A", Email: "not-an-email", PhoneNumber: "9876543210", DeliveryAddress: "x"}, "email"},
		{"bad phone", CheckoutInput{CustomerName: "A", Email: "a@b.com", PhoneNumber: "12345", DeliveryAddress: "x"}, "phone_number"},
		{"phone wrong prefix", CheckoutInput{CustomerName: "A", Email: "a@b.com", PhoneNumber: "5876543210", DeliveryAddress: "x"}, "phone_number"},
		{"missing address", CheckoutInput{CustomerName: "A", Email: "a@b.com", PhoneNumber: "9876543210"}, "delivery_address"},
	}
	for _, tc := range cases {
		_, err := fix.checkoutSvc.Checkout(ctx, "s1", tc.input)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if verr.Field != tc.field {
			t.Fatalf("%s: field got %s, want %s", tc.name, verr.Field, tc.field)
		}
	}
	if fix.submitter.calls != 0 {
		t.Fatal("invalid input must not reach the submitter")
	}
}

func TestCheckoutInsufficientStockAborts(t *testing.T) {
	fix := setupCheckoutTest(t, &stubSubmitter{
		result: &orderapi.SubmitResult{RemoteOrderID: "r-1", Status: "confirmed"},
	})
	ctx := context.Background()
	sweet := seedSweet(t, fix.sweetRepo, "Kaju Katli", "24.99", 1)

	if _, err := fix.cartSvc.Add(ctx, "s1", AddInput{SweetID: sweet.ID, Quantity: 5}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	_, err := fix.checkoutSvc.Checkout(ctx, "s1", validInput())
	if !errors.Is(err, ErrStockInsufficient) {
		t.Fatalf("expected ErrStockInsufficient, got %v", err)
	}

	// nothing recorded, stock untouched
	got, _ := fix.sweetRepo.GetByID(sweet.ID)
	if got.Stock != 1 {
		t.Fatalf("stock must be untouched, got %d", got.Stock)
	}
	orders, total, err := fix.orderRepo.ListBySession("s1", 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 || len(orders) != 0 {
		t.Fatal("no order must be recorded on insufficient stock")
	}
}

func TestCheckoutSecondCallSameSessionBlocked(t *testing.T) {
	fix := setupCheckoutTest(t, &stubSubmitter{})

	if !fix.checkoutSvc.acquire("s1") {
		t.Fatal("first acquire must succeed")
	}
	defer fix.checkoutSvc.release("s1")

	_, err := fix.checkoutSvc.Checkout(context.Background(), "s1", validInput())
	if !errors.Is(err, ErrCheckoutInFlight) {
		t.Fatalf("expected ErrCheckoutInFlight, got %v", err)
	}
}
