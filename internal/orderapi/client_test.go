package orderapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/config"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"

	"github.com/shopspring/decimal"
)

func testSnapshot() *models.OrderSnapshot {
	return &models.OrderSnapshot{
		ID:              "snap-1",
		OrderNo:         "SS123",
		Status:          "confirmed",
		TotalAmount:     models.NewMoneyFromDecimal(decimal.NewFromFloat(35.40)),
		CustomerName:    "Asha",
		Email:           "asha@example.com",
		PhoneNumber:     "9876543210",
		DeliveryAddress: "12 MG Road",
		Items: []models.SnapshotItem{
			{
				SweetID:      1,
				SweetName:    "Laddu",
				VariantLabel: "500g",
				Quantity:     2,
				UnitPrice:    models.NewMoneyFromDecimal(decimal.NewFromFloat(14.99)),
				TotalPrice:   models.NewMoneyFromDecimal(decimal.NewFromFloat(29.98)),
			},
		},
	}
}

func TestClientSubmitSuccess(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     987,
			"status": "confirmed",
		})
	}))
	defer server.Close()

	client := NewClient(&config.OrderAPIConfig{BaseURL: server.URL, APIKey: "secret", TimeoutMS: 2000})
	result, err := client.Submit(context.Background(), testSnapshot())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.RemoteOrderID != "987" {
		t.Fatalf("remote id: got %s", result.RemoteOrderID)
	}
	if result.Status != "confirmed" {
		t.Fatalf("status: got %s", result.Status)
	}

	if captured["total_amount"] != 35.4 {
		t.Fatalf("total_amount: got %v", captured["total_amount"])
	}
	items, ok := captured["order_items"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("order_items: got %v", captured["order_items"])
	}
	line := items[0].(map[string]interface{})
	if line["selected_quantity"] != "500g" {
		t.Fatalf("selected_quantity: got %v", line["selected_quantity"])
	}
	if line["price"] != 14.99 {
		t.Fatalf("price: got %v", line["price"])
	}
}

func TestClientSubmitServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(&config.OrderAPIConfig{BaseURL: server.URL, TimeoutMS: 2000})
	_, err := client.Submit(context.Background(), testSnapshot())
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
}

func TestClientSubmitMissingBaseURL(t *testing.T) {
	client := NewClient(&config.OrderAPIConfig{})
	_, err := client.Submit(context.Background(), testSnapshot())
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestClientSubmitMissingOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"confirmed"}`))
	}))
	defer server.Close()

	client := NewClient(&config.OrderAPIConfig{BaseURL: server.URL, TimeoutMS: 2000})
	_, err := client.Submit(context.Background(), testSnapshot())
	if !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("expected ErrResponseInvalid, got %v", err)
	}
}
