package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/constants"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/logger"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/orderapi"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/payment"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/pricing"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/queue"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

var (
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// OrderSubmitter posts a finished snapshot to the upstream order API.
type OrderSubmitter interface {
	Submit(ctx context.Context, snapshot *models.OrderSnapshot) (*orderapi.SubmitResult, error)
}

// CheckoutInput carries the customer details for an order.
type CheckoutInput struct {
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	DeliveryAddress string `json:"delivery_address"`
	Notes           string `json:"notes"`
}

// CheckoutService turns a session cart into an order snapshot: validate,
// price, charge, submit upstream, record, clear the cart.
type CheckoutService struct {
	cartService    *CartService
	historyService *HistoryService
	sweetRepo      repository.SweetRepository
	orderRepo      repository.OrderRepository
	table          pricing.Table
	processor      payment.Processor
	submitter      OrderSubmitter
	queueClient    *queue.Client

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewCheckoutService builds a checkout service. The table must carry
// the checkout tax rate, not the cart preview rate.
func NewCheckoutService(
	cartService *CartService,
	historyService *HistoryService,
	sweetRepo repository.SweetRepository,
	orderRepo repository.OrderRepository,
	table pricing.Table,
	processor payment.Processor,
	submitter OrderSubmitter,
	queueClient *queue.Client,
) *CheckoutService {
	return &CheckoutService{
		cartService:    cartService,
		historyService: historyService,
		sweetRepo:      sweetRepo,
		orderRepo:      orderRepo,
		table:          table,
		processor:      processor,
		submitter:      submitter,
		queueClient:    queueClient,
		inflight:       make(map[string]struct{}),
	}
}

// Checkout runs the full flow for one session. A second call for the
// same session while one is running fails with ErrCheckoutInFlight.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, input CheckoutInput) (*models.OrderSnapshot, error) {
	if !s.acquire(sessionID) {
		return nil, ErrCheckoutInFlight
	}
	defer s.release(sessionID)

	cart, err := s.cartService.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	normalized, err := validateCheckoutInput(input)
	if err != nil {
		return nil, err
	}

	snapshot := s.buildSnapshot(cart, normalized)

	charge, err := s.processor.Charge(ctx, payment.ChargeInput{
		OrderNo:  snapshot.OrderNo,
		Amount:   snapshot.TotalAmount,
		Currency: snapshot.Currency,
		Email:    snapshot.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("charge failed: %w", err)
	}
	paymentRef := ""
	if charge != nil {
		paymentRef = charge.Reference
	}

	// Single submission attempt. Failure degrades to a locally
	// confirmed order; it never surfaces to the customer.
	if result, err := s.submitter.Submit(ctx, snapshot); err != nil {
		logger.Warnw("checkout_submit_degraded",
			"order_no", snapshot.OrderNo,
			"session_id", sessionID,
			"error", err,
		)
	} else {
		snapshot.RemoteOrderID = result.RemoteOrderID
		if result.Status != "" {
			snapshot.Status = result.Status
		}
	}

	if err := s.recordOrder(sessionID, snapshot, paymentRef); err != nil {
		return nil, err
	}

	s.historyService.Prepend(ctx, sessionID, *snapshot)
	_ = s.cartService.Clear(ctx, sessionID)

	if err := s.queueClient.EnqueueOrderConfirmationEmail(queue.OrderConfirmationEmailPayload{
		OrderNo: snapshot.OrderNo,
		Email:   snapshot.Email,
	}); err != nil {
		logger.Warnw("checkout_confirmation_enqueue_failed", "order_no", snapshot.OrderNo, "error", err)
	}

	return snapshot, nil
}

func (s *CheckoutService) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[sessionID]; busy {
		return false
	}
	s.inflight[sessionID] = struct{}{}
	return true
}

func (s *CheckoutService) release(sessionID string) {
	s.mu.Lock()
	delete(s.inflight, sessionID)
	s.mu.Unlock()
}

func (s *CheckoutService) buildSnapshot(cart *models.Cart, input CheckoutInput) *models.OrderSnapshot {
	lines := make([]pricing.Line, 0, len(cart.Items))
	items := make([]models.SnapshotItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, pricing.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
		items = append(items, models.SnapshotItem{
			SweetID:      item.SweetID,
			SweetName:    item.SweetName,
			VariantLabel: item.VariantLabel,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   models.NewMoneyFromDecimal(item.UnitPrice.Decimal.Mul(decimalFromInt(item.Quantity))),
		})
	}
	totals := s.table.ComputeTotals(lines)

	return &models.OrderSnapshot{
		ID:              uuid.NewString(),
		OrderNo:         newOrderNo(),
		Status:          constants.OrderStatusConfirmed,
		Currency:        constants.CurrencyDefault,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		TotalAmount:     totals.Total,
		CustomerName:    input.CustomerName,
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		DeliveryAddress: input.DeliveryAddress,
		Notes:           input.Notes,
		Items:           items,
		CreatedAt:       time.Now(),
	}
}

// recordOrder persists the order and decrements catalog stock in one
// transaction. Insufficient stock aborts the checkout; any other
// database failure is logged and swallowed so the customer still gets
// their confirmed order.
func (s *CheckoutService) recordOrder(sessionID string, snapshot *models.OrderSnapshot, paymentRef string) error {
	err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		sweetRepo := s.sweetRepo.WithTx(tx)
		for _, item := range snapshot.Items {
			affected, err := sweetRepo.DecrementStock(item.SweetID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrStockInsufficient
			}
		}

		order := &models.Order{
			OrderNo:         snapshot.OrderNo,
			SessionID:       sessionID,
			Status:          snapshot.Status,
			Currency:        snapshot.Currency,
			Subtotal:        snapshot.Subtotal,
			Tax:             snapshot.Tax,
			TotalAmount:     snapshot.TotalAmount,
			CustomerName:    snapshot.CustomerName,
			Email:           snapshot.Email,
			PhoneNumber:     snapshot.PhoneNumber,
			DeliveryAddress: snapshot.DeliveryAddress,
			Notes:           snapshot.Notes,
			RemoteOrderID:   snapshot.RemoteOrderID,
			PaymentRef:      paymentRef,
		}
		for _, item := range snapshot.Items {
			order.Items = append(order.Items, models.OrderItem{
				SweetID:      item.SweetID,
				SweetName:    item.SweetName,
				VariantLabel: item.VariantLabel,
				Quantity:     item.Quantity,
				UnitPrice:    item.UnitPrice,
				TotalPrice:   item.TotalPrice,
			})
		}
		return s.orderRepo.WithTx(tx).Create(order)
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStockInsufficient) {
		return err
	}
	logger.Warnw("checkout_record_failed", "order_no", snapshot.OrderNo, "error", err)
	return nil
}

func validateCheckoutInput(input CheckoutInput) (CheckoutInput, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Email = strings.TrimSpace(input.Email)
	input.PhoneNumber = strings.ReplaceAll(strings.TrimSpace(input.PhoneNumber), " ", "")
	input.DeliveryAddress = strings.TrimSpace(input.DeliveryAddress)
	input.Notes = strings.TrimSpace(input.Notes)

	if input.CustomerName == "" {
		return input, &ValidationError{Field: "customer_name", Reason: "required"}
	}
	if input.Email == "" {
		return input, &ValidationError{Field: "email", Reason: "required"}
	}
	if !emailPattern.MatchString(input.Email) {
		return input, &ValidationError{Field: "email", Reason: "invalid"}
	}
	if input.PhoneNumber == "" {
		return input, &ValidationError{Field: "phone_number", Reason: "required"}
	}
	if !phonePattern.MatchString(input.PhoneNumber) {
		return input, &ValidationError{Field: "phone_number", Reason: "invalid"}
	}
	if input.DeliveryAddress == "" {
		return input, &ValidationError{Field: "delivery_address", Reason: "required"}
	}
	return input, nil
}

var orderNoRand = rand.New(rand.NewSource(time.Now().UnixNano()))
var orderNoMu sync.Mutex

func newOrderNo() string {
	orderNoMu.Lock()
	suffix := orderNoRand.Intn(10000)
	orderNoMu.Unlock()
	return fmt.Sprintf("SS%d%04d", time.Now().UnixMilli(), suffix)
}
