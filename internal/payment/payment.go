// Package payment is the charge boundary. The storefront ships with a
// mock processor that approves every well-formed charge; real gateways
// would implement the same interface.
package payment

import (
	"context"
	"errors"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"

	"github.com/google/uuid"
)

var ErrAmountInvalid = errors.New("charge amount invalid")

// ChargeInput describes a charge request.
type ChargeInput struct {
	OrderNo  string
	Amount   models.Money
	Currency string
	Email    string
}

// ChargeResult is the processor's answer.
type ChargeResult struct {
	Reference string `json:"reference"`
	Approved  bool   `json:"approved"`
}

// Processor charges customers.
type Processor interface {
	Charge(ctx context.Context, input ChargeInput) (*ChargeResult, error)
}

// MockProcessor approves every charge with a positive amount.
type MockProcessor struct{}

// NewMockProcessor builds a MockProcessor.
func NewMockProcessor() *MockProcessor {
	return &MockProcessor{}
}

// Charge approves the request and issues a reference.
func (p *MockProcessor) Charge(_ context.Context, input ChargeInput) (*ChargeResult, error) {
	if !input.Amount.IsPositive() {
		return nil, ErrAmountInvalid
	}
	return &ChargeResult{
		Reference: "mock-" + uuid.NewString(),
		Approved:  true,
	}, nil
}
