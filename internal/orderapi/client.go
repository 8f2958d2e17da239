// Package orderapi is the submission boundary to the upstream order
// creation API. It is the only place that knows the upstream payload
// shape; callers hand it a finished order snapshot and get back the
// remote identifiers or a wrapped error.
package orderapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/config"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"
)

var (
	ErrConfigInvalid   = errors.New("order api config invalid")
	ErrRequestFailed   = errors.New("order api request failed")
	ErrResponseInvalid = errors.New("order api response invalid")
)

// Client talks to the upstream order API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a Client from config. A missing base URL is allowed;
// Submit then fails with ErrConfigInvalid and checkout degrades to a
// locally confirmed order.
func NewClient(cfg *config.OrderAPIConfig) *Client {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SubmitResult carries the upstream identifiers for an accepted order.
type SubmitResult struct {
	RemoteOrderID string
	Status        string
}

type submitItem struct {
	SweetID      uint    `json:"sweet_id"`
	SweetName    string  `json:"sweet_name"`
	VariantLabel string  `json:"selected_quantity"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

type submitRequest struct {
	TotalAmount     float64      `json:"total_amount"`
	DeliveryAddress string       `json:"delivery_address"`
	PhoneNumber     string       `json:"phone_number"`
	Email           string       `json:"email"`
	CustomerName    string       `json:"customer_name"`
	Notes           string       `json:"notes,omitempty"`
	OrderItems      []submitItem `json:"order_items"`
}

type submitResponse struct {
	ID      json.Number `json:"id"`
	OrderID json.Number `json:"order_id"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
}

// Submit posts a snapshot upstream. The snapshot itself is never
// modified; the caller decides what to do with the returned identifiers.
func (c *Client) Submit(ctx context.Context, snapshot *models.OrderSnapshot) (*SubmitResult, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: base_url is empty", ErrConfigInvalid)
	}
	if snapshot == nil || len(snapshot.Items) == 0 {
		return nil, fmt.Errorf("%w: empty snapshot", ErrConfigInvalid)
	}

	payload := submitRequest{
		TotalAmount:     snapshot.TotalAmount.Float64(),
		DeliveryAddress: snapshot.DeliveryAddress,
		PhoneNumber:     snapshot.PhoneNumber,
		Email:           snapshot.Email,
		CustomerName:    snapshot.CustomerName,
		Notes:           snapshot.Notes,
		OrderItems:      make([]submitItem, 0, len(snapshot.Items)),
	}
	for _, item := range snapshot.Items {
		payload.OrderItems = append(payload.OrderItems, submitItem{
			SweetID:      item.SweetID,
			SweetName:    item.SweetName,
			VariantLabel: item.VariantLabel,
			Quantity:     item.Quantity,
			Price:        item.UnitPrice.Float64(),
		})
	}

	respBytes, err := c.postJSON(ctx, c.baseURL+"/orders", payload)
	if err != nil {
		return nil, err
	}

	var resp submitResponse
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}

	remoteID := resp.ID.String()
	if remoteID == "" {
		remoteID = resp.OrderID.String()
	}
	if remoteID == "" {
		return nil, fmt.Errorf("%w: missing order id", ErrResponseInvalid)
	}
	return &SubmitResult{
		RemoteOrderID: remoteID,
		Status:        resp.Status,
	}, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: http status %d", ErrRequestFailed, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
