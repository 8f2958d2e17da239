package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/logger"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/provider"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/queue"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer builds a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires task handlers into the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmationEmail, c.handleOrderConfirmationEmail)
}

func (c *Consumer) handleOrderConfirmationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.OrderNo) == "" {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_no", payload.OrderNo)
		return nil
	}

	order, err := c.OrderRepo.GetByOrderNo(payload.OrderNo)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_failed", "order_no", payload.OrderNo, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_confirmation_skip_order_not_found", "order_no", payload.OrderNo)
		return nil
	}

	receiver := strings.TrimSpace(payload.Email)
	if receiver == "" {
		receiver = strings.TrimSpace(order.Email)
	}
	if receiver == "" {
		logger.Debugw("worker_order_confirmation_skip_no_email", "order_no", payload.OrderNo)
		return nil
	}

	if err := c.EmailService.SendOrderConfirmation(receiver, order); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_order_confirmation_skip_email_unavailable", "order_no", payload.OrderNo, "error", err)
			return nil
		}
		logger.Warnw("worker_order_confirmation_send_failed", "order_no", payload.OrderNo, "error", err)
		return err
	}

	logger.Infow("worker_order_confirmation_sent", "order_no", payload.OrderNo, "email", receiver)
	return nil
}
