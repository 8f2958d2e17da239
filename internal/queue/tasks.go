package queue

import (
	"encoding/json"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmationEmail sends the post-checkout confirmation mail.
	TaskOrderConfirmationEmail = constants.TaskOrderConfirmationEmail
)

// OrderConfirmationEmailPayload identifies the order to confirm.
type OrderConfirmationEmailPayload struct {
	OrderNo string `json:"order_no"`
	Email   string `json:"email"`
}

// NewOrderConfirmationEmailTask builds the asynq task.
func NewOrderConfirmationEmailTask(payload OrderConfirmationEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmationEmail, body), nil
}
