package queue

import (
	"encoding/json"

	"github.com/voltshop/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCheckoutReceipt 结算回执任务
	TaskCheckoutReceipt = constants.TaskCheckoutReceipt
)

// CheckoutReceiptPayload 结算回执任务载荷
type CheckoutReceiptPayload struct {
	CartID   uint   `json:"cart_id"`
	Customer string `json:"customer"`
}

// NewCheckoutReceiptTask 创建结算回执任务
func NewCheckoutReceiptTask(payload CheckoutReceiptPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCheckoutReceipt, body), nil
}
