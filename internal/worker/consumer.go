package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/voltshop/internal/logger"
	"github.com/voltshop/internal/models"
	"github.com/voltshop/internal/provider"
	"github.com/voltshop/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCheckoutReceipt, c.handleCheckoutReceipt)
}

func (c *Consumer) handleCheckoutReceipt(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_checkout_receipt_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CheckoutReceiptPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_checkout_receipt_unmarshal_failed", "error", err)
		return err
	}
	if payload.CartID == 0 {
		logger.Debugw("worker_checkout_receipt_skip_invalid_payload", "cart_id", payload.CartID)
		return nil
	}
	cart, err := c.CartRepo.GetByID(payload.CartID)
	if err != nil {
		logger.Warnw("worker_checkout_receipt_fetch_cart_failed", "cart_id", payload.CartID, "error", err)
		return err
	}
	if cart == nil {
		logger.Debugw("worker_checkout_receipt_skip_cart_not_found", "cart_id", payload.CartID)
		return nil
	}
	if !cart.Paid {
		logger.Debugw("worker_checkout_receipt_skip_unpaid_cart", "cart_id", cart.ID)
		return nil
	}
	logger.Infow("checkout_receipt",
		"cart_id", cart.ID,
		"customer", cart.Customer,
		"payment_date", cart.PaymentDate,
		"total", cart.Total.String(),
		"lines", buildReceiptSummary(cart),
	)
	return nil
}

// buildReceiptSummary 生成回执行摘要（model x qty @ price）
func buildReceiptSummary(cart *models.Cart) string {
	if cart == nil || len(cart.Lines) == 0 {
		return ""
	}
	parts := make([]string, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		model := strings.TrimSpace(line.Model)
		if model == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s x%d @%s", model, line.Quantity, line.Price.String()))
	}
	return strings.Join(parts, "; ")
}
