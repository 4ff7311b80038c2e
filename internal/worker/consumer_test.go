package worker

import (
	"testing"

	"github.com/voltshop/internal/models"
)

func TestBuildReceiptSummaryNilCart(t *testing.T) {
	if got := buildReceiptSummary(nil); got != "" {
		t.Fatalf("expected empty summary for nil cart, got %q", got)
	}
}

func TestBuildReceiptSummaryEmptyLines(t *testing.T) {
	cart := &models.Cart{Customer: "alice"}
	if got := buildReceiptSummary(cart); got != "" {
		t.Fatalf("expected empty summary for empty cart, got %q", got)
	}
}

func TestBuildReceiptSummaryFormatsLines(t *testing.T) {
	cart := &models.Cart{
		Customer: "alice",
		Lines: []models.CartLine{
			{
				Model:    "iPhone13",
				Quantity: 2,
				Price:    models.NewMoneyFromFloat(599.9),
			},
			{
				Model:    "   ",
				Quantity: 1,
				Price:    models.NewMoneyFromFloat(10),
			},
			{
				Model:    "ThinkPadX1",
				Quantity: 1,
				Price:    models.NewMoneyFromFloat(1200),
			},
		},
	}

	got := buildReceiptSummary(cart)
	want := "iPhone13 x2 @599.90; ThinkPadX1 x1 @1200.00"
	if got != want {
		t.Fatalf("unexpected summary, want %q, got %q", want, got)
	}
}
