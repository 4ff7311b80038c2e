package service

import (
	"errors"
	"testing"
	"time"

	"github.com/voltshop/internal/constants"
	"github.com/voltshop/internal/models"
	"github.com/voltshop/internal/queue"
	"github.com/voltshop/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCartTestService(t *testing.T) (*CartService, *ProductService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	return NewCartService(cartRepo, productRepo, queueClient), NewProductService(productRepo), db
}

func mustRegisterProduct(t *testing.T, products *ProductService, model, category string, quantity int, price float64) {
	t.Helper()
	_, err := products.RegisterArrival(RegisterArrivalInput{
		Model:        model,
		Category:     category,
		Quantity:     quantity,
		SellingPrice: decimal.NewFromFloat(price),
	})
	if err != nil {
		t.Fatalf("register product %s failed: %v", model, err)
	}
}

func TestGetCurrentCartLazilyPersistsEmptyCart(t *testing.T) {
	carts, _, db := newCartTestService(t)

	cart, err := carts.GetCurrentCart("alice")
	if err != nil {
		t.Fatalf("get current cart failed: %v", err)
	}
	if cart.Paid {
		t.Fatalf("expected unpaid cart")
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Lines))
	}
	if !cart.Total.Equal(decimal.Zero) {
		t.Fatalf("expected zero total, got %s", cart.Total.String())
	}
	if cart.ID == 0 {
		t.Fatalf("expected lazily created cart to be persisted")
	}

	var count int64
	if err := db.Model(&models.Cart{}).Count(&count).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one persisted cart, got %d", count)
	}

	// 再次获取复用同一条记录
	again, err := carts.GetCurrentCart("alice")
	if err != nil {
		t.Fatalf("get current cart failed: %v", err)
	}
	if again.ID != cart.ID {
		t.Fatalf("expected same cart row, got id %d then %d", cart.ID, again.ID)
	}
}

func TestAddProductAccumulatesQuantityOnSameModel(t *testing.T) {
	carts, products, _ := newCartTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 10, 599.90)

	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	cart, err := carts.AddProduct("alice", "iPhone13")
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(cart.Lines) != 1 {
		t.Fatalf("expected single line, got %d", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Lines[0].Quantity)
	}
	want := decimal.RequireFromString("1199.80")
	if !cart.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want.StringFixed(2), cart.Total.String())
	}
}

func TestAddProductUnknownModel(t *testing.T) {
	carts, _, _ := newCartTestService(t)

	_, err := carts.AddProduct("alice", "NoSuchModel")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddProductKeepsSingleUnpaidCart(t *testing.T) {
	carts, products, db := newCartTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 10, 599.90)
	mustRegisterProduct(t, products, "ThinkPadX1", constants.CategoryLaptop, 5, 1200)

	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("add iPhone13 failed: %v", err)
	}
	if _, err := carts.AddProduct("alice", "ThinkPadX1"); err != nil {
		t.Fatalf("add ThinkPadX1 failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Cart{}).Where("customer = ? AND paid = ?", "alice", false).Count(&count).Error; err != nil {
		t.Fatalf("count unpaid carts failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one unpaid cart, got %d", count)
	}
}

func TestAddProductSnapshotsPriceAtAddTime(t *testing.T) {
	carts, products, db := newCartTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 10, 100)

	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// 改价不影响已有行的快照价格
	if err := db.Model(&models.Product{}).Where("model = ?", "iPhone13").
		Update("selling_price", models.NewMoneyFromDecimal(decimal.NewFromInt(500))).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	cart, err := carts.GetCurrentCart("alice")
	if err != nil {
		t.Fatalf("get current cart failed: %v", err)
	}
	if !cart.Lines[0].Price.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected snapshot price 100.00, got %s", cart.Lines[0].Price.String())
	}
	if !cart.Total.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected total 100.00, got %s", cart.Total.String())
	}
}

func TestRemoveProductDecrementsAndDeletesLineAtZero(t *testing.T) {
	carts, products, _ := newCartTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 10, 100)

	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	cart, err := carts.RemoveProduct("alice", "iPhone13")
	if err != nil {
		t.Fatalf("first remove failed: %v", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 1 {
		t.Fatalf("expected one line with quantity 1, got %+v", cart.Lines)
	}

	cart, err = carts.RemoveProduct("alice", "iPhone13")
	if err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected line deleted at zero, got %d lines", len(cart.Lines))
	}
	if !cart.Total.Equal(decimal.Zero) {
		t.Fatalf("expected zero total, got %s", cart.Total.String())
	}
}

func TestRemoveProductErrorTaxonomy(t *testing.T) {
	carts, products, _ := newCartTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 10, 100)
	mustRegisterProduct(t, products, "ThinkPadX1", constants.CategoryLaptop, 5, 1200)

	// 未知型号
	if _, err := carts.RemoveProduct("alice", "NoSuchModel"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	// 无未支付购物车：同样视为商品不在购物车中
	if _, err := carts.RemoveProduct("alice", "iPhone13"); !errors.Is(err, ErrProductNotInCart) {
		t.Fatalf("expected ErrProductNotInCart, got %v", err)
	}

	// 商品不在购物车中
	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := carts.RemoveProduct("alice", "ThinkPadX1"); !errors.Is(err, ErrProductNotInCart) {
		t.Fatalf("expected ErrProductNotInCart, got %v", err)
	}

	// 购物车存在但已被清空
	if err := carts.EmptyCart("alice"); err != nil {
		t.Fatalf("empty cart failed: %v", err)
	}
	if _, err := carts.RemoveProduct("alice", "iPhone13"); !errors.Is(err, ErrProductNotInCart) {
		t.Fatalf("expected ErrProductNotInCart for emptied cart, got %v", err)
	}
}

func TestEmptyCartClearsLinesAndZeroesTotal(t *testing.T) {
	carts, products, _ := newCartTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 10, 100)

	// 无未支付购物车时清空为无操作
	if err := carts.EmptyCart("alice"); err != nil {
		t.Fatalf("expected no-op for missing cart, got %v", err)
	}

	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := carts.EmptyCart("alice"); err != nil {
		t.Fatalf("empty cart failed: %v", err)
	}

	cart, err := carts.GetCurrentCart("alice")
	if err != nil {
		t.Fatalf("get current cart failed: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Lines))
	}
	if !cart.Total.Equal(decimal.Zero) {
		t.Fatalf("expected zero total, got %s", cart.Total.String())
	}
}

func TestCheckoutMarksPaidAndStampsPaymentDate(t *testing.T) {
	carts, products, _ := newCartTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 10, 100)

	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	paid, err := carts.Checkout("alice")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !paid.Paid {
		t.Fatalf("expected cart marked paid")
	}
	if paid.PaymentDate != time.Now().Format(constants.PaymentDateLayout) {
		t.Fatalf("unexpected payment date %q", paid.PaymentDate)
	}

	// 结算后再取当前购物车应得到全新的空购物车
	current, err := carts.GetCurrentCart("alice")
	if err != nil {
		t.Fatalf("get current cart failed: %v", err)
	}
	if current.Paid || len(current.Lines) != 0 {
		t.Fatalf("expected fresh empty unpaid cart, got %+v", current)
	}
}

func TestAddProductAfterCheckoutLeavesPaidCartUntouched(t *testing.T) {
	carts, products, _ := newCartTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 10, 100)

	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	paid, err := carts.Checkout("alice")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// 结算后的加购必须进入新的未支付购物车
	fresh, err := carts.AddProduct("alice", "iPhone13")
	if err != nil {
		t.Fatalf("add after checkout failed: %v", err)
	}
	if fresh.ID == paid.ID {
		t.Fatalf("expected a new cart, add reused paid cart %d", paid.ID)
	}
	if fresh.Paid {
		t.Fatalf("expected new cart to be unpaid")
	}
	if len(fresh.Lines) != 1 || fresh.Lines[0].Quantity != 1 {
		t.Fatalf("expected fresh cart with one line quantity 1, got %+v", fresh.Lines)
	}

	// 已支付购物车保持原样
	frozen, err := carts.cartRepo.GetByID(paid.ID)
	if err != nil {
		t.Fatalf("reload paid cart failed: %v", err)
	}
	if !frozen.Paid {
		t.Fatalf("expected paid cart to stay paid")
	}
	if len(frozen.Lines) != 1 || frozen.Lines[0].Quantity != 1 {
		t.Fatalf("expected paid cart lines unchanged, got %+v", frozen.Lines)
	}
	if !frozen.Total.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected paid cart total 100.00, got %s", frozen.Total.String())
	}
}

func TestCheckoutErrorTaxonomy(t *testing.T) {
	carts, products, _ := newCartTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 10, 100)

	// 无未支付购物车
	if _, err := carts.Checkout("alice"); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}

	// 查询触发惰性创建后，结算空购物车应报空购物车错误
	if _, err := carts.GetCurrentCart("alice"); err != nil {
		t.Fatalf("get current cart failed: %v", err)
	}
	if _, err := carts.Checkout("alice"); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart for lazily created cart, got %v", err)
	}

	// 空购物车
	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := carts.RemoveProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := carts.Checkout("alice"); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCartLifecycleScenario(t *testing.T) {
	carts, products, _ := newCartTestService(t)
	mustRegisterProduct(t, products, "X", constants.CategorySmartphone, 10, 10)
	mustRegisterProduct(t, products, "Y", constants.CategoryAppliance, 10, 5)

	for _, model := range []string{"X", "X", "Y"} {
		if _, err := carts.AddProduct("alice", model); err != nil {
			t.Fatalf("add %s failed: %v", model, err)
		}
	}
	cart, err := carts.GetCurrentCart("alice")
	if err != nil {
		t.Fatalf("get current cart failed: %v", err)
	}
	if len(cart.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Lines))
	}
	if !cart.Total.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected total 25.00, got %s", cart.Total.String())
	}

	cart, err = carts.RemoveProduct("alice", "X")
	if err != nil {
		t.Fatalf("remove X failed: %v", err)
	}
	if len(cart.Lines) != 2 {
		t.Fatalf("expected 2 lines after remove, got %d", len(cart.Lines))
	}
	if !cart.Total.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("expected total 15.00, got %s", cart.Total.String())
	}

	paid, err := carts.Checkout("alice")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !paid.Total.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("expected paid total 15.00, got %s", paid.Total.String())
	}

	current, err := carts.GetCurrentCart("alice")
	if err != nil {
		t.Fatalf("get current cart failed: %v", err)
	}
	if len(current.Lines) != 0 {
		t.Fatalf("expected empty cart after checkout, got %d lines", len(current.Lines))
	}
}

func TestGetPaidCartsReturnsHistoryInOrder(t *testing.T) {
	carts, products, _ := newCartTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 10, 100)

	for i := 0; i < 2; i++ {
		if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if _, err := carts.Checkout("alice"); err != nil {
			t.Fatalf("checkout failed: %v", err)
		}
	}
	// 未结算的购物车不应出现在历史中
	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	history, err := carts.GetPaidCarts("alice")
	if err != nil {
		t.Fatalf("get paid carts failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 paid carts, got %d", len(history))
	}
	if history[0].ID >= history[1].ID {
		t.Fatalf("expected history ordered by id, got %d then %d", history[0].ID, history[1].ID)
	}
	for _, cart := range history {
		if !cart.Paid || cart.PaymentDate == "" {
			t.Fatalf("expected paid carts with payment date, got %+v", cart)
		}
	}
}

func TestDeleteAllCarts(t *testing.T) {
	carts, products, db := newCartTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 10, 100)

	if _, err := carts.AddProduct("alice", "iPhone13"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := carts.Checkout("alice"); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if _, err := carts.AddProduct("bob", "iPhone13"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := carts.DeleteAllCarts(); err != nil {
		t.Fatalf("delete all carts failed: %v", err)
	}

	var cartCount, lineCount int64
	if err := db.Model(&models.Cart{}).Count(&cartCount).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if err := db.Model(&models.CartLine{}).Count(&lineCount).Error; err != nil {
		t.Fatalf("count lines failed: %v", err)
	}
	if cartCount != 0 || lineCount != 0 {
		t.Fatalf("expected all carts and lines deleted, got %d carts %d lines", cartCount, lineCount)
	}
}
