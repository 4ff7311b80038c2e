package service

import (
	"strings"
	"time"

	"github.com/voltshop/internal/constants"
	"github.com/voltshop/internal/logger"
	"github.com/voltshop/internal/models"
	"github.com/voltshop/internal/queue"
	"github.com/voltshop/internal/repository"

	"gorm.io/gorm"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	queueClient *queue.Client
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, queueClient *queue.Client) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		queueClient: queueClient,
	}
}

// GetCurrentCart 获取用户当前未支付购物车（不存在时惰性创建空购物车并落库）
func (s *CartService) GetCurrentCart(customer string) (*models.Cart, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return nil, ErrInvalidInput
	}
	cart, err := s.cartRepo.GetUnpaidByCustomer(customer)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart, err = s.cartRepo.EnsureUnpaid(customer)
		if err != nil {
			return nil, err
		}
	}
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	return cart, nil
}

// AddProduct 向当前购物车加入一件商品（同型号数量累加，价格与品类取加入时快照）
func (s *CartService) AddProduct(customer, model string) (*models.Cart, error) {
	customer = strings.TrimSpace(customer)
	model = strings.TrimSpace(model)
	if customer == "" || model == "" {
		return nil, ErrInvalidInput
	}

	product, err := s.productRepo.GetByModel(model)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	var cartID uint
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := repo.EnsureUnpaid(customer)
		if err != nil {
			return err
		}
		cartID = cart.ID

		line, err := repo.GetLine(cart.ID, model)
		if err != nil {
			return err
		}
		if line == nil {
			if err := repo.CreateLine(&models.CartLine{
				CartID:   cart.ID,
				Model:    product.Model,
				Category: product.Category,
				Price:    product.SellingPrice,
				Quantity: 1,
			}); err != nil {
				return err
			}
		} else {
			if err := repo.UpdateLineQuantity(line.ID, line.Quantity+1); err != nil {
				return err
			}
		}

		_, err = repo.RecalculateTotal(cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.cartRepo.GetByID(cartID)
}

// RemoveProduct 从当前购物车移除一件商品（数量减一，减到零删除行）
func (s *CartService) RemoveProduct(customer, model string) (*models.Cart, error) {
	customer = strings.TrimSpace(customer)
	model = strings.TrimSpace(model)
	if customer == "" || model == "" {
		return nil, ErrInvalidInput
	}

	product, err := s.productRepo.GetByModel(model)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	var cartID uint
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := repo.GetUnpaidByCustomer(customer)
		if err != nil {
			return err
		}
		// 无未支付购物车等同于商品不在购物车中
		if cart == nil || len(cart.Lines) == 0 {
			return ErrProductNotInCart
		}
		cartID = cart.ID

		line, err := repo.GetLine(cart.ID, model)
		if err != nil {
			return err
		}
		if line == nil {
			return ErrProductNotInCart
		}

		if line.Quantity <= 1 {
			if err := repo.DeleteLine(line.ID); err != nil {
				return err
			}
		} else {
			if err := repo.UpdateLineQuantity(line.ID, line.Quantity-1); err != nil {
				return err
			}
		}

		_, err = repo.RecalculateTotal(cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.cartRepo.GetByID(cartID)
}

// EmptyCart 清空当前购物车（保留购物车本身，总价归零；无未支付购物车时为无操作）
func (s *CartService) EmptyCart(customer string) error {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return ErrInvalidInput
	}

	return models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := repo.GetUnpaidByCustomer(customer)
		if err != nil {
			return err
		}
		if cart == nil {
			return nil
		}
		if err := repo.ClearLines(cart.ID); err != nil {
			return err
		}
		_, err = repo.RecalculateTotal(cart.ID)
		return err
	})
}

// Checkout 结算当前购物车：标记已支付并盖支付日期戳，购物车转为历史记录
func (s *CartService) Checkout(customer string) (*models.Cart, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return nil, ErrInvalidInput
	}

	var cartID uint
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := repo.GetUnpaidByCustomer(customer)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}
		if len(cart.Lines) == 0 {
			return ErrEmptyCart
		}
		cartID = cart.ID

		if _, err := repo.RecalculateTotal(cart.ID); err != nil {
			return err
		}
		return repo.MarkPaid(cart.ID, time.Now().Format(constants.PaymentDateLayout))
	})
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}

	if enqueueErr := s.queueClient.EnqueueCheckoutReceipt(queue.CheckoutReceiptPayload{
		CartID:   cartID,
		Customer: customer,
	}); enqueueErr != nil {
		logger.Warnw("cart_checkout_receipt_enqueue_failed", "cart_id", cartID, "error", enqueueErr)
	}
	return cart, nil
}

// GetPaidCarts 获取用户历史已支付购物车
func (s *CartService) GetPaidCarts(customer string) ([]models.Cart, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return nil, ErrInvalidInput
	}
	return s.cartRepo.ListPaidByCustomer(customer)
}

// GetAllCarts 获取全部购物车（含已支付与未支付）
func (s *CartService) GetAllCarts() ([]models.Cart, error) {
	return s.cartRepo.List(repository.CartListFilter{})
}

// DeleteAllCarts 删除所有购物车
func (s *CartService) DeleteAllCarts() error {
	return s.cartRepo.DeleteAll()
}
