package service

import (
	"strings"
	"time"

	"github.com/voltshop/internal/constants"
	"github.com/voltshop/internal/models"
	"github.com/voltshop/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// RegisterArrivalInput 新到货登记输入
type RegisterArrivalInput struct {
	Model        string
	Category     string
	Quantity     int
	Details      string
	SellingPrice decimal.Decimal
	ArrivalDate  string
}

// RegisterArrival 登记新到货商品
func (s *ProductService) RegisterArrival(input RegisterArrivalInput) (*models.Product, error) {
	model := strings.TrimSpace(input.Model)
	if model == "" || input.Quantity <= 0 || input.SellingPrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	if !constants.IsValidCategory(input.Category) {
		return nil, ErrInvalidCategory
	}
	arrivalDate, err := normalizeDate(input.ArrivalDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.productRepo.GetByModel(model)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProductAlreadyExists
	}

	product := &models.Product{
		Model:        model,
		Category:     input.Category,
		SellingPrice: models.NewMoneyFromDecimal(input.SellingPrice),
		ArrivalDate:  arrivalDate,
		Quantity:     input.Quantity,
		Details:      strings.TrimSpace(input.Details),
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Restock 增加商品库存，返回变更后的数量
func (s *ProductService) Restock(model string, quantity int, changeDate string) (int, error) {
	model = strings.TrimSpace(model)
	if model == "" || quantity <= 0 {
		return 0, ErrInvalidInput
	}
	date, err := normalizeDate(changeDate)
	if err != nil {
		return 0, err
	}

	var newQuantity int
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)
		product, err := repo.GetByModel(model)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		if date < product.ArrivalDate {
			return ErrDateBeforeArrival
		}
		newQuantity = product.Quantity + quantity
		return repo.UpdateQuantity(model, newQuantity)
	})
	if err != nil {
		return 0, err
	}
	return newQuantity, nil
}

// Sell 售出商品并扣减库存，返回变更后的数量
func (s *ProductService) Sell(model string, quantity int, sellingDate string) (int, error) {
	model = strings.TrimSpace(model)
	if model == "" || quantity <= 0 {
		return 0, ErrInvalidInput
	}
	date, err := normalizeDate(sellingDate)
	if err != nil {
		return 0, err
	}

	var newQuantity int
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)
		product, err := repo.GetByModel(model)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		if date < product.ArrivalDate {
			return ErrDateBeforeArrival
		}
		if product.Quantity == 0 {
			return ErrEmptyProductStock
		}
		if quantity > product.Quantity {
			return ErrLowProductStock
		}
		newQuantity = product.Quantity - quantity
		return repo.UpdateQuantity(model, newQuantity)
	})
	if err != nil {
		return 0, err
	}
	return newQuantity, nil
}

// ListQuery 商品列表查询参数
type ListQuery struct {
	Grouping string
	Category string
	Model    string
}

// List 商品列表（支持按品类或型号分组过滤）
func (s *ProductService) List(query ListQuery) ([]models.Product, error) {
	return s.list(query, false)
}

// ListAvailable 在售商品列表（仅库存大于 0）
func (s *ProductService) ListAvailable(query ListQuery) ([]models.Product, error) {
	return s.list(query, true)
}

func (s *ProductService) list(query ListQuery, onlyAvailable bool) ([]models.Product, error) {
	grouping := strings.TrimSpace(query.Grouping)
	category := strings.TrimSpace(query.Category)
	model := strings.TrimSpace(query.Model)

	switch grouping {
	case constants.GroupingNone:
		if category != "" || model != "" {
			return nil, ErrInvalidGrouping
		}
		return s.productRepo.List(repository.ProductListFilter{OnlyAvailable: onlyAvailable})
	case constants.GroupingCategory:
		if model != "" {
			return nil, ErrInvalidGrouping
		}
		if !constants.IsValidCategory(category) {
			return nil, ErrInvalidCategory
		}
		return s.productRepo.List(repository.ProductListFilter{Category: category, OnlyAvailable: onlyAvailable})
	case constants.GroupingModel:
		if category != "" || model == "" {
			return nil, ErrInvalidGrouping
		}
		product, err := s.productRepo.GetByModel(model)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		if onlyAvailable && product.Quantity == 0 {
			return []models.Product{}, nil
		}
		return []models.Product{*product}, nil
	default:
		return nil, ErrInvalidGrouping
	}
}

// GetByModel 获取单个商品
func (s *ProductService) GetByModel(model string) (*models.Product, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, ErrInvalidInput
	}
	product, err := s.productRepo.GetByModel(model)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Delete 删除单个商品
func (s *ProductService) Delete(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return ErrInvalidInput
	}
	product, err := s.productRepo.GetByModel(model)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.DeleteByModel(model)
}

// DeleteAll 删除所有商品
func (s *ProductService) DeleteAll() error {
	return s.productRepo.DeleteAll()
}

// normalizeDate 校验业务日期（YYYY-MM-DD，不允许晚于今天），为空时取今天
func normalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().Format(constants.DateLayout), nil
	}
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return "", ErrInvalidDate
	}
	today, _ := time.Parse(constants.DateLayout, time.Now().Format(constants.DateLayout))
	if parsed.After(today) {
		return "", ErrFutureDate
	}
	return value, nil
}
