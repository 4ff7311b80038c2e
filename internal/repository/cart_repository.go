package repository

import (
	"errors"

	"github.com/voltshop/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByID(id uint) (*models.Cart, error)
	GetUnpaidByCustomer(customer string) (*models.Cart, error)
	EnsureUnpaid(customer string) (*models.Cart, error)
	GetLine(cartID uint, model string) (*models.CartLine, error)
	CreateLine(line *models.CartLine) error
	UpdateLineQuantity(lineID uint, quantity int) error
	DeleteLine(lineID uint) error
	ClearLines(cartID uint) error
	RecalculateTotal(cartID uint) (models.Money, error)
	MarkPaid(cartID uint, paymentDate string) error
	ListPaidByCustomer(customer string) ([]models.Cart, error)
	List(filter CartListFilter) ([]models.Cart, error)
	DeleteAll() error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByID 根据 ID 获取购物车（含行项目）
func (r *GormCartRepository) GetByID(id uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Lines").First(&cart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetUnpaidByCustomer 获取用户当前未支付购物车（含行项目）
func (r *GormCartRepository) GetUnpaidByCustomer(customer string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Lines").
		Where("customer = ? AND paid = ?", customer, false).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// EnsureUnpaid 获取或创建用户未支付购物车
// 条件必须用字符串形式：结构体条件会丢弃零值字段 paid = false，导致匹配到已支付购物车
func (r *GormCartRepository) EnsureUnpaid(customer string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Where("customer = ? AND paid = ?", customer, false).
		Attrs(models.Cart{
			Customer: customer,
			Paid:     false,
			Total:    models.NewMoneyFromDecimal(decimal.Zero),
		}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetLine 获取购物车中指定型号的行项目
func (r *GormCartRepository) GetLine(cartID uint, model string) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.Where("cart_id = ? AND model = ?", cartID, model).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// CreateLine 创建行项目
func (r *GormCartRepository) CreateLine(line *models.CartLine) error {
	return r.db.Create(line).Error
}

// UpdateLineQuantity 更新行项目数量
func (r *GormCartRepository) UpdateLineQuantity(lineID uint, quantity int) error {
	return r.db.Model(&models.CartLine{}).Where("id = ?", lineID).Update("quantity", quantity).Error
}

// DeleteLine 删除行项目
func (r *GormCartRepository) DeleteLine(lineID uint) error {
	return r.db.Delete(&models.CartLine{}, lineID).Error
}

// ClearLines 清空购物车行项目
func (r *GormCartRepository) ClearLines(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartLine{}).Error
}

// RecalculateTotal 重算购物车总价（Σ 单价快照 × 数量）并写回
func (r *GormCartRepository) RecalculateTotal(cartID uint) (models.Money, error) {
	var lines []models.CartLine
	if err := r.db.Where("cart_id = ?", cartID).Find(&lines).Error; err != nil {
		return models.Money{}, err
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal().Decimal)
	}
	money := models.NewMoneyFromDecimal(total)
	if err := r.db.Model(&models.Cart{}).Where("id = ?", cartID).Update("total", money).Error; err != nil {
		return models.Money{}, err
	}
	return money, nil
}

// MarkPaid 标记购物车已支付
func (r *GormCartRepository) MarkPaid(cartID uint, paymentDate string) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).Updates(map[string]interface{}{
		"paid":         true,
		"payment_date": paymentDate,
	}).Error
}

// ListPaidByCustomer 获取用户历史已支付购物车（含行项目）
func (r *GormCartRepository) ListPaidByCustomer(customer string) ([]models.Cart, error) {
	var carts []models.Cart
	err := r.db.Preload("Lines").
		Where("customer = ? AND paid = ?", customer, true).
		Order("id asc").
		Find(&carts).Error
	if err != nil {
		return nil, err
	}
	return carts, nil
}

// List 购物车列表（含行项目）
func (r *GormCartRepository) List(filter CartListFilter) ([]models.Cart, error) {
	query := r.db.Preload("Lines").Model(&models.Cart{})
	if filter.Customer != "" {
		query = query.Where("customer = ?", filter.Customer)
	}
	if filter.Paid != nil {
		query = query.Where("paid = ?", *filter.Paid)
	}

	var carts []models.Cart
	if err := query.Order("id asc").Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// DeleteAll 删除所有购物车及行项目
func (r *GormCartRepository) DeleteAll() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Cart{}).Error
	})
}
