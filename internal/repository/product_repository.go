package repository

import (
	"errors"

	"github.com/voltshop/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	GetByModel(model string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	UpdateQuantity(model string, quantity int) error
	List(filter ProductListFilter) ([]models.Product, error)
	DeleteByModel(model string) error
	DeleteAll() error
	WithTx(tx *gorm.DB) *GormProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) *GormProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// GetByModel 根据型号获取商品
func (r *GormProductRepository) GetByModel(model string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("model = ?", model).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// UpdateQuantity 更新商品库存
func (r *GormProductRepository) UpdateQuantity(model string, quantity int) error {
	return r.db.Model(&models.Product{}).Where("model = ?", model).Update("quantity", quantity).Error
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, error) {
	query := r.db.Model(&models.Product{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Model != "" {
		query = query.Where("model = ?", filter.Model)
	}
	if filter.OnlyAvailable {
		query = query.Where("quantity > 0")
	}

	var products []models.Product
	if err := query.Order("model asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// DeleteByModel 按型号删除商品
func (r *GormProductRepository) DeleteByModel(model string) error {
	return r.db.Where("model = ?", model).Delete(&models.Product{}).Error
}

// DeleteAll 删除所有商品
func (r *GormProductRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.Product{}).Error
}
