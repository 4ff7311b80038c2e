package repository

import (
	"errors"

	"github.com/voltshop/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository 商品评价数据访问接口
type ReviewRepository interface {
	GetByModelAndUser(model, username string) (*models.Review, error)
	ListByModel(model string) ([]models.Review, error)
	Create(review *models.Review) error
	DeleteByModelAndUser(model, username string) error
	DeleteByModel(model string) error
	DeleteAll() error
	WithTx(tx *gorm.DB) *GormReviewRepository
}

// GormReviewRepository GORM 实现
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// WithTx 绑定事务
func (r *GormReviewRepository) WithTx(tx *gorm.DB) *GormReviewRepository {
	if tx == nil {
		return r
	}
	return &GormReviewRepository{db: tx}
}

// GetByModelAndUser 获取用户对指定型号的评价
func (r *GormReviewRepository) GetByModelAndUser(model, username string) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("model = ? AND username = ?", model, username).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByModel 获取指定型号的全部评价
func (r *GormReviewRepository) ListByModel(model string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("model = ?", model).Order("id asc").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create 创建评价
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// DeleteByModelAndUser 删除用户对指定型号的评价
func (r *GormReviewRepository) DeleteByModelAndUser(model, username string) error {
	return r.db.Where("model = ? AND username = ?", model, username).Delete(&models.Review{}).Error
}

// DeleteByModel 删除指定型号的全部评价
func (r *GormReviewRepository) DeleteByModel(model string) error {
	return r.db.Where("model = ?", model).Delete(&models.Review{}).Error
}

// DeleteAll 删除所有评价
func (r *GormReviewRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.Review{}).Error
}
