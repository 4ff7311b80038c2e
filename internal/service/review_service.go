package service

import (
	"strings"
	"time"

	"github.com/voltshop/internal/constants"
	"github.com/voltshop/internal/models"
	"github.com/voltshop/internal/repository"

	"gorm.io/gorm"
)

// ReviewService 商品评价服务
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// AddReviewInput 新增评价输入
type AddReviewInput struct {
	Model    string
	Username string
	Score    int
	Comment  string
}

// Add 新增评价（每个用户对每个型号最多一条）
func (s *ReviewService) Add(input AddReviewInput) (*models.Review, error) {
	model := strings.TrimSpace(input.Model)
	username := strings.TrimSpace(input.Username)
	if model == "" || username == "" || input.Score < 1 || input.Score > 5 {
		return nil, ErrInvalidInput
	}

	product, err := s.productRepo.GetByModel(model)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	var review *models.Review
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.reviewRepo.WithTx(tx)
		existing, err := repo.GetByModelAndUser(model, username)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrReviewExists
		}
		review = &models.Review{
			Model:    model,
			Username: username,
			Score:    input.Score,
			Date:     time.Now().Format(constants.DateLayout),
			Comment:  strings.TrimSpace(input.Comment),
		}
		return repo.Create(review)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ListByModel 获取指定型号的全部评价
func (s *ReviewService) ListByModel(model string) ([]models.Review, error) {
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
	return s.reviewRepo.ListByModel(model)
}

// Delete 删除用户对指定型号的评价
func (s *ReviewService) Delete(model, username string) error {
	model = strings.TrimSpace(model)
	username = strings.TrimSpace(username)
	if model == "" || username == "" {
		return ErrInvalidInput
	}

	product, err := s.productRepo.GetByModel(model)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	review, err := s.reviewRepo.GetByModelAndUser(model, username)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.DeleteByModelAndUser(model, username)
}

// DeleteByModel 删除指定型号的全部评价
func (s *ReviewService) DeleteByModel(model string) error {
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
	return s.reviewRepo.DeleteByModel(model)
}

// DeleteAll 删除所有评价
func (s *ReviewService) DeleteAll() error {
	return s.reviewRepo.DeleteAll()
}
