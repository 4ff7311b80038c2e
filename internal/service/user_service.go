package service

import (
	"context"
	"strings"
	"time"

	"github.com/voltshop/internal/cache"
	"github.com/voltshop/internal/constants"
	"github.com/voltshop/internal/logger"
	"github.com/voltshop/internal/models"
	"github.com/voltshop/internal/repository"
)

// UserService 用户服务
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByUsername 获取用户信息（非管理员只能查询自己）
func (s *UserService) GetByUsername(caller *models.User, username string) (*models.User, error) {
	if caller == nil {
		return nil, ErrInvalidInput
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidInput
	}
	if caller.Role != constants.RoleAdmin && caller.Username != username {
		return nil, ErrUserProtected
	}
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List 全部用户列表
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.List(repository.UserListFilter{})
}

// ListByRole 按角色查询用户列表
func (s *UserService) ListByRole(role string) ([]models.User, error) {
	role = strings.TrimSpace(role)
	if !constants.IsValidRole(role) {
		return nil, ErrInvalidRole
	}
	return s.userRepo.List(repository.UserListFilter{Role: role})
}

// UpdateInfoInput 用户信息更新输入
type UpdateInfoInput struct {
	Name      string
	Surname   string
	Address   string
	Birthdate string
}

// UpdateInfo 更新用户信息（非管理员只能更新自己，管理员不能改动其他管理员）
func (s *UserService) UpdateInfo(caller *models.User, username string, input UpdateInfoInput) (*models.User, error) {
	if caller == nil {
		return nil, ErrInvalidInput
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidInput
	}
	if caller.Role != constants.RoleAdmin && caller.Username != username {
		return nil, ErrUserProtected
	}

	if input.Birthdate != "" {
		birth, err := time.Parse(constants.DateLayout, input.Birthdate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if birth.After(time.Now()) {
			return nil, ErrFutureDate
		}
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role == constants.RoleAdmin && caller.Username != user.Username {
		return nil, ErrUserProtected
	}

	user.Name = strings.TrimSpace(input.Name)
	user.Surname = strings.TrimSpace(input.Surname)
	user.Address = strings.TrimSpace(input.Address)
	user.Birthdate = strings.TrimSpace(input.Birthdate)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete 删除用户（非管理员只能删除自己，管理员不能删除其他管理员）
func (s *UserService) Delete(caller *models.User, username string) error {
	if caller == nil {
		return ErrInvalidInput
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrInvalidInput
	}
	if caller.Role != constants.RoleAdmin && caller.Username != username {
		return ErrUserProtected
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Role == constants.RoleAdmin && caller.Username != user.Username {
		return ErrUserProtected
	}
	if err := s.userRepo.DeleteByUsername(username); err != nil {
		return err
	}
	// 鉴权快照随用户一起失效
	if err := cache.DelUserAuthState(context.Background(), username); err != nil {
		logger.Warnw("user_auth_state_invalidate_failed", "username", username, "error", err)
	}
	return nil
}

// DeleteAll 删除所有非管理员用户
func (s *UserService) DeleteAll() error {
	return s.userRepo.DeleteAllNonAdmin()
}
