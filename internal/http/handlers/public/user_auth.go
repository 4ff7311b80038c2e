package public

import (
	"github.com/voltshop/internal/http/response"
	"github.com/voltshop/internal/models"
	"github.com/voltshop/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.AuthService.Register(service.RegisterInput{
		Username: req.Username,
		Name:     req.Name,
		Surname:  req.Surname,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "error.register_failed")
		return
	}

	requestLog(c).Infow("user_registered", "username", user.Username, "role", user.Role)
	response.Success(c, gin.H{"user": userView(user)})
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 用户登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "error.login_failed")
		return
	}

	requestLog(c).Infow("user_login", "username", user.Username)
	response.Success(c, gin.H{
		"user":       userView(user),
		"token":      token,
		"expires_at": expiresAt,
	})
}

// Me 获取当前登录用户信息
func (h *Handler) Me(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := h.UserService.GetByUsername(caller, caller.Username)
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "error.user_fetch_failed")
		return
	}
	response.Success(c, gin.H{"user": userView(user)})
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword 修改当前用户密码
func (h *Handler) ChangePassword(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "error.change_password_failed")
		return
	}
	response.Success(c, gin.H{"changed": true})
}

// GetUser 获取用户信息（非管理员仅可查询自己）
func (h *Handler) GetUser(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := h.UserService.GetByUsername(caller, c.Param("username"))
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "error.user_fetch_failed")
		return
	}
	response.Success(c, gin.H{"user": userView(user)})
}

// UpdateUserRequest 用户信息更新请求
type UpdateUserRequest struct {
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Address   string `json:"address"`
	Birthdate string `json:"birthdate"`
}

// UpdateUser 更新用户信息
func (h *Handler) UpdateUser(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.UserService.UpdateInfo(caller, c.Param("username"), service.UpdateInfoInput{
		Name:      req.Name,
		Surname:   req.Surname,
		Address:   req.Address,
		Birthdate: req.Birthdate,
	})
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "error.user_update_failed")
		return
	}
	response.Success(c, gin.H{"user": userView(user)})
}

// DeleteUser 删除用户（非管理员仅可删除自己）
func (h *Handler) DeleteUser(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	username := c.Param("username")
	if err := h.UserService.Delete(caller, username); err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "error.user_delete_failed")
		return
	}
	requestLog(c).Infow("user_deleted", "username", username, "operator", caller.Username)
	response.Success(c, gin.H{"deleted": true})
}

func userView(user *models.User) gin.H {
	return gin.H{
		"username":  user.Username,
		"name":      user.Name,
		"surname":   user.Surname,
		"role":      user.Role,
		"address":   user.Address,
		"birthdate": user.Birthdate,
	}
}
