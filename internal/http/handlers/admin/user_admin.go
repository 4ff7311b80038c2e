package admin

import (
	"github.com/voltshop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListUsers 用户列表（可选按角色过滤）
func (h *Handler) ListUsers(c *gin.Context) {
	role := c.Query("role")

	var err error
	var users interface{}
	if role == "" {
		users, err = h.UserService.List()
	} else {
		users, err = h.UserService.ListByRole(role)
	}
	if err != nil {
		respondWithMappedError(c, err, userAdminErrorRules, response.CodeInternal, "error.user_list_failed")
		return
	}
	response.Success(c, gin.H{"users": users})
}

// DeleteAllUsers 删除所有非管理员用户
func (h *Handler) DeleteAllUsers(c *gin.Context) {
	if err := h.UserService.DeleteAll(); err != nil {
		respondError(c, response.CodeInternal, "error.user_delete_failed", err)
		return
	}
	requestLog(c).Warnw("all_users_deleted")
	response.Success(c, gin.H{"deleted": true})
}
