package public

import (
	handlershared "github.com/voltshop/internal/http/handlers/shared"
	"github.com/voltshop/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func getUsername(c *gin.Context) (string, bool) {
	return handlershared.GetContextString(c, "username")
}

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

// currentUser 从认证中间件写入的上下文字段还原调用者身份
func currentUser(c *gin.Context) (*models.User, bool) {
	username, ok := handlershared.GetContextString(c, "username")
	if !ok {
		return nil, false
	}
	role, ok := handlershared.GetContextString(c, "role")
	if !ok {
		return nil, false
	}
	return &models.User{Username: username, Role: role}, true
}
