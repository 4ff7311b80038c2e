package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/voltshop/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// UserAuthState 用户鉴权快照
// 仅用于服务端 Redis 缓存，避免每个请求都回查数据库
type UserAuthState struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	UpdatedAt int64  `json:"updated_at"`
}

func userAuthStateKey(username string) string {
	return fmt.Sprintf("auth:user:%s", strings.ToLower(strings.TrimSpace(username)))
}

// BuildUserAuthState 从用户模型构建鉴权快照
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	return &UserAuthState{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		UpdatedAt: time.Now().Unix(),
	}
}

// GetUserAuthState 获取用户鉴权快照
func GetUserAuthState(ctx context.Context, username string) (*UserAuthState, bool, error) {
	if strings.TrimSpace(username) == "" {
		return nil, false, nil
	}
	var state UserAuthState
	hit, err := GetJSON(ctx, userAuthStateKey(username), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetUserAuthState 写入用户鉴权快照
func SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil || state.Username == "" {
		return nil
	}
	return SetJSON(ctx, userAuthStateKey(state.Username), state, authStateCacheTTL)
}

// DelUserAuthState 删除用户鉴权快照
func DelUserAuthState(ctx context.Context, username string) error {
	if strings.TrimSpace(username) == "" {
		return nil
	}
	return Del(ctx, userAuthStateKey(username))
}
