package admin

import (
	"github.com/voltshop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListAllCarts 获取全部购物车（含已支付与未支付）
func (h *Handler) ListAllCarts(c *gin.Context) {
	carts, err := h.CartService.GetAllCarts()
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_list_failed", err)
		return
	}
	response.Success(c, gin.H{"carts": carts})
}

// DeleteAllCarts 删除所有购物车
func (h *Handler) DeleteAllCarts(c *gin.Context) {
	if err := h.CartService.DeleteAllCarts(); err != nil {
		respondError(c, response.CodeInternal, "error.cart_delete_failed", err)
		return
	}
	requestLog(c).Warnw("all_carts_deleted")
	response.Success(c, gin.H{"deleted": true})
}
