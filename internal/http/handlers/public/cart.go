package public

import (
	"github.com/voltshop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartProductRequest 购物车商品请求
type CartProductRequest struct {
	Model string `json:"model" binding:"required"`
}

// GetCart 获取当前未支付购物车
func (h *Handler) GetCart(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		return
	}
	cart, err := h.CartService.GetCurrentCart(username)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}
	response.Success(c, gin.H{"cart": cart})
}

// AddToCart 向当前购物车加入一件商品
func (h *Handler) AddToCart(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		return
	}
	var req CartProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	cart, err := h.CartService.AddProduct(username, req.Model)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_add_failed")
		return
	}
	response.Success(c, gin.H{"cart": cart})
}

// RemoveFromCart 从当前购物车移除一件商品
func (h *Handler) RemoveFromCart(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		return
	}
	cart, err := h.CartService.RemoveProduct(username, c.Param("model"))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_remove_failed")
		return
	}
	response.Success(c, gin.H{"cart": cart})
}

// EmptyCart 清空当前购物车
func (h *Handler) EmptyCart(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		return
	}
	if err := h.CartService.EmptyCart(username); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_empty_failed")
		return
	}
	response.Success(c, gin.H{"emptied": true})
}

// CheckoutCart 结算当前购物车
func (h *Handler) CheckoutCart(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		return
	}
	cart, err := h.CartService.Checkout(username)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_checkout_failed")
		return
	}
	requestLog(c).Infow("cart_checked_out",
		"customer", username,
		"cart_id", cart.ID,
		"total", cart.Total.String(),
	)
	response.Success(c, gin.H{"cart": cart})
}

// GetCartHistory 获取历史已支付购物车
func (h *Handler) GetCartHistory(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		return
	}
	carts, err := h.CartService.GetPaidCarts(username)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_history_failed")
		return
	}
	response.Success(c, gin.H{"carts": carts})
}
