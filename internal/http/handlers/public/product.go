package public

import (
	"github.com/voltshop/internal/http/response"
	"github.com/voltshop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListAvailableProducts 在售商品列表（仅库存大于 0，支持 grouping/category/model 过滤）
func (h *Handler) ListAvailableProducts(c *gin.Context) {
	products, err := h.ProductService.ListAvailable(service.ListQuery{
		Grouping: c.Query("grouping"),
		Category: c.Query("category"),
		Model:    c.Query("model"),
	})
	if err != nil {
		respondWithMappedError(c, err, productQueryErrorRules, response.CodeInternal, "error.product_list_failed")
		return
	}
	response.Success(c, gin.H{"products": products})
}
