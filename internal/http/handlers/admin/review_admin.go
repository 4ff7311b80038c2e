package admin

import (
	"github.com/voltshop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// DeleteProductReviews 删除指定型号的全部评价
func (h *Handler) DeleteProductReviews(c *gin.Context) {
	model := c.Param("model")
	if err := h.ReviewService.DeleteByModel(model); err != nil {
		respondWithMappedError(c, err, reviewAdminErrorRules, response.CodeInternal, "error.review_delete_failed")
		return
	}
	requestLog(c).Infow("product_reviews_deleted", "model", model)
	response.Success(c, gin.H{"deleted": true})
}

// DeleteAllReviews 删除所有评价
func (h *Handler) DeleteAllReviews(c *gin.Context) {
	if err := h.ReviewService.DeleteAll(); err != nil {
		respondError(c, response.CodeInternal, "error.review_delete_failed", err)
		return
	}
	requestLog(c).Warnw("all_reviews_deleted")
	response.Success(c, gin.H{"deleted": true})
}
