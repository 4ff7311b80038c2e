package public

import (
	"github.com/voltshop/internal/http/response"
	"github.com/voltshop/internal/service"

	"github.com/gin-gonic/gin"
)

// AddReviewRequest 新增评价请求
type AddReviewRequest struct {
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

// AddReview 对商品新增评价
func (h *Handler) AddReview(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		return
	}
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	review, err := h.ReviewService.Add(service.AddReviewInput{
		Model:    c.Param("model"),
		Username: username,
		Score:    req.Score,
		Comment:  req.Comment,
	})
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.review_add_failed")
		return
	}
	response.Success(c, gin.H{"review": review})
}

// ListReviews 获取商品全部评价
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.ReviewService.ListByModel(c.Param("model"))
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.review_list_failed")
		return
	}
	response.Success(c, gin.H{"reviews": reviews})
}

// DeleteOwnReview 删除自己对商品的评价
func (h *Handler) DeleteOwnReview(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		return
	}
	if err := h.ReviewService.Delete(c.Param("model"), username); err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.review_delete_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
