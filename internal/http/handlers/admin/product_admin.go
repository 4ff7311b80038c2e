package admin

import (
	"github.com/voltshop/internal/http/response"
	"github.com/voltshop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterArrivalRequest 新到货登记请求
type RegisterArrivalRequest struct {
	Model        string          `json:"model" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	Quantity     int             `json:"quantity" binding:"required"`
	Details      string          `json:"details"`
	SellingPrice decimal.Decimal `json:"selling_price" binding:"required"`
	ArrivalDate  string          `json:"arrival_date"`
}

// RegisterArrival 登记新到货商品
func (h *Handler) RegisterArrival(c *gin.Context) {
	var req RegisterArrivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.RegisterArrival(service.RegisterArrivalInput{
		Model:        req.Model,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Details:      req.Details,
		SellingPrice: req.SellingPrice,
		ArrivalDate:  req.ArrivalDate,
	})
	if err != nil {
		respondWithMappedError(c, err, productAdminErrorRules, response.CodeInternal, "error.product_register_failed")
		return
	}
	requestLog(c).Infow("product_registered", "model", product.Model, "quantity", product.Quantity)
	response.Success(c, gin.H{"product": product})
}

// StockChangeRequest 库存变更请求
type StockChangeRequest struct {
	Quantity   int    `json:"quantity" binding:"required"`
	ChangeDate string `json:"change_date"`
}

// RestockProduct 增加商品库存
func (h *Handler) RestockProduct(c *gin.Context) {
	var req StockChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	model := c.Param("model")
	quantity, err := h.ProductService.Restock(model, req.Quantity, req.ChangeDate)
	if err != nil {
		respondWithMappedError(c, err, productAdminErrorRules, response.CodeInternal, "error.product_restock_failed")
		return
	}
	requestLog(c).Infow("product_restocked", "model", model, "quantity", quantity)
	response.Success(c, gin.H{"quantity": quantity})
}

// SellProduct 售出商品并扣减库存
func (h *Handler) SellProduct(c *gin.Context) {
	var req StockChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	model := c.Param("model")
	quantity, err := h.ProductService.Sell(model, req.Quantity, req.ChangeDate)
	if err != nil {
		respondWithMappedError(c, err, productAdminErrorRules, response.CodeInternal, "error.product_sell_failed")
		return
	}
	requestLog(c).Infow("product_sold", "model", model, "quantity", quantity)
	response.Success(c, gin.H{"quantity": quantity})
}

// ListProducts 商品列表（支持 grouping/category/model 过滤）
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.ProductService.List(service.ListQuery{
		Grouping: c.Query("grouping"),
		Category: c.Query("category"),
		Model:    c.Query("model"),
	})
	if err != nil {
		respondWithMappedError(c, err, productAdminErrorRules, response.CodeInternal, "error.product_list_failed")
		return
	}
	response.Success(c, gin.H{"products": products})
}

// DeleteProduct 删除单个商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	model := c.Param("model")
	if err := h.ProductService.Delete(model); err != nil {
		respondWithMappedError(c, err, productAdminErrorRules, response.CodeInternal, "error.product_delete_failed")
		return
	}
	requestLog(c).Infow("product_deleted", "model", model)
	response.Success(c, gin.H{"deleted": true})
}

// DeleteAllProducts 删除所有商品
func (h *Handler) DeleteAllProducts(c *gin.Context) {
	if err := h.ProductService.DeleteAll(); err != nil {
		respondError(c, response.CodeInternal, "error.product_delete_failed", err)
		return
	}
	requestLog(c).Warnw("all_products_deleted")
	response.Success(c, gin.H{"deleted": true})
}
