package admin

import (
	"errors"

	handlershared "github.com/voltshop/internal/http/handlers/shared"
	"github.com/voltshop/internal/http/response"
	"github.com/voltshop/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var productAdminErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrInvalidCategory, code: response.CodeUnprocessable, key: "error.invalid_category"},
	{target: service.ErrInvalidGrouping, code: response.CodeUnprocessable, key: "error.invalid_grouping"},
	{target: service.ErrInvalidDate, code: response.CodeBadRequest, key: "error.invalid_date"},
	{target: service.ErrFutureDate, code: response.CodeBadRequest, key: "error.future_date"},
	{target: service.ErrDateBeforeArrival, code: response.CodeBadRequest, key: "error.date_before_arrival"},
	{target: service.ErrProductAlreadyExists, code: response.CodeConflict, key: "error.product_already_exists"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrEmptyProductStock, code: response.CodeConflict, key: "error.empty_product_stock"},
	{target: service.ErrLowProductStock, code: response.CodeConflict, key: "error.low_product_stock"},
}

var userAdminErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidRole, code: response.CodeUnprocessable, key: "error.invalid_role"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
}

var reviewAdminErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}
