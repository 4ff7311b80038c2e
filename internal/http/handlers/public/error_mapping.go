package public

import (
	"errors"

	"github.com/voltshop/internal/http/response"
	"github.com/voltshop/internal/service"

	"github.com/gin-gonic/gin"
)

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

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrCartNotFound, code: response.CodeNotFound, key: "error.cart_not_found"},
	{target: service.ErrProductNotInCart, code: response.CodeNotFound, key: "error.product_not_in_cart"},
	{target: service.ErrEmptyCart, code: response.CodeConflict, key: "error.empty_cart"},
}

var productQueryErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidGrouping, code: response.CodeUnprocessable, key: "error.invalid_grouping"},
	{target: service.ErrInvalidCategory, code: response.CodeUnprocessable, key: "error.invalid_category"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeUnprocessable, key: "error.bad_request"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrReviewExists, code: response.CodeConflict, key: "error.review_already_exists"},
	{target: service.ErrReviewNotFound, code: response.CodeNotFound, key: "error.review_not_found"},
}

var userErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
	{target: service.ErrUserProtected, code: response.CodeUnauthorized, key: "error.user_protected"},
	{target: service.ErrInvalidRole, code: response.CodeUnprocessable, key: "error.invalid_role"},
	{target: service.ErrInvalidDate, code: response.CodeBadRequest, key: "error.invalid_date"},
	{target: service.ErrFutureDate, code: response.CodeBadRequest, key: "error.future_date"},
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrUserAlreadyExists, code: response.CodeConflict, key: "error.user_already_exists"},
	{target: service.ErrInvalidRole, code: response.CodeUnprocessable, key: "error.invalid_role"},
	{target: service.ErrWeakPassword, code: response.CodeUnprocessable, key: "error.weak_password"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.invalid_credentials"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
}
