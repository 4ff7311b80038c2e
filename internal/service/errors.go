package service

import "errors"

// 业务层哨兵错误，handler 通过 errors.Is 映射为响应码
var (
	// 用户
	ErrUserAlreadyExists  = errors.New("error.user_already_exists")
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrInvalidRole        = errors.New("error.invalid_role")
	ErrWeakPassword       = errors.New("error.weak_password")
	ErrUserProtected      = errors.New("error.user_protected")

	// 商品
	ErrProductAlreadyExists = errors.New("error.product_already_exists")
	ErrProductNotFound      = errors.New("error.product_not_found")
	ErrEmptyProductStock    = errors.New("error.empty_product_stock")
	ErrLowProductStock      = errors.New("error.low_product_stock")
	ErrInvalidCategory      = errors.New("error.invalid_category")
	ErrInvalidGrouping      = errors.New("error.invalid_grouping")
	ErrInvalidDate          = errors.New("error.invalid_date")
	ErrFutureDate           = errors.New("error.future_date")
	ErrDateBeforeArrival    = errors.New("error.date_before_arrival")

	// 购物车
	ErrCartNotFound     = errors.New("error.cart_not_found")
	ErrProductNotInCart = errors.New("error.product_not_in_cart")
	ErrEmptyCart        = errors.New("error.empty_cart")

	// 评价
	ErrReviewExists   = errors.New("error.review_already_exists")
	ErrReviewNotFound = errors.New("error.review_not_found")

	// 通用
	ErrInvalidInput = errors.New("error.invalid_input")
)
