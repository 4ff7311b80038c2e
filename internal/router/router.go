package router

import (
	"fmt"
	"strings"

	"github.com/voltshop/internal/cache"
	"github.com/voltshop/internal/config"
	"github.com/voltshop/internal/constants"
	adminhandlers "github.com/voltshop/internal/http/handlers/admin"
	publichandlers "github.com/voltshop/internal/http/handlers/public"
	"github.com/voltshop/internal/logger"
	"github.com/voltshop/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "vs"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), publicHandler.Login)
		}

		// 需鉴权的接口
		authed := apiV1.Group("")
		authed.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			authed.GET("/auth/me", publicHandler.Me)
			authed.POST("/auth/change-password", publicHandler.ChangePassword)

			// 用户资料（本人或管理员，权限在服务层校验）
			authed.GET("/users/:username", publicHandler.GetUser)
			authed.PATCH("/users/:username", publicHandler.UpdateUser)
			authed.DELETE("/users/:username", publicHandler.DeleteUser)

			// 在售商品与评价
			authed.GET("/products/available", publicHandler.ListAvailableProducts)
			authed.GET("/reviews/:model", publicHandler.ListReviews)

			// 购物车（仅顾客）
			customer := authed.Group("")
			customer.Use(RequireRoles(constants.RoleCustomer))
			{
				customer.GET("/cart", publicHandler.GetCart)
				customer.POST("/cart/products", publicHandler.AddToCart)
				customer.DELETE("/cart/products/:model", publicHandler.RemoveFromCart)
				customer.DELETE("/cart", publicHandler.EmptyCart)
				customer.POST("/cart/checkout", publicHandler.CheckoutCart)
				customer.GET("/cart/history", publicHandler.GetCartHistory)

				customer.POST("/reviews/:model", publicHandler.AddReview)
				customer.DELETE("/reviews/:model", publicHandler.DeleteOwnReview)
			}

			// 管理接口
			admin := authed.Group("/admin")
			{
				// 商品管理（经理或管理员）
				managed := admin.Group("")
				managed.Use(RequireRoles(constants.RoleManager, constants.RoleAdmin))
				{
					managed.GET("/products", adminHandler.ListProducts)
					managed.POST("/products", adminHandler.RegisterArrival)
					managed.POST("/products/:model/restock", adminHandler.RestockProduct)
					managed.POST("/products/:model/sell", adminHandler.SellProduct)
					managed.DELETE("/products/:model", adminHandler.DeleteProduct)
					managed.DELETE("/products", adminHandler.DeleteAllProducts)
				}

				// 全局管理（仅管理员）
				restricted := admin.Group("")
				restricted.Use(RequireRoles(constants.RoleAdmin))
				{
					restricted.GET("/carts", adminHandler.ListAllCarts)
					restricted.DELETE("/carts", adminHandler.DeleteAllCarts)
					restricted.GET("/users", adminHandler.ListUsers)
					restricted.DELETE("/users", adminHandler.DeleteAllUsers)
					restricted.DELETE("/reviews/:model", adminHandler.DeleteProductReviews)
					restricted.DELETE("/reviews", adminHandler.DeleteAllReviews)
				}
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
