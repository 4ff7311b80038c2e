package main

import (
	"errors"

	"github.com/voltshop/internal/config"
	"github.com/voltshop/internal/constants"
	"github.com/voltshop/internal/logger"
	"github.com/voltshop/internal/models"
	"github.com/voltshop/internal/provider"
	"github.com/voltshop/internal/service"

	"github.com/shopspring/decimal"
)

// 演示数据填充工具，幂等：重复执行时已存在的记录会被跳过。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}
	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("警告: 初始化默认管理员失败: %v", err)
	}

	c := provider.NewContainer(cfg)
	seedUsers(c, stdLog.Printf)
	seedProducts(c, stdLog.Printf)
	seedReviews(c, stdLog.Printf)
	stdLog.Printf("演示数据填充完成")
}

func seedUsers(c *provider.Container, logf func(string, ...interface{})) {
	users := []service.RegisterInput{
		{Username: "alice", Name: "Alice", Surname: "Rossi", Password: "Customer1pass", Role: constants.RoleCustomer},
		{Username: "bob", Name: "Bob", Surname: "Bianchi", Password: "Customer1pass", Role: constants.RoleCustomer},
		{Username: "mario", Name: "Mario", Surname: "Verdi", Password: "Manager1pass", Role: constants.RoleManager},
	}
	for _, input := range users {
		if _, err := c.AuthService.Register(input); err != nil {
			if errors.Is(err, service.ErrUserAlreadyExists) {
				continue
			}
			logf("警告: 创建用户 %s 失败: %v", input.Username, err)
		}
	}
}

func seedProducts(c *provider.Container, logf func(string, ...interface{})) {
	products := []service.RegisterArrivalInput{
		{Model: "iPhone13", Category: constants.CategorySmartphone, Quantity: 10, SellingPrice: decimal.NewFromFloat(599.90), Details: "128GB, blue"},
		{Model: "GalaxyS22", Category: constants.CategorySmartphone, Quantity: 8, SellingPrice: decimal.NewFromFloat(549.00), Details: "256GB, black"},
		{Model: "ThinkPadX1", Category: constants.CategoryLaptop, Quantity: 5, SellingPrice: decimal.NewFromFloat(1299.00), Details: "i7, 16GB RAM"},
		{Model: "MacBookAir", Category: constants.CategoryLaptop, Quantity: 6, SellingPrice: decimal.NewFromFloat(1149.00), Details: "M2, 8GB RAM"},
		{Model: "DW60A", Category: constants.CategoryAppliance, Quantity: 3, SellingPrice: decimal.NewFromFloat(399.50), Details: "dishwasher, 60cm"},
	}
	for _, input := range products {
		if _, err := c.ProductService.RegisterArrival(input); err != nil {
			if errors.Is(err, service.ErrProductAlreadyExists) {
				continue
			}
			logf("警告: 登记商品 %s 失败: %v", input.Model, err)
		}
	}
}

func seedReviews(c *provider.Container, logf func(string, ...interface{})) {
	reviews := []service.AddReviewInput{
		{Model: "iPhone13", Username: "alice", Score: 5, Comment: "Great phone, battery lasts all day"},
		{Model: "iPhone13", Username: "bob", Score: 4, Comment: "Solid but pricey"},
		{Model: "ThinkPadX1", Username: "alice", Score: 5, Comment: "Best keyboard I have ever used"},
	}
	for _, input := range reviews {
		if _, err := c.ReviewService.Add(input); err != nil {
			if errors.Is(err, service.ErrReviewExists) {
				continue
			}
			logf("警告: 创建评价 %s/%s 失败: %v", input.Model, input.Username, err)
		}
	}
}
