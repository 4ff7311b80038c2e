package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart 购物车表（每个用户最多一个未支付购物车，由部分唯一索引保证）
type Cart struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                                         // 主键
	Customer    string    `gorm:"not null;index;index:idx_carts_customer_unpaid,unique,where:paid = false" json:"customer"` // 归属用户名
	Paid        bool      `gorm:"not null;default:false" json:"paid"`                                           // 是否已支付
	PaymentDate string    `gorm:"type:varchar(10);default:''" json:"payment_date"`                              // 支付日期（MM-DD-YYYY）
	Total       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total"`                           // 购物车总价
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                                      // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                                                   // 更新时间

	// 关联
	Lines []CartLine `gorm:"foreignKey:CartID" json:"products"` // 购物车行项目
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// CartLine 购物车行项目（同一购物车内每个型号最多一行）
type CartLine struct {
	ID       uint   `gorm:"primarykey" json:"-"`                                                // 主键
	CartID   uint   `gorm:"not null;index;uniqueIndex:idx_cart_lines_cart_model" json:"-"`      // 所属购物车
	Model    string `gorm:"not null;uniqueIndex:idx_cart_lines_cart_model" json:"model"`        // 商品型号
	Category string `gorm:"type:varchar(20);not null" json:"category"`                          // 品类快照（加入时）
	Price    Money  `gorm:"type:decimal(20,2);not null;default:0" json:"price"`                 // 单价快照（加入时）
	Quantity int    `gorm:"not null;default:0" json:"quantity"`                                 // 数量
}

// TableName 指定表名
func (CartLine) TableName() string {
	return "cart_lines"
}

// LineTotal 行小计（单价快照 × 数量）
func (l CartLine) LineTotal() Money {
	return NewMoneyFromDecimal(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
}
