package models

import "time"

// Product 商品表（以 model 型号作为业务唯一标识）
type Product struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                       // 主键
	Model        string    `gorm:"uniqueIndex;not null" json:"model"`                          // 型号（业务唯一标识）
	Category     string    `gorm:"type:varchar(20);not null;index" json:"category"`            // 品类（Smartphone/Laptop/Appliance）
	SellingPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"selling_price"` // 当前售价
	ArrivalDate  string    `gorm:"type:varchar(10);not null" json:"arrival_date"`              // 到货日期（YYYY-MM-DD）
	Quantity     int       `gorm:"not null;default:0" json:"quantity"`                         // 库存数量
	Details      string    `gorm:"default:''" json:"details"`                                  // 商品描述
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                                 // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
