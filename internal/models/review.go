package models

import "time"

// Review 商品评价表（每个用户对每个型号最多一条评价）
type Review struct {
	ID        uint      `gorm:"primarykey" json:"-"`                                            // 主键
	Model     string    `gorm:"not null;uniqueIndex:idx_reviews_model_user" json:"model"`       // 商品型号
	Username  string    `gorm:"not null;uniqueIndex:idx_reviews_model_user" json:"user"`        // 评价用户
	Score     int       `gorm:"not null" json:"score"`                                          // 评分（1-5）
	Date      string    `gorm:"type:varchar(10);not null" json:"date"`                          // 评价日期（YYYY-MM-DD）
	Comment   string    `gorm:"default:''" json:"comment"`                                      // 评价内容
	CreatedAt time.Time `gorm:"index" json:"-"`                                                 // 创建时间
	UpdatedAt time.Time `json:"-"`                                                              // 更新时间
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
