package models

import "time"

// User 用户表
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                              // 主键
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`              // 登录名
	Name         string    `gorm:"not null" json:"name"`                              // 名
	Surname      string    `gorm:"not null" json:"surname"`                           // 姓
	Role         string    `gorm:"type:varchar(20);not null;index" json:"role"`       // 角色（customer/manager/admin）
	PasswordHash string    `gorm:"not null" json:"-"`                                 // 密码哈希（不返回给前端）
	Address      string    `gorm:"default:''" json:"address"`                         // 地址
	Birthdate    string    `gorm:"type:varchar(10);default:''" json:"birthdate"`      // 出生日期（YYYY-MM-DD）
	LastLoginAt  *time.Time `json:"last_login_at"`                                    // 最后登录时间
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                           // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                        // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
