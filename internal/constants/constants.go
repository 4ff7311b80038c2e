package constants

// 用户角色常量
const (
	RoleCustomer = "customer"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Roles 全部合法角色
var Roles = []string{RoleCustomer, RoleManager, RoleAdmin}

// IsValidRole 判断角色是否合法
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// 商品分类常量
const (
	CategorySmartphone = "Smartphone"
	CategoryLaptop     = "Laptop"
	CategoryAppliance  = "Appliance"
)

// Categories 全部合法商品分类
var Categories = []string{CategorySmartphone, CategoryLaptop, CategoryAppliance}

// IsValidCategory 判断商品分类是否合法
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// 商品列表分组方式常量
const (
	GroupingNone     = ""
	GroupingCategory = "category"
	GroupingModel    = "model"
)

// 日期格式常量
const (
	// DateLayout 商品到货/销售日期格式
	DateLayout = "2006-01-02"
	// PaymentDateLayout 购物车结算日期格式（月-日-年）
	PaymentDateLayout = "01-02-2006"
)

// 队列与任务常量
const (
	QueueDefault        = "default"
	TaskCheckoutReceipt = "cart:checkout_receipt"
)
