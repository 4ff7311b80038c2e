package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Category      string
	Model         string
	OnlyAvailable bool
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Role    string
	Keyword string
}

// CartListFilter 查询购物车列表的过滤条件
type CartListFilter struct {
	Customer string
	Paid     *bool
}
