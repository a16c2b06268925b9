package model

import "github.com/shopspring/decimal"

// CartItem 購物車項目: 商品快照 + 數量
// 同一商品ID在購物車內至多一筆
type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Unit      string          `json:"unit"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// NewCartItem 由商品建立購物車項目
func NewCartItem(product Product, quantity int) CartItem {
	return CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Unit:      product.Unit,
		Image:     product.Image,
		Quantity:  quantity,
	}
}

// Subtotal 單項小計 = 單價 * 數量
func (item CartItem) Subtotal() decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}
