package model

import "github.com/shopspring/decimal"

// Product 商品資料
// 由後端擁有, client端視為不可變
type Product struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Category        string            `json:"category"`
	Price           decimal.Decimal   `json:"price"`
	Unit            string            `json:"unit"`
	Image           string            `json:"image"`
	Description     string            `json:"description"`
	LongDescription string            `json:"longDescription,omitempty"`
	Specs           map[string]string `json:"specs,omitempty"`
	InStock         bool              `json:"inStock"`
}

// ProductFilter 商品查詢條件
// Category與InStock由後端過濾, Search由client端對已載入清單過濾
type ProductFilter struct {
	Category string
	InStock  *bool
	Search   string
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}
