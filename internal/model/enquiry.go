package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnquiryCustomer 詢價單客戶身分快照
type EnquiryCustomer struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// EnquiryItem 詢價單商品項目
type EnquiryItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Unit      string          `json:"unit"`
	Image     string          `json:"image"`
}

// EnquiryItemFromCartItem 由購物車項目轉換
func EnquiryItemFromCartItem(item CartItem) EnquiryItem {
	return EnquiryItem{
		ProductID: item.ProductID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Unit:      item.Unit,
		Image:     item.Image,
	}
}

// EnquiryRequest 送往後端的詢價單
// Items與Message擇一: 購物車詢價帶Items, 聯絡表單帶Message
type EnquiryRequest struct {
	Customer EnquiryCustomer `json:"customer"`
	Items    []EnquiryItem   `json:"items,omitempty"`
	Message  string          `json:"message,omitempty"`
	Source   string          `json:"source"`
}

// EnquiryRecord 後端回傳的詢價單紀錄 (我的詢價單列表)
type EnquiryRecord struct {
	ID        string        `json:"id"`
	Items     []EnquiryItem `json:"items,omitempty"`
	Message   string        `json:"message,omitempty"`
	Source    string        `json:"source"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// EnquiryConfirmation 詢價單送出成功後的確認資訊
type EnquiryConfirmation struct {
	EnquiryID string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
