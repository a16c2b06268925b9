package service

import (
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
)

type ICartService interface {
	// AddToCart 加入商品
	// 已存在的商品累加數量而不重複建項, 並開啟側邊欄
	// quantity < 1 時以1計
	AddToCart(product model.Product, quantity int)
	// RemoveFromCart 移除商品
	// 商品不存在為no-op, 不視為錯誤
	RemoveFromCart(productID string)
	// UpdateQuantity 設定數量
	// quantity < 1 視為無效輸入直接忽略, 不clamp也不回錯
	UpdateQuantity(productID string, quantity int)
	// IncrementQuantity 數量+1
	IncrementQuantity(productID string)
	// DecrementQuantity 數量-1, 底線為1
	// floor-at-1是產品行為, 收在狀態操作內而不是依賴每個呼叫端pre-clamp
	DecrementQuantity(productID string)
	// Items 取得購物車項目快照 (插入順序)
	Items() []model.CartItem
	Len() int
	// Total 總計 = Σ 單價*數量
	// 每次讀取重算, 不快取
	Total() decimal.Decimal
	// Clear 清空購物車
	Clear()
	// IsOpen / SetOpen / Toggle 側邊欄開關, 與內容無關
	IsOpen() bool
	SetOpen(open bool)
	Toggle()
}

// CartService 購物車狀態機
// 純記憶體狀態, session起始時為空, 不持久化
// 所有操作皆為同步變更, 不會失敗
type CartService struct {
	mu    sync.RWMutex
	items []model.CartItem
	open  bool
}

func NewCartService() ICartService {
	return &CartService{}
}

func (s *CartService) AddToCart(product model.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			s.open = true
			return
		}
	}

	s.items = append(s.items, model.NewCartItem(product, quantity))
	s.open = true
}

func (s *CartService) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *CartService) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

func (s *CartService) IncrementQuantity(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity++
			return
		}
	}
}

func (s *CartService) DecrementQuantity(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			if s.items[i].Quantity > 1 {
				s.items[i].Quantity--
			}
			return
		}
	}
}

func (s *CartService) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]model.CartItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *CartService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *CartService) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func (s *CartService) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

func (s *CartService) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = open
}

func (s *CartService) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
}
