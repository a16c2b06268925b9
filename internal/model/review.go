package model

import "time"

// Review 商品評論
// 每個(用戶,商品)至多一筆, 由後端強制
type Review struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	Rating       int       `json:"rating"`
	Title        *string   `json:"title,omitempty"`
	Comment      string    `json:"comment"`
	HelpfulCount int       `json:"helpfulCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ReviewDraft 建立/更新評論的輸入
type ReviewDraft struct {
	Rating  int     `json:"rating"`
	Title   *string `json:"title,omitempty"`
	Comment string  `json:"comment"`
}

// ReviewStats 評論統計
// Distribution index 0 = 1星, index 4 = 5星
type ReviewStats struct {
	Average      float64 `json:"average"`
	Distribution [5]int  `json:"distribution"`
	Total        int     `json:"total"`
}

// ReviewPage 單頁評論查詢結果
// 已登入時後端另外回傳該用戶是否已評論與其內容 (編輯表單預填用)
type ReviewPage struct {
	Reviews         []Review    `json:"reviews"`
	Stats           ReviewStats `json:"stats"`
	Page            int         `json:"page"`
	TotalPages      int         `json:"totalPages"`
	UserHasReviewed bool        `json:"userHasReviewed"`
	UserReview      *Review     `json:"userReview,omitempty"`
}
