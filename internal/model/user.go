package model

// User 當前登入用戶資料
// 與token一起持久化在credential store, 登出或驗證失敗時清除
type User struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// UpdateProfileModel 更新個人資料用
type UpdateProfileModel struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

// GoogleProfile Google OAuth登入後取得的用戶資訊
type GoogleProfile struct {
	GoogleID string `json:"googleId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
}
