package backend

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/model"
)

type IAuthAPI interface {
	// SignIn 帳密登入
	//
	// 錯誤:
	//   - errs.UnauthenticatedCode: 帳密錯誤 (後端message原樣帶出)
	//   - errs.NetworkErrorCode: 連線失敗
	SignIn(ctx context.Context, email, password string) (*model.User, string, error)
	// SignUp 註冊並登入
	SignUp(ctx context.Context, name, email, phone, password string) (*model.User, string, error)
	// GoogleLogin Google OAuth登入
	GoogleLogin(ctx context.Context, profile model.GoogleProfile) (*model.User, string, error)
	// Me 以bearer token驗證session並取得當前用戶
	//
	// 錯誤:
	//   - errs.UnauthenticatedCode: token無效或過期
	//   - errs.NetworkErrorCode: 連線失敗
	Me(ctx context.Context) (*model.User, error)
	// UpdateProfile 更新個人資料
	// 回傳後端的最新用戶資料 (以server值為準)
	UpdateProfile(ctx context.Context, update model.UpdateProfileModel) (*model.User, error)
	// ChangePassword 修改密碼
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) IAuthAPI {
	if client == nil {
		panic("auth api initialization failed: client cannot be nil")
	}
	return &AuthAPI{client: client}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// auth endpoints 回傳 {success, user, token} 而非 data 信封
type authResponse struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
	Token   string     `json:"token"`
}

type userResponse struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
}

func (a *AuthAPI) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	var resp authResponse
	err := a.client.do(ctx, http.MethodPost, "/auth/signin", nil, signInRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, "", err
	}
	return &resp.User, resp.Token, nil
}

func (a *AuthAPI) SignUp(ctx context.Context, name, email, phone, password string) (*model.User, string, error) {
	var resp authResponse
	err := a.client.do(ctx, http.MethodPost, "/auth/signup", nil, signUpRequest{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, "", err
	}
	return &resp.User, resp.Token, nil
}

func (a *AuthAPI) GoogleLogin(ctx context.Context, profile model.GoogleProfile) (*model.User, string, error) {
	var resp authResponse
	err := a.client.do(ctx, http.MethodPost, "/auth/google", nil, profile, &resp)
	if err != nil {
		return nil, "", err
	}
	return &resp.User, resp.Token, nil
}

func (a *AuthAPI) Me(ctx context.Context) (*model.User, error) {
	var resp userResponse
	if err := a.client.do(ctx, http.MethodGet, "/auth/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (a *AuthAPI) UpdateProfile(ctx context.Context, update model.UpdateProfileModel) (*model.User, error) {
	var resp userResponse
	if err := a.client.do(ctx, http.MethodPut, "/auth/update-profile", nil, update, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (a *AuthAPI) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return a.client.do(ctx, http.MethodPut, "/auth/change-password", nil, changePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}, nil)
}
