package service

import (
	"context"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/errs"
	"github.com/RoyceAzure/lab/storefront/internal/infra/backend"
	"github.com/RoyceAzure/lab/storefront/internal/infra/credential"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/rs/zerolog"
)

// AuthStatus 認證狀態
// Unknown只在啟動時出現, Init解析完成後落到其餘兩態之一
// 之後只透過明確的login/logout切換
type AuthStatus int

const (
	AuthStatusUnknown AuthStatus = iota
	AuthStatusAuthenticated
	AuthStatusUnauthenticated
)

type IAuthService interface {
	// Init 啟動時驗證持久化的憑證
	// 有token就呼叫後端/auth/me驗證, 成功則進入Authenticated
	// 驗證失敗 (token無效/過期/網路錯誤) 時丟棄憑證並進入Unauthenticated
	Init(ctx context.Context) error
	// Login 同步寫入憑證並更新記憶體session
	Login(user model.User, token string) error
	// Logout 同步清除持久化與記憶體session
	Logout() error
	// SignIn 帳密登入
	//
	// 錯誤:
	//   - errs.UnauthenticatedCode: 帳密錯誤 (後端message原樣帶出)
	//   - errs.NetworkErrorCode: 連線失敗
	SignIn(ctx context.Context, email, password string) (*model.User, error)
	// SignUp 註冊並登入
	SignUp(ctx context.Context, name, email, phone, password string) (*model.User, error)
	// GoogleLogin Google OAuth登入
	GoogleLogin(ctx context.Context, profile model.GoogleProfile) (*model.User, error)
	// UpdateProfile 更新個人資料
	// 以server回傳值覆蓋本地用戶資料, 避免多分頁/多session間drift
	UpdateProfile(ctx context.Context, update model.UpdateProfileModel) (*model.User, error)
	// ChangePassword 修改密碼
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	Status() AuthStatus
	IsAuthenticated() bool
	// CurrentUser 當前用戶, 未登入時回傳nil
	CurrentUser() *model.User
	// WatchStore 監聽憑證檔變動
	// 其他process登入/登出時同步記憶體session
	WatchStore() error
}

type AuthService struct {
	authAPI backend.IAuthAPI
	store   credential.IStore
	logger  *zerolog.Logger

	mu     sync.RWMutex
	status AuthStatus
	user   *model.User
}

func NewAuthService(authAPI backend.IAuthAPI, store credential.IStore, logger *zerolog.Logger) IAuthService {
	if authAPI == nil {
		panic("auth service initialization failed: authAPI cannot be nil")
	}
	if store == nil {
		panic("auth service initialization failed: store cannot be nil")
	}

	return &AuthService{
		authAPI: authAPI,
		store:   store,
		logger:  logger,
		status:  AuthStatusUnknown,
	}
}

func (a *AuthService) Init(ctx context.Context) error {
	cred, err := a.store.Load()
	if err != nil || cred == nil {
		a.setSession(AuthStatusUnauthenticated, nil)
		return nil
	}

	//以儲存的token呼叫who am i驗證
	user, err := a.authAPI.Me(ctx)
	if err != nil {
		if a.logger != nil {
			a.logger.Warn().Err(err).Msg("stored credential validation failed, clearing")
		}
		//驗證失敗一律丟棄憑證
		if clearErr := a.store.Clear(); clearErr != nil {
			return clearErr
		}
		a.setSession(AuthStatusUnauthenticated, nil)
		return nil
	}

	a.setSession(AuthStatusAuthenticated, user)
	return nil
}

func (a *AuthService) Login(user model.User, token string) error {
	if err := a.store.Save(token, user); err != nil {
		return errs.New(errs.InternalErrorCode, err.Error())
	}
	a.setSession(AuthStatusAuthenticated, &user)
	return nil
}

func (a *AuthService) Logout() error {
	if err := a.store.Clear(); err != nil {
		return errs.New(errs.InternalErrorCode, err.Error())
	}
	a.setSession(AuthStatusUnauthenticated, nil)
	return nil
}

func (a *AuthService) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	user, token, err := a.authAPI.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.Login(*user, token); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *AuthService) SignUp(ctx context.Context, name, email, phone, password string) (*model.User, error) {
	user, token, err := a.authAPI.SignUp(ctx, name, email, phone, password)
	if err != nil {
		return nil, err
	}

	if err := a.Login(*user, token); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *AuthService) GoogleLogin(ctx context.Context, profile model.GoogleProfile) (*model.User, error) {
	user, token, err := a.authAPI.GoogleLogin(ctx, profile)
	if err != nil {
		return nil, err
	}

	if err := a.Login(*user, token); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *AuthService) UpdateProfile(ctx context.Context, update model.UpdateProfileModel) (*model.User, error) {
	if !a.IsAuthenticated() {
		return nil, errs.New(errs.UnauthenticatedCode, "")
	}

	user, err := a.authAPI.UpdateProfile(ctx, update)
	if err != nil {
		return nil, err
	}

	//以server回傳值為準, 同步回persisted store
	token := a.store.Token()
	if token != "" {
		if err := a.store.Save(token, *user); err != nil {
			return nil, errs.New(errs.InternalErrorCode, err.Error())
		}
	}
	a.setSession(AuthStatusAuthenticated, user)
	return user, nil
}

func (a *AuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if !a.IsAuthenticated() {
		return errs.New(errs.UnauthenticatedCode, "")
	}
	return a.authAPI.ChangePassword(ctx, currentPassword, newPassword)
}

func (a *AuthService) Status() AuthStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

func (a *AuthService) IsAuthenticated() bool {
	return a.Status() == AuthStatusAuthenticated
}

func (a *AuthService) CurrentUser() *model.User {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.user == nil {
		return nil
	}
	user := *a.user
	return &user
}

func (a *AuthService) WatchStore() error {
	return a.store.Watch(func(cred *credential.Credential) {
		if cred == nil {
			a.setSession(AuthStatusUnauthenticated, nil)
			return
		}
		user := cred.User
		a.setSession(AuthStatusAuthenticated, &user)
	})
}

func (a *AuthService) setSession(status AuthStatus, user *model.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = status
	a.user = user
}
