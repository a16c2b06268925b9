package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/errs"
	"github.com/RoyceAzure/lab/storefront/internal/infra/backend"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/rs/zerolog"
)

var (
	ErrCartEmpty          = errors.New("cart is empty")
	ErrSubmissionInFlight = errors.New("enquiry submission already in flight")
)

// SignInRedirectError 未登入時中止送出並導向登入頁
// 帶回跳意圖與提示訊息
type SignInRedirectError struct {
	RedirectPath string
	ReturnTo     string
	Message      string
}

func (e *SignInRedirectError) Error() string {
	return e.Message
}

type IEnquiryService interface {
	// SubmitCart 將購物車內容包成詢價單送往後端
	//
	// 前置檢查 (任一不過就不發出網路請求):
	//  1. 必須已登入, 否則回傳*SignInRedirectError
	//  2. 購物車不可為空, 否則回傳ErrCartEmpty (no-op)
	//
	// 成功時清空購物車並關閉側邊欄, 回傳確認資訊
	// 失敗時購物車保持原狀, 不自動重試, 由用戶重新觸發
	// 送出期間以submitting flag擋重複觸發 (advisory, 非交易性保證)
	SubmitCart(ctx context.Context, returnTo string) (*model.EnquiryConfirmation, error)
	// SubmitContactForm 聯絡表單的自由文字詢價
	// 不需登入
	//
	// 錯誤:
	//   - errs.InvalidArgumentCode: 訊息為空
	SubmitContactForm(ctx context.Context, customer model.EnquiryCustomer, message string) (*model.EnquiryConfirmation, error)
	// ListMyEnquiries 查詢自己的詢價單紀錄
	//
	// 錯誤:
	//   - errs.UnauthenticatedCode: 未登入
	ListMyEnquiries(ctx context.Context) ([]model.EnquiryRecord, error)
	// IsSubmitting 是否有送出中的詢價單 (UI停用觸發鈕用)
	IsSubmitting() bool
}

type EnquiryService struct {
	enquiryAPI  backend.IEnquiryAPI
	cartService ICartService
	authService IAuthService
	logger      *zerolog.Logger
	submitting  atomic.Bool
}

func NewEnquiryService(enquiryAPI backend.IEnquiryAPI, cartService ICartService, authService IAuthService, logger *zerolog.Logger) IEnquiryService {
	if enquiryAPI == nil {
		panic("enquiry service initialization failed: enquiryAPI cannot be nil")
	}
	if cartService == nil {
		panic("enquiry service initialization failed: cartService cannot be nil")
	}
	if authService == nil {
		panic("enquiry service initialization failed: authService cannot be nil")
	}

	return &EnquiryService{
		enquiryAPI:  enquiryAPI,
		cartService: cartService,
		authService: authService,
		logger:      logger,
	}
}

func (s *EnquiryService) SubmitCart(ctx context.Context, returnTo string) (*model.EnquiryConfirmation, error) {
	if !s.authService.IsAuthenticated() {
		s.cartService.SetOpen(false)
		return nil, &SignInRedirectError{
			RedirectPath: constants.SignInPath,
			ReturnTo:     returnTo,
			Message:      constants.SignInRedirectMessage,
		}
	}

	items := s.cartService.Items()
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	if !s.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer s.submitting.Store(false)

	user := s.authService.CurrentUser()
	if user == nil {
		return nil, errs.New(errs.UnauthenticatedCode, "")
	}

	enquiry := model.EnquiryRequest{
		Customer: model.EnquiryCustomer{
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		},
		Items:  make([]model.EnquiryItem, 0, len(items)),
		Source: string(constants.EnquirySourceCart),
	}
	for _, item := range items {
		enquiry.Items = append(enquiry.Items, model.EnquiryItemFromCartItem(item))
	}

	confirmation, err := s.enquiryAPI.Submit(ctx, enquiry)
	if err != nil {
		//失敗時購物車保持原狀
		if s.logger != nil {
			s.logger.Warn().Err(err).Msg("enquiry submission failed")
		}
		return nil, err
	}

	s.cartService.Clear()
	s.cartService.SetOpen(false)

	if s.logger != nil {
		s.logger.Info().Str("enquiry_id", confirmation.EnquiryID).Int("items", len(items)).Msg("enquiry submitted")
	}
	return confirmation, nil
}

func (s *EnquiryService) SubmitContactForm(ctx context.Context, customer model.EnquiryCustomer, message string) (*model.EnquiryConfirmation, error) {
	if message == "" {
		return nil, errs.New(errs.InvalidArgumentCode, "message cannot be empty")
	}

	return s.enquiryAPI.Submit(ctx, model.EnquiryRequest{
		Customer: customer,
		Message:  message,
		Source:   string(constants.EnquirySourceContact),
	})
}

func (s *EnquiryService) ListMyEnquiries(ctx context.Context) ([]model.EnquiryRecord, error) {
	if !s.authService.IsAuthenticated() {
		return nil, errs.New(errs.UnauthenticatedCode, "")
	}
	return s.enquiryAPI.ListMine(ctx)
}

func (s *EnquiryService) IsSubmitting() bool {
	return s.submitting.Load()
}
