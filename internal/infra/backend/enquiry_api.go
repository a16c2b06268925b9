package backend

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/model"
)

type IEnquiryAPI interface {
	// Submit 送出詢價單
	// 詢價單所有權轉移給後端, client端不保留
	//
	// 錯誤:
	//   - errs.UnauthenticatedCode: token無效
	//   - errs.NetworkErrorCode: 連線失敗
	Submit(ctx context.Context, enquiry model.EnquiryRequest) (*model.EnquiryConfirmation, error)
	// ListMine 查詢自己的詢價單紀錄
	ListMine(ctx context.Context) ([]model.EnquiryRecord, error)
}

type EnquiryAPI struct {
	client *Client
}

func NewEnquiryAPI(client *Client) IEnquiryAPI {
	if client == nil {
		panic("enquiry api initialization failed: client cannot be nil")
	}
	return &EnquiryAPI{client: client}
}

type enquiryConfirmationResponse struct {
	Success bool                      `json:"success"`
	Data    model.EnquiryConfirmation `json:"data"`
}

type enquiryListResponse struct {
	Success bool                  `json:"success"`
	Data    []model.EnquiryRecord `json:"data"`
}

func (a *EnquiryAPI) Submit(ctx context.Context, enquiry model.EnquiryRequest) (*model.EnquiryConfirmation, error) {
	var resp enquiryConfirmationResponse
	if err := a.client.do(ctx, http.MethodPost, "/enquiries", nil, enquiry, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (a *EnquiryAPI) ListMine(ctx context.Context) ([]model.EnquiryRecord, error) {
	var resp enquiryListResponse
	if err := a.client.do(ctx, http.MethodGet, "/enquiries/my", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
