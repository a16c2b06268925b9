package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

type IReviewAPI interface {
	// List 查詢商品評論分頁
	// 已登入時後端一併回傳該用戶是否已評論與其內容
	List(ctx context.Context, productID string, sort constants.ReviewSortEnum, page, limit int) (*model.ReviewPage, error)
	// Create 建立評論
	//
	// 錯誤:
	//   - errs.UnauthenticatedCode: 未登入
	//   - errs.BadRequestCode: 重複評論等業務錯誤 (後端message原樣帶出)
	Create(ctx context.Context, productID string, draft model.ReviewDraft) (*model.Review, error)
	// Update 更新自己的評論
	Update(ctx context.Context, reviewID string, draft model.ReviewDraft) (*model.Review, error)
	// Delete 刪除自己的評論
	Delete(ctx context.Context, reviewID string) error
	// VoteHelpful 評論按讚
	// 回傳server端的最新計數, client端以此為準不自行遞增
	VoteHelpful(ctx context.Context, reviewID string) (int, error)
}

type ReviewAPI struct {
	client *Client
}

func NewReviewAPI(client *Client) IReviewAPI {
	if client == nil {
		panic("review api initialization failed: client cannot be nil")
	}
	return &ReviewAPI{client: client}
}

type reviewPageResponse struct {
	Success bool `json:"success"`
	model.ReviewPage
}

type reviewResponse struct {
	Success bool         `json:"success"`
	Data    model.Review `json:"data"`
}

type helpfulResponse struct {
	Success bool `json:"success"`
	Data    struct {
		HelpfulCount int `json:"helpfulCount"`
	} `json:"data"`
}

func (a *ReviewAPI) List(ctx context.Context, productID string, sort constants.ReviewSortEnum, page, limit int) (*model.ReviewPage, error) {
	query := url.Values{}
	query.Set("sort", string(sort))
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var resp reviewPageResponse
	if err := a.client.do(ctx, http.MethodGet, "/reviews/"+url.PathEscape(productID), query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.ReviewPage, nil
}

func (a *ReviewAPI) Create(ctx context.Context, productID string, draft model.ReviewDraft) (*model.Review, error) {
	var resp reviewResponse
	if err := a.client.do(ctx, http.MethodPost, "/reviews/"+url.PathEscape(productID), nil, draft, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (a *ReviewAPI) Update(ctx context.Context, reviewID string, draft model.ReviewDraft) (*model.Review, error) {
	var resp reviewResponse
	if err := a.client.do(ctx, http.MethodPut, "/reviews/"+url.PathEscape(reviewID), nil, draft, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (a *ReviewAPI) Delete(ctx context.Context, reviewID string) error {
	return a.client.do(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(reviewID), nil, nil, nil)
}

func (a *ReviewAPI) VoteHelpful(ctx context.Context, reviewID string) (int, error) {
	var resp helpfulResponse
	if err := a.client.do(ctx, http.MethodPost, "/reviews/"+url.PathEscape(reviewID)+"/helpful", nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Data.HelpfulCount, nil
}
