package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/model"
)

type ICatalogAPI interface {
	// ListProducts 查詢商品列表
	// category與inStock編碼為query string由後端過濾
	// filter.Search同樣送給後端, client端另外對已載入清單做即時過濾
	//
	// 錯誤:
	//   - errs.NetworkErrorCode: 連線失敗
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	// GetProduct 查詢單一商品
	//
	// 錯誤:
	//   - errs.NotFoundCode: 商品不存在
	//   - errs.NetworkErrorCode: 連線失敗
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	// ListCategories 查詢分類列表
	ListCategories(ctx context.Context) ([]model.Category, error)
}

type CatalogAPI struct {
	client *Client
}

func NewCatalogAPI(client *Client) ICatalogAPI {
	if client == nil {
		panic("catalog api initialization failed: client cannot be nil")
	}
	return &CatalogAPI{client: client}
}

type productListResponse struct {
	Success bool            `json:"success"`
	Data    []model.Product `json:"data"`
}

type productResponse struct {
	Success bool          `json:"success"`
	Data    model.Product `json:"data"`
}

type categoryListResponse struct {
	Success bool             `json:"success"`
	Data    []model.Category `json:"data"`
}

func (a *CatalogAPI) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.InStock != nil {
		query.Set("inStock", strconv.FormatBool(*filter.InStock))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var resp productListResponse
	if err := a.client.do(ctx, http.MethodGet, "/products", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *CatalogAPI) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var resp productResponse
	if err := a.client.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (a *CatalogAPI) ListCategories(ctx context.Context) ([]model.Category, error) {
	var resp categoryListResponse
	if err := a.client.do(ctx, http.MethodGet, "/products/categories/list", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
