package service

import (
	"context"
	"strings"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/infra/backend"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type ICatalogService interface {
	// LoadProducts 以指定條件向後端載入商品清單
	// category/inStock由後端過濾
	// 同條件重複呼叫發出相同請求 (冪等), 較舊的in-flight回應若晚到會被丟棄,
	// 不會覆蓋較新結果
	LoadProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	// Bootstrap 並行載入商品與分類
	Bootstrap(ctx context.Context) error
	// Products 當前已載入的商品清單快照
	Products() []model.Product
	// Categories 當前已載入的分類清單快照
	Categories() []model.Category
	// Search 對已載入清單做即時過濾, 不重新fetch
	// 大小寫不敏感的substring比對, 範圍為name與description
	Search(term string) []model.Product
	// LoadProduct 載入單一商品
	//
	// 錯誤:
	//   - errs.NotFoundCode: 商品不存在 (UI顯示not found狀態而非一般錯誤)
	//   - errs.NetworkErrorCode: 連線失敗
	LoadProduct(ctx context.Context, id string) (*model.Product, error)
	// LoadCategories 載入分類清單
	LoadCategories(ctx context.Context) ([]model.Category, error)
}

// CatalogService 商品目錄
// 持有最近一次成功載入的商品集, Search對該集合運算
type CatalogService struct {
	catalogAPI backend.ICatalogAPI
	logger     *zerolog.Logger

	mu         sync.RWMutex
	products   []model.Product
	categories []model.Category
	generation uint64 //遞增的載入世代, 用來丟棄過期回應
}

func NewCatalogService(catalogAPI backend.ICatalogAPI, logger *zerolog.Logger) ICatalogService {
	if catalogAPI == nil {
		panic("catalog service initialization failed: catalogAPI cannot be nil")
	}
	return &CatalogService{
		catalogAPI: catalogAPI,
		logger:     logger,
	}
}

func (s *CatalogService) LoadProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	products, err := s.catalogAPI.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		//已有較新的請求發出, 本回應過期, 不覆蓋狀態
		if s.logger != nil {
			s.logger.Debug().Uint64("generation", gen).Msg("stale product load dropped")
		}
		return products, nil
	}
	s.products = products
	return products, nil
}

func (s *CatalogService) Bootstrap(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := s.LoadProducts(gctx, model.ProductFilter{})
		return err
	})
	g.Go(func() error {
		_, err := s.LoadCategories(gctx)
		return err
	})

	return g.Wait()
}

func (s *CatalogService) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]model.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot
}

func (s *CatalogService) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]model.Category, len(s.categories))
	copy(snapshot, s.categories)
	return snapshot
}

func (s *CatalogService) Search(term string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if term == "" {
		snapshot := make([]model.Product, len(s.products))
		copy(snapshot, s.products)
		return snapshot
	}

	needle := strings.ToLower(term)
	matched := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (s *CatalogService) LoadProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.catalogAPI.GetProduct(ctx, id)
}

func (s *CatalogService) LoadCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.catalogAPI.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return categories, nil
}
