package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/errs"
	mock_backend "github.com/RoyceAzure/lab/storefront/internal/infra/backend/mock"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	catalogAPI *mock_backend.MockICatalogAPI
	catalog    ICatalogService
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalogAPI = mock_backend.NewMockICatalogAPI(s.ctrl)
	s.catalog = NewCatalogService(s.catalogAPI, nil)
}

func (s *CatalogServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) TestLoadProductsPassesFilterToBackend() {
	steel := []model.Product{tmtBar(), msPipe()}
	s.catalogAPI.EXPECT().
		ListProducts(gomock.Any(), model.ProductFilter{Category: "steel"}).
		Return(steel, nil)

	products, err := s.catalog.LoadProducts(context.Background(), model.ProductFilter{Category: "steel"})

	require.NoError(s.T(), err)
	require.Len(s.T(), products, 2)
	for _, p := range products {
		require.Equal(s.T(), "steel", p.Category)
	}
	require.Len(s.T(), s.catalog.Products(), 2)
}

// 空結果是正常狀態 (no products found), 不是錯誤
func (s *CatalogServiceTestSuite) TestLoadProductsEmptyResultIsNotAnError() {
	s.catalogAPI.EXPECT().ListProducts(gomock.Any(), gomock.Any()).Return([]model.Product{}, nil)

	products, err := s.catalog.LoadProducts(context.Background(), model.ProductFilter{Category: "plumbing"})

	require.NoError(s.T(), err)
	require.Empty(s.T(), products)
}

func (s *CatalogServiceTestSuite) TestSearchIsCaseInsensitiveOverNameAndDescription() {
	bar := tmtBar()
	bar.Description = "High-strength TMT bars suitable for heavy construction."
	pipe := msPipe()
	pipe.Description = "Mild Steel square pipes for structural fabrication."
	s.catalogAPI.EXPECT().ListProducts(gomock.Any(), gomock.Any()).Return([]model.Product{bar, pipe}, nil)
	_, err := s.catalog.LoadProducts(context.Background(), model.ProductFilter{})
	require.NoError(s.T(), err)

	//name比對, 大小寫不敏感
	require.Len(s.T(), s.catalog.Search("tmt"), 1)
	//description比對
	require.Len(s.T(), s.catalog.Search("FABRICATION"), 1)
	//無比對結果
	require.Empty(s.T(), s.catalog.Search("cement"))
	//空字串回傳全部, 不重新fetch
	require.Len(s.T(), s.catalog.Search(""), 2)
}

// 較舊的in-flight回應晚到時不可覆蓋較新結果
func (s *CatalogServiceTestSuite) TestStaleResponseDoesNotOverwriteNewerResult() {
	oldResult := []model.Product{tmtBar()}
	newResult := []model.Product{msPipe()}

	entered := make(chan struct{})
	release := make(chan struct{})

	first := s.catalogAPI.EXPECT().
		ListProducts(gomock.Any(), model.ProductFilter{Category: "steel"}).
		DoAndReturn(func(_ context.Context, _ model.ProductFilter) ([]model.Product, error) {
			close(entered)
			<-release
			return oldResult, nil
		})
	s.catalogAPI.EXPECT().
		ListProducts(gomock.Any(), model.ProductFilter{Category: "cement"}).
		Return(newResult, nil).
		After(first)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.catalog.LoadProducts(context.Background(), model.ProductFilter{Category: "steel"})
	}()

	//等第一個請求真的發出後, 再發出第二個請求
	<-entered
	_, err := s.catalog.LoadProducts(context.Background(), model.ProductFilter{Category: "cement"})
	require.NoError(s.T(), err)

	//放行過期回應
	close(release)
	<-done

	products := s.catalog.Products()
	require.Len(s.T(), products, 1)
	require.Equal(s.T(), "s2", products[0].ID, "過期回應不該覆蓋較新結果")
}

func (s *CatalogServiceTestSuite) TestLoadProductNotFoundIsDistinguishable() {
	s.catalogAPI.EXPECT().GetProduct(gomock.Any(), "nonexistent").
		Return(nil, errs.New(errs.NotFoundCode, ""))

	_, err := s.catalog.LoadProduct(context.Background(), "nonexistent")

	require.Error(s.T(), err)
	//not found要能跟一般錯誤區分, UI顯示專屬狀態
	require.True(s.T(), errs.IsCode(err, errs.NotFoundCode))
}

func (s *CatalogServiceTestSuite) TestBootstrapLoadsProductsAndCategories() {
	s.catalogAPI.EXPECT().ListProducts(gomock.Any(), model.ProductFilter{}).
		Return([]model.Product{tmtBar()}, nil)
	s.catalogAPI.EXPECT().ListCategories(gomock.Any()).
		Return([]model.Category{{ID: "steel", Name: "Steel & TMT"}}, nil)

	err := s.catalog.Bootstrap(context.Background())

	require.NoError(s.T(), err)
	require.Len(s.T(), s.catalog.Products(), 1)
	require.Len(s.T(), s.catalog.Categories(), 1)
}
