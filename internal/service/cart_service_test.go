package service

import (
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CartServiceTestSuite struct {
	suite.Suite
	cart ICartService
}

func (s *CartServiceTestSuite) SetupTest() {
	s.cart = NewCartService()
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}

func tmtBar() model.Product {
	return model.Product{
		ID:       "s1",
		Name:     "TMT Bar - Grade 550D",
		Category: "steel",
		Price:    decimal.NewFromInt(65000),
		Unit:     "Ton",
		InStock:  true,
	}
}

func msPipe() model.Product {
	return model.Product{
		ID:       "s2",
		Name:     "MS Square Pipes",
		Category: "steel",
		Price:    decimal.NewFromInt(58),
		Unit:     "Kg",
		InStock:  true,
	}
}

func (s *CartServiceTestSuite) TestAddSameProductMergesQuantity() {
	s.cart.AddToCart(tmtBar(), 2)
	s.cart.AddToCart(tmtBar(), 3)

	items := s.cart.Items()
	require.Len(s.T(), items, 1, "同一商品應該合併為單一項目")
	require.Equal(s.T(), 5, items[0].Quantity)
}

func (s *CartServiceTestSuite) TestAddOpensCart() {
	require.False(s.T(), s.cart.IsOpen())
	s.cart.AddToCart(tmtBar(), 1)
	require.True(s.T(), s.cart.IsOpen(), "加入商品應該開啟側邊欄")
}

func (s *CartServiceTestSuite) TestInsertionOrderPreserved() {
	s.cart.AddToCart(tmtBar(), 1)
	s.cart.AddToCart(msPipe(), 1)
	//累加數量不影響插入順序
	s.cart.AddToCart(tmtBar(), 1)

	items := s.cart.Items()
	require.Len(s.T(), items, 2)
	require.Equal(s.T(), "s1", items[0].ProductID)
	require.Equal(s.T(), "s2", items[1].ProductID)
}

func (s *CartServiceTestSuite) TestUpdateQuantityZeroIsIgnored() {
	s.cart.AddToCart(tmtBar(), 3)

	s.cart.UpdateQuantity("s1", 0)

	items := s.cart.Items()
	require.Equal(s.T(), 3, items[0].Quantity, "quantity < 1 應該被忽略而不是clamp")
}

func (s *CartServiceTestSuite) TestUpdateQuantitySetsExactValue() {
	s.cart.AddToCart(tmtBar(), 3)

	s.cart.UpdateQuantity("s1", 7)

	require.Equal(s.T(), 7, s.cart.Items()[0].Quantity)
}

func (s *CartServiceTestSuite) TestDecrementFloorsAtOne() {
	s.cart.AddToCart(tmtBar(), 2)

	s.cart.DecrementQuantity("s1")
	require.Equal(s.T(), 1, s.cart.Items()[0].Quantity)

	//已經是1就維持1
	s.cart.DecrementQuantity("s1")
	require.Equal(s.T(), 1, s.cart.Items()[0].Quantity)
}

func (s *CartServiceTestSuite) TestRemoveNonExistentIsNoop() {
	s.cart.AddToCart(tmtBar(), 1)

	s.cart.RemoveFromCart("nonexistent")

	require.Equal(s.T(), 1, s.cart.Len())
}

func (s *CartServiceTestSuite) TestRemoveFromCart() {
	s.cart.AddToCart(tmtBar(), 1)
	s.cart.AddToCart(msPipe(), 1)

	s.cart.RemoveFromCart("s1")

	items := s.cart.Items()
	require.Len(s.T(), items, 1)
	require.Equal(s.T(), "s2", items[0].ProductID)
}

func (s *CartServiceTestSuite) TestTotalRecomputedOnRead() {
	a := tmtBar()
	a.Price = decimal.NewFromInt(100)
	b := msPipe()
	b.Price = decimal.NewFromInt(50)

	s.cart.AddToCart(a, 2)
	s.cart.AddToCart(b, 3)

	require.True(s.T(), s.cart.Total().Equal(decimal.NewFromInt(350)),
		"total應為350, 實際為%s", s.cart.Total())

	s.cart.UpdateQuantity("s1", 1)
	require.True(s.T(), s.cart.Total().Equal(decimal.NewFromInt(250)))
}

func (s *CartServiceTestSuite) TestToggleIndependentOfContents() {
	s.cart.Toggle()
	require.True(s.T(), s.cart.IsOpen())
	s.cart.Toggle()
	require.False(s.T(), s.cart.IsOpen())
	require.Equal(s.T(), 0, s.cart.Len())
}

func (s *CartServiceTestSuite) TestClear() {
	s.cart.AddToCart(tmtBar(), 2)
	s.cart.Clear()

	require.Equal(s.T(), 0, s.cart.Len())
	require.True(s.T(), s.cart.Total().IsZero())
}
