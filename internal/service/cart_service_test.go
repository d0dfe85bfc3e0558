package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"github.com/RoyceAzure/lab/checkout/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// 數量驗證不需要碰到repo
func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	cartService := NewCartService(nil, nil)

	err := cartService.AddItem(context.Background(), "cart-1", "product-1", 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	err = cartService.AddItem(context.Background(), "cart-1", "product-1", -3)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	err = cartService.UpdateItemQuantity(context.Background(), "cart-1", "product-1", 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

type CartServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	unifiedDB   *db.UnifiedDBImpl
	cartService *CartService
}

// SetupSuite 在測試套件開始前執行
func (suite *CartServiceTestSuite) SetupSuite() {
	conn, err := db.GetDbConn("lab_checkout", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)

	unifiedDB := db.NewUnifiedDB(conn)
	require.NoError(suite.T(), unifiedDB.InitMigrate())

	suite.db = conn
	suite.unifiedDB = unifiedDB
	suite.cartService = NewCartService(unifiedDB, unifiedDB)
}

// SetupTest 在每個測試前執行
func (suite *CartServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM cart_items")
	suite.db.Exec("DELETE FROM carts")
	suite.db.Exec("DELETE FROM products")
}

// TearDownSuite 在測試套件結束後執行
func (suite *CartServiceTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}

func (suite *CartServiceTestSuite) createTestProduct(id string) *model.Product {
	product := &model.Product{
		ProductID:   id,
		Code:        "CODE-" + id,
		Name:        "Product " + id,
		Price:       decimal.NewFromInt(100),
		Category:    "test",
		Description: "test product",
	}
	require.NoError(suite.T(), suite.unifiedDB.CreateProduct(context.Background(), product))
	return product
}

func (suite *CartServiceTestSuite) TestCreateCart() {
	cart, err := suite.cartService.CreateCart(context.Background())

	require.NoError(suite.T(), err)
	require.Len(suite.T(), cart.CartID, 36, "uuid token")

	found, err := suite.cartService.GetCart(context.Background(), cart.CartID)
	require.NoError(suite.T(), err)
	require.True(suite.T(), found.IsEmpty())
}

func (suite *CartServiceTestSuite) TestCreateCart_UniqueIDs() {
	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		cart, err := suite.cartService.CreateCart(context.Background())
		require.NoError(suite.T(), err)
		_, dup := seen[cart.CartID]
		require.False(suite.T(), dup)
		seen[cart.CartID] = struct{}{}
	}
}

func (suite *CartServiceTestSuite) TestAddItem_MergesQuantity() {
	product := suite.createTestProduct("PROD-1")
	cart, err := suite.cartService.CreateCart(context.Background())
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.cartService.AddItem(context.Background(), cart.CartID, product.ProductID, 2))
	require.NoError(suite.T(), suite.cartService.AddItem(context.Background(), cart.CartID, product.ProductID, 3))

	found, err := suite.cartService.GetCart(context.Background(), cart.CartID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), found.CartItems, 1)
	require.Equal(suite.T(), 5, found.CartItems[0].Quantity)
}

func (suite *CartServiceTestSuite) TestAddItem_CartNotFound() {
	product := suite.createTestProduct("PROD-1")

	err := suite.cartService.AddItem(context.Background(), "no-such-cart", product.ProductID, 1)

	require.ErrorIs(suite.T(), err, ErrCartNotFound)
}

func (suite *CartServiceTestSuite) TestAddItem_ProductNotFound() {
	cart, err := suite.cartService.CreateCart(context.Background())
	require.NoError(suite.T(), err)

	err = suite.cartService.AddItem(context.Background(), cart.CartID, "no-such-product", 1)

	require.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *CartServiceTestSuite) TestRemoveItem() {
	product := suite.createTestProduct("PROD-1")
	cart, err := suite.cartService.CreateCart(context.Background())
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), suite.cartService.AddItem(context.Background(), cart.CartID, product.ProductID, 1))

	require.NoError(suite.T(), suite.cartService.RemoveItem(context.Background(), cart.CartID, product.ProductID))

	found, err := suite.cartService.GetCart(context.Background(), cart.CartID)
	require.NoError(suite.T(), err)
	require.True(suite.T(), found.IsEmpty())
}

func (suite *CartServiceTestSuite) TestAbandonCart() {
	product := suite.createTestProduct("PROD-1")
	cart, err := suite.cartService.CreateCart(context.Background())
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), suite.cartService.AddItem(context.Background(), cart.CartID, product.ProductID, 1))

	require.NoError(suite.T(), suite.cartService.AbandonCart(context.Background(), cart.CartID))

	_, err = suite.cartService.GetCart(context.Background(), cart.CartID)
	require.ErrorIs(suite.T(), err, ErrCartNotFound)
}
