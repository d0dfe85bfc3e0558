package db

import (
	"context"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UnifiedDB 統一的資料庫介面
type UnifiedDB interface {
	// 基礎操作
	GetDB() *gorm.DB
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	InitMigrate() error

	// Cart 相關操作
	ICartRepository

	// Order 相關操作
	IOrderRepository

	// Product 相關操作
	IProductRepository

	// Customer 相關操作
	ICustomerRepository
}

// ICartRepository Cart 相關操作介面
type ICartRepository interface {
	CreateCart(ctx context.Context, cart *model.Cart) error
	GetCartByID(ctx context.Context, cartID string) (*model.Cart, error)
	AddCartItem(ctx context.Context, item *model.CartItem) error
	UpdateCartItemQuantity(ctx context.Context, cartID, productID string, quantity int) error
	RemoveCartItem(ctx context.Context, cartID, productID string) error
	CountCartItems(ctx context.Context, cartID string) (int64, error)
	HardDeleteCart(ctx context.Context, cartID string) error
	GetCartForUpdateTx(ctx context.Context, tx *gorm.DB, cartID string) (*model.Cart, error)
	GetCartItemsTx(ctx context.Context, tx *gorm.DB, cartID string) ([]model.CartItem, error)
	DeleteCartTx(ctx context.Context, tx *gorm.DB, cartID string) error
}

// IOrderRepository Order 相關操作介面
type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	CreateOrderTx(ctx context.Context, tx *gorm.DB, order *model.Order) error
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	GetOrdersByCustomerID(ctx context.Context, customerID int) ([]model.Order, error)
	ListOrders(ctx context.Context, filter StatusFilter) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status uint) error
	HardDeleteOrder(ctx context.Context, id uint) error
	GetOrderItems(ctx context.Context, orderID uint) ([]model.OrderItem, error)
	GetOrdersPaginated(ctx context.Context, page, pageSize int) ([]model.Order, int64, error)
}

// IProductRepository Product 相關操作介面
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, productID string) (*model.Product, error)
	GetProductByCode(ctx context.Context, code string) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	GetPrice(ctx context.Context, productID string) (decimal.Decimal, error)
	GetPriceTx(ctx context.Context, tx *gorm.DB, productID string) (decimal.Decimal, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	UpdatePrice(ctx context.Context, productID string, price decimal.Decimal) error
	HardDeleteProduct(ctx context.Context, productID string) error
}

// ICustomerRepository Customer 相關操作介面
type ICustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	GetCustomerByID(ctx context.Context, id int) (*model.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error)
	GetAllCustomers(ctx context.Context) ([]model.Customer, error)
	Resolve(ctx context.Context, id int) (bool, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) error
	DeleteCustomer(ctx context.Context, id int) error
}

// UnifiedDBImpl 統一資料庫實現
type UnifiedDBImpl struct {
	db    *gorm.DB
	dbDao *DbDao
	*CartRepo
	*OrderRepo
	*ProductDBRepo
	*CustomerRepo
}

// NewUnifiedDB 創建新的統一資料庫實例
func NewUnifiedDB(db *gorm.DB) *UnifiedDBImpl {
	dbDao := NewDbDao(db)
	return &UnifiedDBImpl{
		db:            db,
		dbDao:         dbDao,
		CartRepo:      NewCartRepo(dbDao),
		OrderRepo:     NewOrderRepo(dbDao),
		ProductDBRepo: NewProductDBRepo(dbDao),
		CustomerRepo:  NewCustomerRepo(dbDao),
	}
}

func (u *UnifiedDBImpl) InitMigrate() error {
	return u.dbDao.InitMigrate()
}

// GetDB 獲取資料庫連接
func (u *UnifiedDBImpl) GetDB() *gorm.DB {
	return u.db
}

// Transaction 在單一交易內執行fn
// fn回傳錯誤或panic時保證rollback，否則commit
func (u *UnifiedDBImpl) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}

var (
	_ UnifiedDB           = (*UnifiedDBImpl)(nil)
	_ ICartRepository     = (*UnifiedDBImpl)(nil)
	_ IOrderRepository    = (*UnifiedDBImpl)(nil)
	_ IProductRepository  = (*UnifiedDBImpl)(nil)
	_ ICustomerRepository = (*UnifiedDBImpl)(nil)
)
