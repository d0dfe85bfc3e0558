package db

import (
	"context"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 目錄對結帳流程而言是唯讀的
// 結帳時的價格讀取必須走Tx結尾的方法，確保快照的是同一個交易內讀到的價格
type ProductDBRepo struct {
	db *DbDao
}

func NewProductDBRepo(db *DbDao) *ProductDBRepo {
	return &ProductDBRepo{db: db}
}

// Create - 建立商品
func (s *ProductDBRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品
func (s *ProductDBRepo) GetProductByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, "product_id = ?", productID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 根據代碼查詢商品
func (s *ProductDBRepo) GetProductByCode(ctx context.Context, code string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 查詢所有商品
func (s *ProductDBRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Find(&products).Error
	return products, err
}

// Read - 根據分類查詢商品
func (s *ProductDBRepo) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Where("category = ?", category).Find(&products).Error
	return products, err
}

// Read - 查詢目前單價
func (s *ProductDBRepo) GetPrice(ctx context.Context, productID string) (decimal.Decimal, error) {
	product, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return product.Price, nil
}

// GetPriceTx 在交易內讀取目前單價
// 結帳用這個值當作凍結價格，之後目錄改價不影響已建立的訂單項目
func (s *ProductDBRepo) GetPriceTx(ctx context.Context, tx *gorm.DB, productID string) (decimal.Decimal, error) {
	var product model.Product
	err := tx.WithContext(ctx).Select("price").First(&product, "product_id = ?", productID).Error
	if err != nil {
		return decimal.Decimal{}, err
	}
	return product.Price, nil
}

// Update - 更新商品
func (s *ProductDBRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// Update - 更新單價
func (s *ProductDBRepo) UpdatePrice(ctx context.Context, productID string, price decimal.Decimal) error {
	return s.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", productID).
		Update("price", price).Error
}

// Delete - 硬刪除商品
func (s *ProductDBRepo) HardDeleteProduct(ctx context.Context, productID string) error {
	return s.db.WithContext(ctx).Unscoped().Where("product_id = ?", productID).Delete(&model.Product{}).Error
}
