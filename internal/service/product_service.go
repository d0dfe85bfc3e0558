package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"github.com/RoyceAzure/lab/checkout/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 目錄讀取服務
// 讀取路徑可以接cache-aside裝飾過的repo
// 結帳的凍結價格不走這裡，一律由結帳交易內讀取
type ProductService struct {
	productRepo db.IProductRepository
}

func NewProductService(productRepo db.IProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// 查詢商品
// 錯誤:
//   - ErrProductNotFound: 商品不存在
//   - err: 其他錯誤
func (s *ProductService) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProductByCode(ctx context.Context, code string) (*model.Product, error) {
	product, err := s.productRepo.GetProductByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return s.productRepo.GetProductsByCategory(ctx, category)
}

// 查詢目前單價
// 錯誤:
//   - ErrProductNotFound: 商品不存在
//   - err: 其他錯誤
func (s *ProductService) GetPrice(ctx context.Context, productID string) (decimal.Decimal, error) {
	price, err := s.productRepo.GetPrice(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Decimal{}, ErrProductNotFound
		}
		return decimal.Decimal{}, err
	}
	return price, nil
}
