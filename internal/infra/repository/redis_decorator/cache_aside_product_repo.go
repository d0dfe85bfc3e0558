package redis_decorator

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"github.com/RoyceAzure/lab/checkout/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/checkout/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

/*
redis 只加速目錄的讀取路徑，所以只有商品查詢會先走快取
寫入操作先進db，成功後同步快取，快取失敗不影響db結果
*/
type CacheAsideProductRepo struct {
	db.IProductRepository
	redis redis_repo.IProductRedisRepository
}

func NewCacheAsideProductRepo(dbRepo db.IProductRepository, redis redis_repo.IProductRedisRepository) db.IProductRepository {
	return &CacheAsideProductRepo{IProductRepository: dbRepo, redis: redis}
}

func (p *CacheAsideProductRepo) GetProductByID(ctx context.Context, productID string) (*model.Product, error) {
	cached, err := p.redis.GetProduct(ctx, productID)
	if err == nil {
		return &model.Product{
			ProductID:   productID,
			Code:        cached.Code,
			Name:        cached.Name,
			Price:       cached.Price,
			Category:    cached.Category,
			Description: cached.Description,
		}, nil
	}
	if !errors.Is(err, redis_repo.ErrProductCacheMiss) {
		log.Warn().Err(err).Str("product_id", productID).Msg("product cache read failed, fallback to db")
	}

	product, err := p.IProductRepository.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := p.redis.SetProduct(ctx, productID, toProductFields(product)); err != nil {
		log.Warn().Err(err).Str("product_id", productID).Msg("product cache fill failed")
	}
	return product, nil
}

func (p *CacheAsideProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	err := p.IProductRepository.CreateProduct(ctx, product)
	if err != nil {
		return err
	}
	if err := p.redis.SetProduct(ctx, product.ProductID, toProductFields(product)); err != nil {
		log.Warn().Err(err).Str("product_id", product.ProductID).Msg("product cache fill failed")
	}
	return nil
}

func (p *CacheAsideProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	err := p.IProductRepository.UpdateProduct(ctx, product)
	if err != nil {
		return err
	}

	err = p.redis.SetProduct(ctx, product.ProductID, toProductFields(product))
	if err != nil {
		go func() {
			time.Sleep(500 * time.Millisecond)
			if err := p.redis.DeleteProduct(context.Background(), product.ProductID); err != nil {
				log.Error().Err(err).Str("product_id", product.ProductID).Msg("product cache invalidate failed")
			}
		}()
		return err
	}
	return nil
}

func (p *CacheAsideProductRepo) UpdatePrice(ctx context.Context, productID string, price decimal.Decimal) error {
	err := p.IProductRepository.UpdatePrice(ctx, productID, price)
	if err != nil {
		return err
	}

	// 改價後直接讓快取失效，下次讀取時重填
	if err := p.redis.DeleteProduct(ctx, productID); err != nil {
		log.Warn().Err(err).Str("product_id", productID).Msg("product cache invalidate failed")
	}
	return nil
}

func (p *CacheAsideProductRepo) HardDeleteProduct(ctx context.Context, productID string) error {
	err := p.IProductRepository.HardDeleteProduct(ctx, productID)
	if err != nil {
		return err
	}
	if err := p.redis.DeleteProduct(ctx, productID); err != nil {
		log.Warn().Err(err).Str("product_id", productID).Msg("product cache invalidate failed")
	}
	return nil
}

func toProductFields(product *model.Product) redis_repo.ProductFields {
	return redis_repo.ProductFields{
		Code:        product.Code,
		Name:        product.Name,
		Price:       product.Price,
		Category:    product.Category,
		Description: product.Description,
	}
}
