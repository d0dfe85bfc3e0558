package redis_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// IProductRedisRepository 定義 Redis 商品快取操作的介面
type IProductRedisRepository interface {
	// SetProduct 寫入商品快取
	SetProduct(ctx context.Context, productID string, fields ProductFields) error

	// GetProduct 讀取商品快取
	GetProduct(ctx context.Context, productID string) (*ProductFields, error)

	// DeleteProduct 刪除商品快取
	DeleteProduct(ctx context.Context, productID string) error
}

type ProductRepoError error

var ErrProductCacheMiss ProductRepoError = errors.New("product cache miss")

// ProductFields 快取內的商品欄位
type ProductFields struct {
	Code        string
	Name        string
	Price       decimal.Decimal
	Category    string
	Description string
}

/*	redis 只當作目錄讀取路徑的快取
	結帳的凍結價格一律從db交易內讀取，不走這裡
	結構:
	商品ID: {
		code: ...,
		name: ...,
		price: ...,
		category: ...,
	}*/

type ProductRedisRepo struct {
	productCache *redis.Client
	ttl          time.Duration
}

func NewProductRedisRepo(productCache *redis.Client, ttl time.Duration) *ProductRedisRepo {
	return &ProductRedisRepo{productCache: productCache, ttl: ttl}
}

func generateProductKey(productID string) string {
	return fmt.Sprintf("product:%s:info", productID)
}

func (s *ProductRedisRepo) SetProduct(ctx context.Context, productID string, fields ProductFields) error {
	redisKey := generateProductKey(productID)
	err := s.productCache.HSet(ctx, redisKey,
		"code", fields.Code,
		"name", fields.Name,
		"price", fields.Price.String(),
		"category", fields.Category,
		"description", fields.Description,
	).Err()
	if err != nil {
		return err
	}
	if s.ttl > 0 {
		return s.productCache.Expire(ctx, redisKey, s.ttl).Err()
	}
	return nil
}

// 讀取商品快取
// 錯誤:
//   - ErrProductCacheMiss: 快取不存在
//   - err: 其他錯誤
func (s *ProductRedisRepo) GetProduct(ctx context.Context, productID string) (*ProductFields, error) {
	redisKey := generateProductKey(productID)
	values, err := s.productCache.HGetAll(ctx, redisKey).Result()
	if err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, ErrProductCacheMiss
	}

	price, err := decimal.NewFromString(values["price"])
	if err != nil {
		return nil, fmt.Errorf("invalid cached price for product %s: %w", productID, err)
	}

	return &ProductFields{
		Code:        values["code"],
		Name:        values["name"],
		Price:       price,
		Category:    values["category"],
		Description: values["description"],
	}, nil
}

func (s *ProductRedisRepo) DeleteProduct(ctx context.Context, productID string) error {
	redisKey := generateProductKey(productID)
	return s.productCache.Del(ctx, redisKey).Err()
}

var _ IProductRedisRepository = (*ProductRedisRepo)(nil)
