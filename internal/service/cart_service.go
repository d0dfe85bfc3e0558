package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"github.com/RoyceAzure/lab/checkout/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/checkout/internal/pkg/util"
	"gorm.io/gorm"
)

var (
	// ErrInvalidQuantity 數量必須是正整數
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

type ICartService interface {
	CreateCart(ctx context.Context) (*model.Cart, error)
	GetCart(ctx context.Context, cartID string) (*model.Cart, error)
	AddItem(ctx context.Context, cartID, productID string, quantity int) error
	UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID string) error
	AbandonCart(ctx context.Context, cartID string) error
}

// 購物車階段的讀寫
// 結帳之外沒有任何路徑會連同訂單刪除購物車，那是結帳引擎獨佔的操作
type CartService struct {
	cartRepo    db.ICartRepository
	productRepo db.IProductRepository
}

func NewCartService(cartRepo db.ICartRepository, productRepo db.IProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// CreateCart 建立空購物車
// ID為128-bit隨機token，建立時產生，不可猜測
func (c *CartService) CreateCart(ctx context.Context) (*model.Cart, error) {
	cart := &model.Cart{CartID: util.NewCartID()}
	if err := c.cartRepo.CreateCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (c *CartService) GetCart(ctx context.Context, cartID string) (*model.Cart, error) {
	cart, err := c.cartRepo.GetCartByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart, nil
}

// AddItem 加入商品
// 同一商品重複加入時數量相加，不會產生重複列
func (c *CartService) AddItem(ctx context.Context, cartID, productID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if _, err := c.cartRepo.GetCartByID(ctx, cartID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartNotFound
		}
		return err
	}

	// 商品必須存在於目錄上
	if _, err := c.productRepo.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return err
	}

	return c.cartRepo.AddCartItem(ctx, &model.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// UpdateItemQuantity 覆寫商品數量
func (c *CartService) UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return c.cartRepo.UpdateCartItemQuantity(ctx, cartID, productID, quantity)
}

// RemoveItem 從購物車移除商品
func (c *CartService) RemoveItem(ctx context.Context, cartID, productID string) error {
	return c.cartRepo.RemoveCartItem(ctx, cartID, productID)
}

// AbandonCart 放棄購物車
// 這是結帳之外唯一的購物車刪除路徑，不會產生訂單
func (c *CartService) AbandonCart(ctx context.Context, cartID string) error {
	return c.cartRepo.HardDeleteCart(ctx, cartID)
}

var _ ICartService = (*CartService)(nil)
