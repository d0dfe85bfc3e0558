package db

import (
	"context"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 購物車階段只有CartRepo會寫入
// 結帳時購物車的讀取與刪除必須走Tx結尾的方法，跟訂單寫入共用同一個交易
type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

// Create - 創建購物車
func (s *CartRepo) CreateCart(ctx context.Context, cart *model.Cart) error {
	return s.db.WithContext(ctx).Create(cart).Error
}

// Read - 根據ID查詢購物車，包含項目
func (s *CartRepo) GetCartByID(ctx context.Context, cartID string) (*model.Cart, error) {
	var cart model.Cart
	err := s.db.WithContext(ctx).Preload("CartItems").First(&cart, "cart_id = ?", cartID).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Create/Update - 加入商品
// (cart_id, product_id) 唯一，重複加入時數量相加
func (s *CartRepo) AddCartItem(ctx context.Context, item *model.CartItem) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", item.Quantity),
		}),
	}).Create(item).Error
}

// Update - 覆寫商品數量
func (s *CartRepo) UpdateCartItemQuantity(ctx context.Context, cartID, productID string, quantity int) error {
	return s.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity).Error
}

// Delete - 從購物車移除指定商品
func (s *CartRepo) RemoveCartItem(ctx context.Context, cartID, productID string) error {
	return s.db.WithContext(ctx).Unscoped().
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItem{}).Error
}

// Read - 購物車項目數
func (s *CartRepo) CountCartItems(ctx context.Context, cartID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_id = ?", cartID).Count(&count).Error
	return count, err
}

// GetCartForUpdateTx 在交易內鎖定並讀取購物車列
// SELECT ... FOR UPDATE，兩個併發結帳會在這裡序列化
// 勝出者commit後，輸家重新讀取時已看不到這列
func (s *CartRepo) GetCartForUpdateTx(ctx context.Context, tx *gorm.DB, cartID string) (*model.Cart, error) {
	var cart model.Cart
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&cart, "cart_id = ?", cartID).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCartItemsTx 在交易內讀取購物車項目
func (s *CartRepo) GetCartItemsTx(ctx context.Context, tx *gorm.DB, cartID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := tx.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("product_id").
		Find(&items).Error
	return items, err
}

// DeleteCartTx 在交易內硬刪除購物車連同所有項目
// 購物車ID不會重複使用，之後對同一ID結帳會得到not found
func (s *CartRepo) DeleteCartTx(ctx context.Context, tx *gorm.DB, cartID string) error {
	if err := tx.WithContext(ctx).Unscoped().
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Unscoped().
		Where("cart_id = ?", cartID).
		Delete(&model.Cart{}).Error
}

// Delete - 硬刪除購物車（結帳之外的放棄購物車路徑）
func (s *CartRepo) HardDeleteCart(ctx context.Context, cartID string) error {
	return s.db.DB.Transaction(func(tx *gorm.DB) error {
		return s.DeleteCartTx(ctx, tx, cartID)
	})
}
