package db

import (
	"context"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"gorm.io/gorm"
)

// StatusFilter 訂單狀態過濾條件
// Status為nil時不過濾
type StatusFilter struct {
	Status *uint
}

// UnpaidFilter 未付款訂單的過濾條件
func UnpaidFilter() StatusFilter {
	status := model.OrderStatusUnpaid
	return StatusFilter{Status: &status}
}

// 訂單建立後只有status會變動，OrderItems不會再變動
type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrderTx 在交易內建立訂單連同項目
// 由結帳流程呼叫，跟購物車刪除共用同一個交易
func (s *OrderRepo) CreateOrderTx(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

// Create - 建立訂單
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

// Read - 根據ID查詢訂單
func (s *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").First(&order, "order_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 根據客戶ID查詢訂單
func (s *OrderRepo) GetOrdersByCustomerID(ctx context.Context, customerID int) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").Where("customer_id = ?", customerID).Find(&orders).Error
	return orders, err
}

// Read - 根據狀態過濾條件查詢訂單
func (s *OrderRepo) ListOrders(ctx context.Context, filter StatusFilter) ([]model.Order, error) {
	var orders []model.Order
	query := s.db.WithContext(ctx).Preload("OrderItems")
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	err := query.Find(&orders).Error
	return orders, err
}

// Update - 更新訂單狀態
func (s *OrderRepo) UpdateOrderStatus(ctx context.Context, id uint, status uint) error {
	return s.db.WithContext(ctx).Model(&model.Order{}).Where("order_id = ?", id).Update("status", status).Error
}

// Delete - 硬刪除訂單
func (s *OrderRepo) HardDeleteOrder(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Unscoped().Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Unscoped().Where("order_id = ?", id).Delete(&model.Order{}).Error
}

// 取得訂單項目
func (s *OrderRepo) GetOrderItems(ctx context.Context, orderID uint) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).Order("product_id").Find(&items).Error
	return items, err
}

// 分頁查詢訂單
func (s *OrderRepo) GetOrdersPaginated(ctx context.Context, page, pageSize int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	offset := (page - 1) * pageSize

	// 計算總數
	s.db.WithContext(ctx).Model(&model.Order{}).Count(&total)

	// 分頁查詢
	err := s.db.WithContext(ctx).Preload("OrderItems").Offset(offset).Limit(pageSize).Find(&orders).Error

	return orders, total, err
}
