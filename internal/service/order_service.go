package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"github.com/RoyceAzure/lab/checkout/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOrderNotExist = errors.New("order is not exist")
)

type IOrderService interface {
	GetOrder(ctx context.Context, orderID uint) (*model.Order, error)
	GetOrdersByCustomerID(ctx context.Context, customerID int) ([]model.Order, error)
	ListOrders(ctx context.Context, filter db.StatusFilter) ([]model.Order, error)
	CalculateOrderAmount(orderItems ...model.OrderItem) decimal.Decimal
}

// 訂單建立後是append-only，這裡只有查詢
// 訂單的建立只能經由結帳引擎
type OrderService struct {
	orderRepo db.IOrderRepository
}

func NewOrderService(orderRepo db.IOrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

func (o *OrderService) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotExist
		}
		return nil, err
	}
	return order, nil
}

func (o *OrderService) GetOrdersByCustomerID(ctx context.Context, customerID int) ([]model.Order, error) {
	return o.orderRepo.GetOrdersByCustomerID(ctx, customerID)
}

// ListOrders 根據狀態過濾條件查詢
// 取代以前用manager物件包裝的unpaid/by-status查詢
func (o *OrderService) ListOrders(ctx context.Context, filter db.StatusFilter) ([]model.Order, error) {
	return o.orderRepo.ListOrders(ctx, filter)
}

/*
計算訂單總金額
訂單項目帶的是凍結價格，這裡不會再查目錄
*/
func (o *OrderService) CalculateOrderAmount(orderItems ...model.OrderItem) decimal.Decimal {
	amount := decimal.NewFromInt(0)
	for _, orderItem := range orderItems {
		amount = amount.Add(orderItem.UnitPrice.Mul(decimal.NewFromInt(int64(orderItem.Quantity))))
	}
	return amount
}

var _ IOrderService = (*OrderService)(nil)
