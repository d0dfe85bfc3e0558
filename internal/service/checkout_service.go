package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	evt_model "github.com/RoyceAzure/lab/checkout/internal/domain/model/event"
	"github.com/RoyceAzure/lab/checkout/internal/infra/producer"
	"github.com/RoyceAzure/lab/checkout/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/checkout/internal/pkg/util"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrCartNotFound 購物車不存在，或已被前一次結帳消耗掉
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartEmpty 購物車沒有任何項目
	ErrCartEmpty = errors.New("cart is empty")
	// ErrCustomerNotFound 客戶不存在
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound 購物車內的商品已不在目錄上
	ErrProductNotFound = errors.New("product not found")
	// ErrTransactionConflict 底層回報commit衝突，整個操作可由呼叫端重試
	ErrTransactionConflict = errors.New("transaction conflict")
	// ErrStoreUnavailable 底層基礎設施故障
	ErrStoreUnavailable = errors.New("store unavailable")
)

// TxManager 交易邊界
type TxManager interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CustomerResolver 客戶查詢，外部協作者
type CustomerResolver interface {
	Resolve(ctx context.Context, customerID int) (bool, error)
}

type ICheckoutService interface {
	Checkout(ctx context.Context, cartID string, customerID int) (*model.Order, error)
}

/*
結帳引擎
把購物車一次性地轉成訂單:
  - 交易內re-validation後建立訂單，項目帶當下目錄價格快照
  - 同一個交易內刪除購物車，commit後購物車不存在，同一ID再結帳會得到ErrCartNotFound
  - 任何失敗整個rollback，不會有部分訂單或刪了一半的購物車
*/
type CheckoutService struct {
	tx            TxManager
	cartRepo      db.ICartRepository
	orderRepo     db.IOrderRepository
	productRepo   db.IProductRepository
	customers     CustomerResolver
	eventProducer producer.IOrderEventProducer // 可為nil，結帳不依賴事件發佈
}

func NewCheckoutService(
	tx TxManager,
	cartRepo db.ICartRepository,
	orderRepo db.IOrderRepository,
	productRepo db.IProductRepository,
	customers CustomerResolver,
	eventProducer producer.IOrderEventProducer,
) *CheckoutService {
	return &CheckoutService{
		tx:            tx,
		cartRepo:      cartRepo,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		customers:     customers,
		eventProducer: eventProducer,
	}
}

// Checkout 結帳，唯一入口
// 前置檢查依序回報 ErrCartNotFound / ErrCartEmpty / ErrCustomerNotFound
// 交易內的re-validation才是最終權威，擋掉先通過檢查再被併發結帳搶走的情況
func (s *CheckoutService) Checkout(ctx context.Context, cartID string, customerID int) (*model.Order, error) {
	cart, err := s.cartRepo.GetCartByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, translateStoreError(err)
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	exists, err := s.customers.Resolve(ctx, customerID)
	if err != nil {
		return nil, translateStoreError(err)
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	var order *model.Order
	err = s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		// re-validation: FOR UPDATE鎖住購物車列
		// 兩個併發結帳在這裡序列化，輸家在勝者commit後讀不到這列
		if _, err := s.cartRepo.GetCartForUpdateTx(ctx, tx, cartID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		items, err := s.cartRepo.GetCartItemsTx(ctx, tx, cartID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		// 同一個交易內讀價格並蓋上快照，之後目錄改價不影響訂單項目
		amount := decimal.NewFromInt(0)
		orderItems := make([]model.OrderItem, 0, len(items))
		for _, item := range items {
			price, err := s.productRepo.GetPriceTx(ctx, tx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
				}
				return err
			}
			orderItems = append(orderItems, model.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: price,
			})
			amount = amount.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		order = &model.Order{
			CustomerID: customerID,
			OrderItems: orderItems,
			Amount:     amount,
			OrderDate:  time.Now().UTC(),
			Status:     model.OrderStatusUnpaid,
		}
		if err := s.orderRepo.CreateOrderTx(ctx, tx, order); err != nil {
			return err
		}

		// 價格凍結與購物車刪除是同一個不可分割的單位
		return s.cartRepo.DeleteCartTx(ctx, tx, cartID)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	s.publishOrderCreated(ctx, cartID, order)
	return order, nil
}

// commit成功後才發佈，發佈失敗只記log不影響結帳結果
// producer用IsNil檢查，typed nil一樣視為未配置
func (s *CheckoutService) publishOrderCreated(ctx context.Context, cartID string, order *model.Order) {
	if util.IsNil(s.eventProducer) {
		return
	}

	items := make([]evt_model.OrderItemData, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, evt_model.OrderItemData{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	event := evt_model.NewOrderCreatedEvent(order.OrderID, order.CustomerID, cartID, order.OrderDate, items, order.Amount, order.Status)

	if err := s.eventProducer.ProduceOrderCreatedEvent(ctx, event); err != nil {
		log.Error().Err(err).
			Uint("order_id", order.OrderID).
			Str("cart_id", cartID).
			Msg("failed to publish order created event")
	}
}

// 結帳錯誤分類
// 已是分類內的錯誤直接回傳，serialization/deadlock/unique衝突歸為ErrTransactionConflict
// 其餘歸為ErrStoreUnavailable
func translateStoreError(err error) error {
	switch {
	case errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrCartEmpty),
		errors.Is(err, ErrCustomerNotFound),
		errors.Is(err, ErrProductNotFound):
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "23505":
			return fmt.Errorf("%w: %s", ErrTransactionConflict, pgErr.Code)
		}
	}

	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

var _ ICheckoutService = (*CheckoutService)(nil)
