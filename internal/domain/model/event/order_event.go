package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemData 事件內的訂單項目，UnitPrice 為結帳當下的快照
type OrderItemData struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderCreatedEvent 結帳交易commit後發佈
type OrderCreatedEvent struct {
	BaseEvent
	OrderID    uint            `json:"order_id"`
	CustomerID int             `json:"customer_id"`
	CartID     string          `json:"cart_id"`
	OrderDate  time.Time       `json:"order_date"`
	Items      []OrderItemData `json:"items"`
	Amount     decimal.Decimal `json:"amount"`
	Status     uint            `json:"status"`
}

func (e *OrderCreatedEvent) Type() EventType {
	return OrderCreatedEventName
}

func NewOrderCreatedEvent(orderID uint, customerID int, cartID string, orderDate time.Time, items []OrderItemData, amount decimal.Decimal, status uint) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseEvent: BaseEvent{
			EventID:     uuid.NewString(),
			AggregateID: fmt.Sprintf("order-%d", orderID),
			CreatedAt:   time.Now().UTC(),
			EventType:   OrderCreatedEventName,
		},
		OrderID:    orderID,
		CustomerID: customerID,
		CartID:     cartID,
		OrderDate:  orderDate,
		Items:      items,
		Amount:     amount,
		Status:     status,
	}
}
