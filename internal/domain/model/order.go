package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusUnpaid   uint = 0 // 未付款，建立時的初始狀態
	OrderStatusPaid     uint = 1 // 已付款
	OrderStatusCanceled uint = 2 // 已取消
)

// Order 結帳後的訂單，建立後項目不再變動
type Order struct {
	OrderID    uint            `gorm:"primaryKey" json:"order_id"`
	CustomerID int             `gorm:"not null" json:"customer_id"`                                        // 外鍵，關聯到 Customer
	OrderItems []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"` // 一對多，級聯刪除
	Amount     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"amount"`
	OrderDate  time.Time       `gorm:"not null" json:"order_date"`
	Status     uint            `gorm:"not null;default:0" json:"status"`
	BaseModel
}

// OrderItem (order_id, product_id) 唯一
// UnitPrice 為結帳當下的目錄價格快照，之後目錄改價不影響此值
type OrderItem struct {
	OrderID   uint            `gorm:"primaryKey" json:"order_id"`                     // 外鍵，關聯到 Order
	ProductID string          `gorm:"primaryKey;type:varchar(255)" json:"product_id"` // 外鍵，關聯到 Product
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unit_price"`
	BaseModel
}
