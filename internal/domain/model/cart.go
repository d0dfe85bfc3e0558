package model

// Cart 結帳前的購物車
// CartID 為建立時產生的 128-bit 隨機 token，不可猜測、不會重複使用
// 結帳成功後整個購物車連同項目會被刪除
type Cart struct {
	CartID    string     `gorm:"primaryKey;type:varchar(255)" json:"cart_id"`
	CartItems []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"cart_items"` // 一對多，級聯刪除
	BaseModel
}

// CartItem (cart_id, product_id) 唯一
// 重複加入同一商品時數量相加，不會產生重複列
type CartItem struct {
	CartID    string `gorm:"primaryKey;type:varchar(255)" json:"cart_id"`    // 外鍵，關聯到 Cart
	ProductID string `gorm:"primaryKey;type:varchar(255)" json:"product_id"` // 外鍵，關聯到 Product
	Quantity  int    `gorm:"not null" json:"quantity"`
	BaseModel
}

// IsEmpty 購物車是否沒有任何項目
func (c *Cart) IsEmpty() bool {
	return len(c.CartItems) == 0
}
