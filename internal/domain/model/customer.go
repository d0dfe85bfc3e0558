package model

type Customer struct {
	CustomerID      int     `gorm:"primaryKey" json:"customer_id"`
	CustomerName    string  `gorm:"not null;type:varchar(50)" json:"customer_name"`
	CustomerEmail   string  `gorm:"unique;not null;type:varchar(50)" json:"customer_email"`
	CustomerPhone   string  `gorm:"unique;not null;type:varchar(50)" json:"customer_phone"`
	CustomerAddress string  `gorm:"not null;type:varchar(255)" json:"customer_address"`
	Orders          []Order `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"` // 一對多，級聯刪除
	BaseModel
}
