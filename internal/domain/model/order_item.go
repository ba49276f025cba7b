package model

import "time"

type OrderItem struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64 `gorm:"not null;index" json:"order_id"`
	MedicineID int64 `gorm:"not null;index" json:"medicine_id"`
	Quantity   int64 `gorm:"not null" json:"quantity"`

	//確定時点の単価
	UnitPrice float64 `gorm:"not null" json:"price"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
