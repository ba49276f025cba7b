package model

import "time"

// 注文ステータスの既知の値。自由入力を許すため型はstringのまま、
// 遷移表も持たない（Delivered→Pendingも通る）。
const (
	OrderStatusPending        = "Pending"
	OrderStatusAccepted       = "Accepted"
	OrderStatusPacking        = "Packing"
	OrderStatusShipped        = "Shipped"
	OrderStatusOutForDelivery = "Out for Delivery"
	OrderStatusDelivered      = "Delivered"
	OrderStatusRejected       = "Rejected"
)

// 注文確定時のカートのスナップショット。
// 価格と住所は確定時点で凍結され、以後のカタログ変更の影響を受けない。
type Order struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	TotalAmount float64 `gorm:"not null" json:"totalAmount"`

	Status string `gorm:"type:varchar(50);not null;default:'Pending'" json:"status"`

	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
