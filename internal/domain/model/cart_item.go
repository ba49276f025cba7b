package model

import "time"

// カートの明細。同一商品は1行に数量マージする。
// 価格はここに持たない（注文確定時にカタログの現在価格を読む）。
// 数量は符号付きの差分を積むだけで下限ガードは無い。
type CartItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID     int64     `gorm:"not null;index" json:"cart_id"`
	MedicineID int64     `gorm:"not null;index" json:"medicine_id"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
