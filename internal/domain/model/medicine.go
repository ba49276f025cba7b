package model

import "time"

// カタログの商品（医薬品）。ダッシュボードからのみ作成・編集される。
// manufacturing <= expiry のチェックは行わない（入力はフロント任せ）。
type Medicine struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name string `gorm:"type:varchar(255);not null" json:"name"`

	//製造元
	Company string `gorm:"type:varchar(255);not null" json:"company"`

	//成分（有効成分名）
	Salt string `gorm:"type:varchar(255);not null" json:"salt"`

	Manufacturing time.Time `gorm:"not null" json:"manufacturing"`
	Expiry        time.Time `gorm:"not null" json:"expiry"`

	Price float64 `gorm:"not null" json:"price"`

	//在庫数。注文確定では減らない。
	Stock int64 `gorm:"not null" json:"stock"`

	//画像（URLまたはdata URI）
	Image string `gorm:"type:text;not null" json:"image"`

	Category string `gorm:"type:varchar(255)" json:"category"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
