package model

import "time"

// 1ユーザーにつきカートは1つ。最初の追加時に作られ、
// 注文確定で丸ごと削除される。
type Cart struct {
	ID      int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  int64   `gorm:"not null;uniqueIndex" json:"user_id"`
	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
