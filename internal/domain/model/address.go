package model

// 配送先住所。カートと注文に埋め込む（独立テーブルにしない）。
// 全項目フリーテキストで、必須チェックはフロント側の責務。
type Address struct {
	//番地・通り
	Street string `gorm:"type:varchar(255)" json:"street"`

	//市区町村
	City string `gorm:"type:varchar(255)" json:"city"`

	//州
	State string `gorm:"type:varchar(255)" json:"state"`

	//郵便番号
	Pincode string `gorm:"type:varchar(20)" json:"pincode"`

	//近くの目印
	NearbyLocation string `gorm:"type:varchar(255)" json:"nearbyLocation"`
}
