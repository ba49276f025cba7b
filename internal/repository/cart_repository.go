package repository

import (
	"context"

	"pharmacy/internal/domain/model"
)

// カートと明細の永続化を約束。カートは1ユーザー1つで、
// 明細は「同一商品1行・数量加算」のルールで保存する。
type CartRepository interface {
	//ユーザーのカートを取得し、無ければ作成
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error)

	//ユーザーのカートを取得（無ければ ErrNotFound）
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)

	//住所を丸ごと置き換え
	UpdateAddress(ctx context.Context, cartID int64, addr model.Address) error

	//カートと明細を丸ごと削除（注文確定時）
	DeleteByID(ctx context.Context, cartID int64) error

	ListItems(ctx context.Context, cartID int64) ([]model.CartItem, error)

	//同一商品は数量に符号付きdeltaを加算、無ければ新規行。
	//下限は設けない（0や負数まで落ちても保存する）。
	UpsertItem(ctx context.Context, cartID int64, medicineID int64, delta int64) error

	//商品指定で明細を削除。該当が無くてもエラーにしない。
	RemoveItemByMedicine(ctx context.Context, cartID int64, medicineID int64) error
}
