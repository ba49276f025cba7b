package repository

import (
	"context"

	"pharmacy/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	//本人の注文のみ、新しい順
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)

	//全件。管理画面用で、サーバー側では絞り込みもページングもしない。
	ListAll(ctx context.Context) ([]model.Order, error)

	Create(ctx context.Context, order model.Order) (int64, error)

	//ステータスは任意の文字列を無条件で上書きする
	UpdateStatus(ctx context.Context, orderID int64, status string) error

	Delete(ctx context.Context, orderID int64) error
}
