package repository

import (
	"context"
	"errors"

	"pharmacy/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 医薬品カタログの永続化（保存・取得）だけを約束。
type MedicineRepository interface {
	//カタログ全件。サーバー側では絞り込みもページングもしない
	//（一覧の検索・ソートはフロントの責務）。
	ListAll(ctx context.Context) ([]model.Medicine, error)

	FindByID(ctx context.Context, id int64) (model.Medicine, error)

	Create(ctx context.Context, m model.Medicine) (model.Medicine, error)
	Update(ctx context.Context, m model.Medicine) (model.Medicine, error)
	Delete(ctx context.Context, id int64) error
}
