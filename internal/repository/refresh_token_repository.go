package repository

import (
	"context"

	"pharmacy/internal/domain/model"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error

	//ハッシュで1件取得（無ければ ErrNotFound）
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)

	//失効させる（ログアウト）
	Revoke(ctx context.Context, tokenID string) error
}
