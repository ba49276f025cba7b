package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"pharmacy/internal/repository"
)

// LogoutUsecaseは提示されたrefresh tokenを失効させる。
// トークンが見つからなくても成功扱い（何度呼んでも同じ結果）。
type LogoutUsecase struct {
	rtRepo repository.RefreshTokenRepository
}

func NewLogoutUsecase(rtRepo repository.RefreshTokenRepository) *LogoutUsecase {
	return &LogoutUsecase{rtRepo: rtRepo}
}

func (u *LogoutUsecase) Execute(ctx context.Context, plainRefreshToken string) error {
	if plainRefreshToken == "" {
		return nil
	}

	hash := sha256.Sum256([]byte(plainRefreshToken))
	tokenHash := hex.EncodeToString(hash[:])

	token, err := u.rtRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := u.rtRepo.Revoke(ctx, token.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			//失効済み
			return nil
		}
		return err
	}
	return nil
}
