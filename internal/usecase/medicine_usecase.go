package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pharmacy/internal/domain/model"
	repo "pharmacy/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// MedicineUsecase はカタログ（医薬品）の業務ロジックです。
// 一覧は誰でも見られる。作成・更新・削除は管理者のみ。
type MedicineUsecase struct {
	medicineRepo repo.MedicineRepository
}

// DI
func NewMedicineUsecase(medicineRepo repo.MedicineRepository) *MedicineUsecase {
	return &MedicineUsecase{medicineRepo: medicineRepo}
}

// POST /medicines・PUT /medicines/:id の入力DTO
type MedicineInput struct {
	Name          string
	Company       string
	Salt          string
	Manufacturing time.Time
	Expiry        time.Time
	Price         float64
	Stock         int64
	Image         string
	Category      string
}

// カタログ全件。検索・ソート・ページングはフロントで行う。
func (u *MedicineUsecase) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	medicines, err := u.medicineRepo.ListAll(ctx)
	if err != nil {
		return []model.Medicine{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return medicines, nil
}

// 医薬品の登録。category以外は必須。
// manufacturing <= expiry のチェックはしない（元の仕様どおり）。
func (u *MedicineUsecase) CreateMedicine(ctx context.Context, in MedicineInput) (model.Medicine, error) {
	if err := validateMedicineInput(in); err != nil {
		return model.Medicine{}, err
	}

	m, err := u.medicineRepo.Create(ctx, model.Medicine{
		Name:          strings.TrimSpace(in.Name),
		Company:       strings.TrimSpace(in.Company),
		Salt:          strings.TrimSpace(in.Salt),
		Manufacturing: in.Manufacturing,
		Expiry:        in.Expiry,
		Price:         in.Price,
		Stock:         in.Stock,
		Image:         in.Image,
		Category:      strings.TrimSpace(in.Category),
	})
	if err != nil {
		return model.Medicine{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return m, nil
}

// 医薬品の更新（全項目置き換え）
func (u *MedicineUsecase) UpdateMedicine(ctx context.Context, medicineID int64, in MedicineInput) (model.Medicine, error) {
	if medicineID <= 0 {
		return model.Medicine{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateMedicineInput(in); err != nil {
		return model.Medicine{}, err
	}

	m, err := u.medicineRepo.Update(ctx, model.Medicine{
		ID:            medicineID,
		Name:          strings.TrimSpace(in.Name),
		Company:       strings.TrimSpace(in.Company),
		Salt:          strings.TrimSpace(in.Salt),
		Manufacturing: in.Manufacturing,
		Expiry:        in.Expiry,
		Price:         in.Price,
		Stock:         in.Stock,
		Image:         in.Image,
		Category:      strings.TrimSpace(in.Category),
	})
	if err == repo.ErrNotFound {
		return model.Medicine{}, NewHTTPError(http.StatusNotFound, "medicine not found")
	}
	if err != nil {
		return model.Medicine{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return m, nil
}

// 医薬品の削除
func (u *MedicineUsecase) DeleteMedicine(ctx context.Context, medicineID int64) error {
	if medicineID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.medicineRepo.Delete(ctx, medicineID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "medicine not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// category以外の必須チェック。数値・日付の中身は検証しない
// （負の価格や製造日>有効期限も素通しする。ダッシュボード側の責務）。
func validateMedicineInput(in MedicineInput) error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Company) == "" ||
		strings.TrimSpace(in.Salt) == "" ||
		in.Manufacturing.IsZero() ||
		in.Expiry.IsZero() ||
		in.Image == "" {
		return NewHTTPError(http.StatusBadRequest, "all fields are required")
	}
	return nil
}
