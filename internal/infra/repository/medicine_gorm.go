package repository

import (
	"context"
	"errors"

	"pharmacy/internal/domain/model"
	repo "pharmacy/internal/repository"

	"gorm.io/gorm"
)

type MedicineGormRepository struct {
	db *gorm.DB
}

// DI
func NewMedicineGormRepository(db *gorm.DB) *MedicineGormRepository {
	return &MedicineGormRepository{db: db}
}

// カタログ全件を返す
func (r *MedicineGormRepository) ListAll(ctx context.Context) ([]model.Medicine, error) {
	var medicines []model.Medicine

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&medicines).Error; err != nil {
		return []model.Medicine{}, err
	}

	return medicines, nil
}

// IDで医薬品を取得
func (r *MedicineGormRepository) FindByID(ctx context.Context, id int64) (model.Medicine, error) {
	var m model.Medicine
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Medicine{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Medicine{}, err
	}
	return m, nil
}

// 医薬品の作成
func (r *MedicineGormRepository) Create(ctx context.Context, m model.Medicine) (model.Medicine, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.Medicine{}, err
	}
	return m, nil
}

// 医薬品の更新
func (r *MedicineGormRepository) Update(ctx context.Context, m model.Medicine) (model.Medicine, error) {
	res := r.db.WithContext(ctx).Model(&model.Medicine{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"name":          m.Name,
		"company":       m.Company,
		"salt":          m.Salt,
		"manufacturing": m.Manufacturing,
		"expiry":        m.Expiry,
		"price":         m.Price,
		"stock":         m.Stock,
		"image":         m.Image,
		"category":      m.Category,
	})
	if res.Error != nil {
		return model.Medicine{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Medicine{}, repo.ErrNotFound
	}

	return r.FindByID(ctx, m.ID)
}

// 医薬品の削除
func (r *MedicineGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Medicine{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
