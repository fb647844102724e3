package mysql

import (
	"context"

	"manhour-tracker/internal/domain/manhour"
	"manhour-tracker/internal/domain/stakeholder"

	"gorm.io/gorm"
)

type StakeholderRepository struct{ db *gorm.DB }

func NewStakeholderRepository(db *gorm.DB) *StakeholderRepository {
	return &StakeholderRepository{db: db}
}

func (r *StakeholderRepository) List(ctx context.Context) ([]stakeholder.Stakeholder, error) {
	var out []stakeholder.Stakeholder
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *StakeholderRepository) GetByID(ctx context.Context, id uint64) (*stakeholder.Stakeholder, error) {
	var out stakeholder.Stakeholder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, stakeholder.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *StakeholderRepository) GetByName(ctx context.Context, name string) (*stakeholder.Stakeholder, error) {
	var out stakeholder.Stakeholder
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, translate(err, stakeholder.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *StakeholderRepository) Create(ctx context.Context, s *stakeholder.Stakeholder) error {
	return translate(r.db.WithContext(ctx).Create(s).Error, nil, stakeholder.ErrDuplicate)
}

func (r *StakeholderRepository) Update(ctx context.Context, s *stakeholder.Stakeholder) error {
	res := r.db.WithContext(ctx).Model(&stakeholder.Stakeholder{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{"name": s.Name, "role": s.Role})
	if res.Error != nil {
		return translate(res.Error, nil, stakeholder.ErrDuplicate)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	_, err := r.GetByID(ctx, s.ID)
	return err
}

func (r *StakeholderRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stakeholder_id = ?", id).Delete(&manhour.Entry{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&stakeholder.Stakeholder{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return stakeholder.ErrNotFound
		}
		return nil
	})
}
