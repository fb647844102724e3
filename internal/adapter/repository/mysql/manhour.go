package mysql

import (
	"context"

	"manhour-tracker/internal/domain/manhour"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ManHourRepository struct{ db *gorm.DB }

func NewManHourRepository(db *gorm.DB) *ManHourRepository { return &ManHourRepository{db: db} }

func (r *ManHourRepository) Upsert(ctx context.Context, e *manhour.Entry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "request_id"}, {Name: "stakeholder_id"}, {Name: "task_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"actual_man_hours", "updated_at"}),
	}).Create(e).Error
}

func (r *ManHourRepository) List(ctx context.Context) ([]manhour.EntryView, error) {
	var out []manhour.EntryView
	err := r.db.WithContext(ctx).
		Table("actual_man_hours AS amh").
		Select("r.request_no, amh.task_date, s.name AS stakeholder_name, amh.actual_man_hours").
		Joins("JOIN requests r ON amh.request_id = r.id").
		Joins("JOIN stakeholders s ON amh.stakeholder_id = s.id").
		Order("amh.task_date DESC, r.request_no ASC, s.name ASC").
		Scan(&out).Error
	return out, err
}

func (r *ManHourRepository) Breakup(ctx context.Context, requestID uint64, role string) ([]manhour.BreakupRow, error) {
	q := r.db.WithContext(ctx).
		Table("actual_man_hours AS amh").
		Select("s.name AS stakeholder_name, s.role AS stakeholder_role, amh.actual_man_hours, amh.task_date").
		Joins("JOIN stakeholders s ON amh.stakeholder_id = s.id").
		Where("amh.request_id = ?", requestID)
	if role != "" {
		q = q.Where("s.role = ?", role)
	}
	var out []manhour.BreakupRow
	err := q.Order("amh.task_date ASC, s.name ASC").Scan(&out).Error
	return out, err
}
