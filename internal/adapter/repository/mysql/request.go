package mysql

import (
	"context"

	"manhour-tracker/internal/domain/manhour"
	"manhour-tracker/internal/domain/request"

	"gorm.io/gorm"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) List(ctx context.Context) ([]request.Request, error) {
	var out []request.Request
	err := r.db.WithContext(ctx).Order("request_date DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *RequestRepository) GetByID(ctx context.Context, id uint64) (*request.Request, error) {
	var out request.Request
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if err != nil {
		return nil, translate(err, request.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *RequestRepository) GetByRequestNo(ctx context.Context, requestNo string) (*request.Request, error) {
	var out request.Request
	err := r.db.WithContext(ctx).Where("request_no = ?", requestNo).First(&out).Error
	if err != nil {
		return nil, translate(err, request.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	return translate(r.db.WithContext(ctx).Create(req).Error, nil, request.ErrDuplicate)
}

func (r *RequestRepository) Patch(ctx context.Context, id uint64, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&request.Request{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error, nil, request.ErrDuplicate)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// MySQL reports 0 affected rows when nothing changed.
	return r.exists(ctx, id)
}

func (r *RequestRepository) exists(ctx context.Context, id uint64) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&request.Request{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return request.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", id).Delete(&manhour.Entry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("request_id = ?", id).Delete(&request.Update{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&request.Request{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return request.ErrNotFound
		}
		return nil
	})
}
