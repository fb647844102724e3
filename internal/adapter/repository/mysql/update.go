package mysql

import (
	"context"

	"manhour-tracker/internal/domain/request"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UpdateRepository struct{ db *gorm.DB }

func NewUpdateRepository(db *gorm.DB) *UpdateRepository { return &UpdateRepository{db: db} }

func (r *UpdateRepository) GetByRequestID(ctx context.Context, requestID uint64) (*request.Update, error) {
	var out request.Update
	err := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out).Error
	if err != nil {
		return nil, translate(err, request.ErrNoUpdate, nil)
	}
	return &out, nil
}

// Upsert replaces every mapped column, including nulls, on a request_id clash.
func (r *UpdateRepository) Upsert(ctx context.Context, u *request.Update) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "request_id"}},
		DoUpdates: clause.AssignmentColumns(append(request.UpdateColumns(), "updated_at")),
	}).Create(u).Error
}

func (r *UpdateRepository) ListDetails(ctx context.Context) ([]request.Details, error) {
	var reqs []request.Request
	if err := r.db.WithContext(ctx).Order("request_date DESC, id DESC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, nil
	}

	ids := make([]uint64, len(reqs))
	for i, rq := range reqs {
		ids[i] = rq.ID
	}
	byID := make(map[uint64]*request.Update, len(reqs))
	for _, chunk := range chunkIDs(ids, inChunk) {
		var ups []request.Update
		if err := r.db.WithContext(ctx).Where("request_id IN ?", chunk).Find(&ups).Error; err != nil {
			return nil, err
		}
		for i := range ups {
			byID[ups[i].RequestID] = &ups[i]
		}
	}

	out := make([]request.Details, len(reqs))
	for i, rq := range reqs {
		out[i] = request.Details{Request: rq, Update: byID[rq.ID]}
	}
	return out, nil
}

// inChunk keeps IN lists under SQLite's bound-parameter limit.
const inChunk = 500

func chunkIDs(ids []uint64, size int) [][]uint64 {
	var out [][]uint64
	for len(ids) > size {
		out = append(out, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		out = append(out, ids)
	}
	return out
}
