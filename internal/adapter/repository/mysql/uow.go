package mysql

import (
	"context"

	"manhour-tracker/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Requests:     &RequestRepository{db: tx},
		Updates:      &UpdateRepository{db: tx},
		Stakeholders: &StakeholderRepository{db: tx},
		ManHours:     &ManHourRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinBatchTx(ctx context.Context, fn func(b uow.Batch) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormBatch{tx: tx})
	})
}

type gormBatch struct{ tx *gorm.DB }

// Row nests a gorm transaction, which gorm issues as a SAVEPOINT.
func (b *gormBatch) Row(ctx context.Context, fn func(r uow.Repos) error) error {
	return b.tx.WithContext(ctx).Transaction(func(sp *gorm.DB) error {
		return fn(reposFor(sp))
	})
}
