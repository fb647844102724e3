package reportmock

import (
	"context"
	"errors"

	domain "manhour-tracker/internal/domain/report"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("reportmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	BasesFn           func(ctx context.Context, f domain.Filter) ([]domain.Base, error)
	ActualByRequestFn func(ctx context.Context, requestIDs []uint64) (map[uint64]domain.RoleHours, error)
	CategoryCountsFn  func(ctx context.Context) ([]domain.CategoryCount, error)
	EstimatedTotalsFn func(ctx context.Context) (domain.RoleHours, error)
	ActualTotalsFn    func(ctx context.Context) (domain.RoleHours, error)
}

func (m *Repo) Bases(ctx context.Context, f domain.Filter) ([]domain.Base, error) {
	if m.BasesFn != nil {
		return m.BasesFn(ctx, f)
	}
	return nil, errUnimplemented
}
func (m *Repo) ActualByRequest(ctx context.Context, requestIDs []uint64) (map[uint64]domain.RoleHours, error) {
	if m.ActualByRequestFn != nil {
		return m.ActualByRequestFn(ctx, requestIDs)
	}
	return nil, errUnimplemented
}
func (m *Repo) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	if m.CategoryCountsFn != nil {
		return m.CategoryCountsFn(ctx)
	}
	return nil, errUnimplemented
}
func (m *Repo) EstimatedTotals(ctx context.Context) (domain.RoleHours, error) {
	if m.EstimatedTotalsFn != nil {
		return m.EstimatedTotalsFn(ctx)
	}
	return domain.RoleHours{}, errUnimplemented
}
func (m *Repo) ActualTotals(ctx context.Context) (domain.RoleHours, error) {
	if m.ActualTotalsFn != nil {
		return m.ActualTotalsFn(ctx)
	}
	return domain.RoleHours{}, errUnimplemented
}
