package manhourmock

import (
	"context"
	"errors"

	domain "manhour-tracker/internal/domain/manhour"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("manhourmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	UpsertFn  func(ctx context.Context, e *domain.Entry) error
	ListFn    func(ctx context.Context) ([]domain.EntryView, error)
	BreakupFn func(ctx context.Context, requestID uint64, role string) ([]domain.BreakupRow, error)
}

func (m *Repo) Upsert(ctx context.Context, e *domain.Entry) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, e)
	}
	return nil
}
func (m *Repo) List(ctx context.Context) ([]domain.EntryView, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}
func (m *Repo) Breakup(ctx context.Context, requestID uint64, role string) ([]domain.BreakupRow, error) {
	if m.BreakupFn != nil {
		return m.BreakupFn(ctx, requestID, role)
	}
	return nil, errUnimplemented
}
