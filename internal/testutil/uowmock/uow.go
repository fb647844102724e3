package uowmock

import (
	"context"
	"errors"

	"manhour-tracker/internal/domain/uow"
)

// Ensure compile-time compliance
var (
	_ uow.UnitOfWork = (*UoW)(nil)
	_ uow.Batch      = (*Batch)(nil)
)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinBatchTxFn func(ctx context.Context, fn func(b uow.Batch) error) error
}

// Passthrough runs every tx and batch row directly against repos.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinBatchTxFn: func(_ context.Context, fn func(uow.Batch) error) error {
			return fn(&Batch{RowFn: func(_ context.Context, row func(uow.Repos) error) error {
				return row(repos)
			}})
		},
	}
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinBatchTx(fn func(context.Context, func(uow.Batch) error) error) *UoW {
	m.WithinBatchTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinBatchTx(ctx context.Context, fn func(b uow.Batch) error) error {
	if m.WithinBatchTxFn != nil {
		return m.WithinBatchTxFn(ctx, fn)
	}
	return errUnimplemented
}

// Batch is a function-backed uow.Batch.
type Batch struct {
	RowFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func (b *Batch) Row(ctx context.Context, fn func(r uow.Repos) error) error {
	if b.RowFn != nil {
		return b.RowFn(ctx, fn)
	}
	return errUnimplemented
}
