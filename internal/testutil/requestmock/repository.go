package requestmock

import (
	"context"
	"errors"

	domain "manhour-tracker/internal/domain/request"
)

var (
	_ domain.Repository       = (*Repo)(nil)
	_ domain.UpdateRepository = (*UpdateRepo)(nil)
)

var errUnimplemented = errors.New("requestmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset reads return errUnimplemented; unset writes succeed.
type Repo struct {
	ListFn           func(ctx context.Context) ([]domain.Request, error)
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Request, error)
	GetByRequestNoFn func(ctx context.Context, requestNo string) (*domain.Request, error)
	CreateFn         func(ctx context.Context, r *domain.Request) error
	PatchFn          func(ctx context.Context, id uint64, fields map[string]any) error
	DeleteFn         func(ctx context.Context, id uint64) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Request, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByRequestNo(ctx context.Context, requestNo string) (*domain.Request, error) {
	if m.GetByRequestNoFn != nil {
		return m.GetByRequestNoFn(ctx, requestNo)
	}
	return nil, errUnimplemented
}
func (m *Repo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *Repo) Patch(ctx context.Context, id uint64, fields map[string]any) error {
	if m.PatchFn != nil {
		return m.PatchFn(ctx, id, fields)
	}
	return nil
}
func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// UpdateRepo is a function-backed mock that satisfies domain.UpdateRepository.
type UpdateRepo struct {
	GetByRequestIDFn func(ctx context.Context, requestID uint64) (*domain.Update, error)
	UpsertFn         func(ctx context.Context, u *domain.Update) error
	ListDetailsFn    func(ctx context.Context) ([]domain.Details, error)
}

func (m *UpdateRepo) GetByRequestID(ctx context.Context, requestID uint64) (*domain.Update, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, errUnimplemented
}
func (m *UpdateRepo) Upsert(ctx context.Context, u *domain.Update) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, u)
	}
	return nil
}
func (m *UpdateRepo) ListDetails(ctx context.Context) ([]domain.Details, error) {
	if m.ListDetailsFn != nil {
		return m.ListDetailsFn(ctx)
	}
	return nil, errUnimplemented
}
