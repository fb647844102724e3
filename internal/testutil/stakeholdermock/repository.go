package stakeholdermock

import (
	"context"
	"errors"

	domain "manhour-tracker/internal/domain/stakeholder"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("stakeholdermock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListFn      func(ctx context.Context) ([]domain.Stakeholder, error)
	GetByIDFn   func(ctx context.Context, id uint64) (*domain.Stakeholder, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Stakeholder, error)
	CreateFn    func(ctx context.Context, s *domain.Stakeholder) error
	UpdateFn    func(ctx context.Context, s *domain.Stakeholder) error
	DeleteFn    func(ctx context.Context, id uint64) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Stakeholder, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Stakeholder, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Stakeholder, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, errUnimplemented
}
func (m *Repo) Create(ctx context.Context, s *domain.Stakeholder) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
func (m *Repo) Update(ctx context.Context, s *domain.Stakeholder) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, s)
	}
	return nil
}
func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
