package stakeholder

import (
	"context"
	"strings"

	"manhour-tracker/internal/domain/apperr"
	domain "manhour-tracker/internal/domain/stakeholder"
)

var ErrNameRoleRequired = apperr.Validation("Name and Role are required")

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type Input struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func (in Input) normalize() (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)
	if in.Name == "" || in.Role == "" {
		return in, ErrNameRoleRequired
	}
	return in, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.Stakeholder, error) {
	out, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Stakeholder{}
	}
	return out, nil
}

func (u *Usecase) Create(ctx context.Context, in Input) (*domain.Stakeholder, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	s := &domain.Stakeholder{Name: in.Name, Role: in.Role}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in Input) error {
	in, err := in.normalize()
	if err != nil {
		return err
	}
	return u.repo.Update(ctx, &domain.Stakeholder{ID: id, Name: in.Name, Role: in.Role})
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.repo.Delete(ctx, id)
}
