package dashboard

import (
	"context"

	"manhour-tracker/internal/domain/report"
	"manhour-tracker/internal/domain/stakeholder"
)

type Usecase struct{ repo report.Repository }

func NewUsecase(r report.Repository) *Usecase { return &Usecase{repo: r} }

type Data struct {
	RequestsByCategory []report.CategoryCount  `json:"requests_by_category"`
	ManHoursComparison []report.RoleComparison `json:"man_hours_comparison"`
}

func (u *Usecase) Data(ctx context.Context) (*Data, error) {
	cats, err := u.RequestsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	cmp, err := u.ManHoursComparison(ctx)
	if err != nil {
		return nil, err
	}
	return &Data{RequestsByCategory: cats, ManHoursComparison: cmp}, nil
}

func (u *Usecase) RequestsByCategory(ctx context.Context) ([]report.CategoryCount, error) {
	out, err := u.repo.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []report.CategoryCount{}
	}
	return out, nil
}

// ManHoursComparison returns one row per fixed role, in role order.
func (u *Usecase) ManHoursComparison(ctx context.Context) ([]report.RoleComparison, error) {
	est, err := u.repo.EstimatedTotals(ctx)
	if err != nil {
		return nil, err
	}
	act, err := u.repo.ActualTotals(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]report.RoleComparison, 0, len(stakeholder.Roles))
	for _, role := range stakeholder.Roles {
		out = append(out, report.RoleComparison{Role: role, Estimated: est.Get(role), Actual: act.Get(role)})
	}
	return out, nil
}
