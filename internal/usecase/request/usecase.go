package request

import (
	"context"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	"manhour-tracker/internal/domain/apperr"
	domain "manhour-tracker/internal/domain/request"
	"manhour-tracker/internal/domain/sheet"
	"manhour-tracker/internal/domain/uow"
)

var ErrNoValidFields = apperr.Validation("No valid fields provided for update")

type Usecase struct {
	requests domain.Repository
	updates  domain.UpdateRepository
	uow      uow.UnitOfWork
}

func NewUsecase(requests domain.Repository, updates domain.UpdateRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{requests: requests, updates: updates, uow: tx}
}

func (u *Usecase) List(ctx context.Context) ([]domain.Request, error) {
	out, err := u.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Request{}
	}
	return out, nil
}

// requiredOrder fixes which missing field is reported first.
var requiredOrder = []struct {
	label string
	get   func(CreateInput) string
}{
	{"Request No", func(in CreateInput) string { return in.RequestNo }},
	{"Requested By", func(in CreateInput) string { return in.RequestedBy }},
	{"Department", func(in CreateInput) string { return in.Department }},
	{"Category", func(in CreateInput) string { return in.Category }},
	{"Request Date", func(in CreateInput) string { return in.RequestDate }},
	{"Request Title", func(in CreateInput) string { return in.RequestTitle }},
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Request, error) {
	for _, f := range requiredOrder {
		if strings.TrimSpace(f.get(in)) == "" {
			return nil, apperr.Validationf("%s is required", f.label)
		}
	}
	r := &domain.Request{
		RequestNo:    strings.TrimSpace(in.RequestNo),
		RequestedBy:  in.RequestedBy,
		Department:   in.Department,
		Category:     in.Category,
		RequestDate:  in.RequestDate,
		RequestTitle: in.RequestTitle,
		Description:  in.Description,
	}
	if err := u.requests.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Patch writes the patchable columns present in data; other keys are ignored.
func (u *Usecase) Patch(ctx context.Context, id uint64, data map[string]any) error {
	fields := make(map[string]any, len(data))
	for k, v := range data {
		if !slices.Contains(domain.PatchableColumns, k) {
			continue
		}
		switch s := v.(type) {
		case string:
			fields[k] = s
		case nil:
			if k != "description" {
				return apperr.Validationf("%s cannot be null", k)
			}
			fields[k] = ""
		default:
			return apperr.Validationf("%s must be a string", k)
		}
	}
	if len(fields) == 0 {
		return ErrNoValidFields
	}
	return u.requests.Patch(ctx, id, fields)
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.requests.Delete(ctx, id)
}

// Details returns the request with its update columns.
func (u *Usecase) Details(ctx context.Context, id uint64) (*DetailsDTO, error) {
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	up, err := u.updates.GetByRequestID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNoUpdate) {
		return nil, err
	}
	return toDetailsDTO(*r, up), nil
}

// UpdateDetails merges the provided update columns onto the request's update,
// inserting a fresh one (other columns null) when none exists yet.
func (u *Usecase) UpdateDetails(ctx context.Context, id uint64, data map[string]any) error {
	type change struct {
		field domain.UpdateField
		value any
	}
	var changes []change
	for k, v := range data {
		if f, ok := domain.LookupField(k); ok {
			changes = append(changes, change{f, v})
		}
	}
	if len(changes) == 0 {
		return ErrNoValidFields
	}

	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Requests.GetByID(ctx, id); err != nil {
			return err
		}
		up, err := r.Updates.GetByRequestID(ctx, id)
		switch {
		case errors.Is(err, domain.ErrNoUpdate):
			up = &domain.Update{RequestID: id}
		case err != nil:
			return err
		}
		for _, c := range changes {
			if err := assign(up, c.field, c.value); err != nil {
				return err
			}
		}
		return r.Updates.Upsert(ctx, up)
	})
}

// assign stores a JSON value into the column slot of f; blank values clear it.
func assign(up *domain.Update, f domain.UpdateField, v any) error {
	if f.Kind == domain.KindHours {
		n, err := jsonHours(v)
		if err != nil {
			return apperr.Processingf("Invalid numeric value for '%s'.", f.Column)
		}
		*up.Hours(f.Column) = n
		return nil
	}
	var s *string
	switch x := v.(type) {
	case nil:
	case string:
		if t := strings.TrimSpace(x); t != "" {
			s = &t
		}
	case float64:
		t := strconv.FormatFloat(x, 'f', -1, 64)
		s = &t
	default:
		return apperr.Validationf("%s must be a string", f.Column)
	}
	*up.Text(f.Column) = s
	return nil
}

func jsonHours(v any) (*int, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, sheet.ErrNotNumeric
		}
		n := int(math.Trunc(x))
		return &n, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return nil, nil
		}
		n, err := sheet.TextCell(x).Int()
		if err != nil {
			return nil, err
		}
		return &n, nil
	}
	return nil, sheet.ErrNotNumeric
}

// ListDetails joins every request to its update for export.
func (u *Usecase) ListDetails(ctx context.Context) ([]DetailsDTO, error) {
	ds, err := u.updates.ListDetails(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DetailsDTO, len(ds))
	for i, d := range ds {
		out[i] = *toDetailsDTO(d.Request, d.Update)
	}
	return out, nil
}
