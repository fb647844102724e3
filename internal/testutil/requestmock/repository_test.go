package requestmock

import (
	"context"
	"errors"
	"testing"

	domain "manhour-tracker/internal/domain/request"
)

func TestRepo_DefaultsAndOverrides(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}
	if _, err := m.GetByRequestNo(ctx, "X"); !errors.Is(err, errUnimplemented) {
		t.Fatalf("GetByRequestNo default: %v", err)
	}
	if err := m.Create(ctx, &domain.Request{}); err != nil {
		t.Fatalf("Create default: %v", err)
	}

	m.GetByRequestNoFn = func(_ context.Context, no string) (*domain.Request, error) {
		return &domain.Request{ID: 9, RequestNo: no}, nil
	}
	r, err := m.GetByRequestNo(ctx, "CR-9")
	if err != nil || r.ID != 9 || r.RequestNo != "CR-9" {
		t.Fatalf("GetByRequestNo override: %+v %v", r, err)
	}

	u := &UpdateRepo{}
	if _, err := u.ListDetails(ctx); !errors.Is(err, errUnimplemented) {
		t.Fatalf("ListDetails default: %v", err)
	}
}
