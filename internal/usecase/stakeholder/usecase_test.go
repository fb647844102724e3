package stakeholder

import (
	"context"
	"errors"
	"testing"

	domain "manhour-tracker/internal/domain/stakeholder"
	"manhour-tracker/internal/testutil/stakeholdermock"
)

func TestUsecase_Create(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		repoErr error
		wantErr error
	}{
		{name: "happy path", in: Input{Name: "  Asha ", Role: "BA"}},
		{name: "missing role", in: Input{Name: "Asha"}, wantErr: ErrNameRoleRequired},
		{name: "blank name", in: Input{Name: "   ", Role: "BA"}, wantErr: ErrNameRoleRequired},
		{name: "duplicate name", in: Input{Name: "Asha", Role: "BA"}, repoErr: domain.ErrDuplicate, wantErr: domain.ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			repo := &stakeholdermock.Repo{
				CreateFn: func(_ context.Context, s *domain.Stakeholder) error {
					called = true
					if s.Name != "Asha" {
						t.Fatalf("name not trimmed: %q", s.Name)
					}
					s.ID = 5
					return tt.repoErr
				},
			}
			got, err := NewUsecase(repo).Create(context.Background(), tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == ErrNameRoleRequired && called {
				t.Fatalf("repo should not be called on invalid input")
			}
			if tt.wantErr == nil && (got == nil || got.ID != 5) {
				t.Fatalf("unexpected result: %+v", got)
			}
		})
	}
}

func TestUsecase_Update(t *testing.T) {
	repo := &stakeholdermock.Repo{
		UpdateFn: func(_ context.Context, s *domain.Stakeholder) error {
			if s.ID == 404 {
				return domain.ErrNotFound
			}
			if s.Name != "Ravi" || s.Role != "Developer" {
				t.Fatalf("unexpected update: %+v", s)
			}
			return nil
		},
	}
	uc := NewUsecase(repo)
	if err := uc.Update(context.Background(), 1, Input{Name: "Ravi", Role: "Developer"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := uc.Update(context.Background(), 404, Input{Name: "Ravi", Role: "Developer"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	if err := uc.Update(context.Background(), 1, Input{}); !errors.Is(err, ErrNameRoleRequired) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestUsecase_ListNeverNil(t *testing.T) {
	repo := &stakeholdermock.Repo{
		ListFn: func(context.Context) ([]domain.Stakeholder, error) { return nil, nil },
	}
	got, err := NewUsecase(repo).List(context.Background())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("List = %v, %v", got, err)
	}
}
