package mysql

import (
	"context"
	"errors"
	"testing"

	"manhour-tracker/internal/domain/request"
	"manhour-tracker/internal/domain/uow"
)

func newReq(no string) *request.Request {
	return &request.Request{
		RequestNo: no, RequestedBy: "r", Department: "d", Category: "c",
		RequestDate: "2024-01-01", RequestTitle: "t",
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	sentinel := errors.New("boom")

	err := NewGormUoW(db).WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Requests.Create(ctx, newReq("ROLL")); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}
	if _, err := NewRequestRepository(db).GetByRequestNo(ctx, "ROLL"); !errors.Is(err, request.ErrNotFound) {
		t.Fatalf("expected no row after rollback, got %v", err)
	}
}

func TestGormUoW_BatchRowFailureKeepsSiblings(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	var rowErrs []error
	err := NewGormUoW(db).WithinBatchTx(ctx, func(b uow.Batch) error {
		for _, no := range []string{"R1", "R2", "R1", "R3"} {
			no := no
			rowErrs = append(rowErrs, b.Row(ctx, func(r uow.Repos) error {
				return r.Requests.Create(ctx, newReq(no))
			}))
		}
		// a row whose second write fails must leave nothing behind
		rowErrs = append(rowErrs, b.Row(ctx, func(r uow.Repos) error {
			if err := r.Requests.Create(ctx, newReq("HALF")); err != nil {
				return err
			}
			return r.Requests.Create(ctx, newReq("R2"))
		}))
		return nil
	})
	if err != nil {
		t.Fatalf("WithinBatchTx: %v", err)
	}

	if rowErrs[0] != nil || rowErrs[1] != nil || rowErrs[3] != nil {
		t.Fatalf("unexpected row errors: %v", rowErrs)
	}
	if !errors.Is(rowErrs[2], request.ErrDuplicate) || !errors.Is(rowErrs[4], request.ErrDuplicate) {
		t.Fatalf("expected duplicates, got %v / %v", rowErrs[2], rowErrs[4])
	}

	if n := countRows(t, db, &request.Request{}, ""); n != 3 {
		t.Fatalf("committed requests = %d, want 3", n)
	}
	if _, err := NewRequestRepository(db).GetByRequestNo(ctx, "HALF"); !errors.Is(err, request.ErrNotFound) {
		t.Fatalf("partial row survived: %v", err)
	}
}
