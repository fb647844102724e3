package http

import (
	"bytes"
	"context"
	stdhttp "net/http"
	"slices"
	"strings"
	"testing"

	domain "manhour-tracker/internal/domain/request"
	"manhour-tracker/internal/infrastructure/excel"
	"manhour-tracker/internal/usecase/ingest"
	"manhour-tracker/internal/usecase/request"
)

func TestRequests_Create(t *testing.T) {
	a := newAPI()
	a.requests.CreateFn = func(_ context.Context, r *domain.Request) error {
		if r.RequestNo != "CR-1" || r.Department != "Finance" {
			t.Fatalf("unexpected request: %+v", r)
		}
		r.ID = 11
		return nil
	}
	rec := a.doJSON(t, stdhttp.MethodPost, "/api/requests", map[string]string{
		"request_no":    "CR-1",
		"requested_by":  "Alice",
		"department":    "Finance",
		"category":      "Bug",
		"request_date":  "2024-01-10",
		"request_title": "Fix totals",
	})
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}
	got := decode[createdResponse](t, rec)
	if got.ID != 11 || got.Message != "Request added successfully" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestRequests_CreateErrors(t *testing.T) {
	full := map[string]string{
		"request_no": "CR-1", "requested_by": "Alice", "department": "Finance",
		"category": "Bug", "request_date": "2024-01-10", "request_title": "Fix totals",
	}
	without := func(k string) map[string]string {
		m := map[string]string{}
		for kk, v := range full {
			if kk != k {
				m[kk] = v
			}
		}
		return m
	}

	cases := []struct {
		name    string
		body    map[string]string
		repoErr error
		code    int
		msg     string
	}{
		{"missing department", without("department"), nil, stdhttp.StatusBadRequest, "Department is required"},
		{"missing request no", without("request_no"), nil, stdhttp.StatusBadRequest, "Request No is required"},
		{"duplicate", full, domain.ErrDuplicate, stdhttp.StatusConflict, "Request with this number already exists"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := newAPI()
			a.requests.CreateFn = func(context.Context, *domain.Request) error { return tc.repoErr }
			rec := a.doJSON(t, stdhttp.MethodPost, "/api/requests", tc.body)
			if rec.Code != tc.code {
				t.Fatalf("status = %d, want %d, body=%s", rec.Code, tc.code, rec.Body.String())
			}
			if got := decode[ErrorResponse](t, rec); got.Error != tc.msg {
				t.Fatalf("error = %q, want %q", got.Error, tc.msg)
			}
		})
	}
}

func TestRequests_Patch(t *testing.T) {
	a := newAPI()
	var fields map[string]any
	a.requests.PatchFn = func(_ context.Context, id uint64, f map[string]any) error {
		if id != 4 {
			t.Fatalf("id = %d, want 4", id)
		}
		fields = f
		return nil
	}
	rec := a.doJSON(t, stdhttp.MethodPut, "/api/requests/4", map[string]any{"category": "Enhancement", "id": 99, "bogus": "x"})
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	if len(fields) != 1 || fields["category"] != "Enhancement" {
		t.Fatalf("patched fields = %+v", fields)
	}
	if m := decode[messageResponse](t, rec); m.Message != "Request updated successfully" {
		t.Fatalf("message = %q", m.Message)
	}
}

func TestRequests_PatchErrors(t *testing.T) {
	a := newAPI()
	rec := a.doJSON(t, stdhttp.MethodPut, "/api/requests/4", map[string]any{"bogus": "x"})
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decode[ErrorResponse](t, rec); got.Error != "No valid fields provided for update" {
		t.Fatalf("error = %q", got.Error)
	}

	a.requests.PatchFn = func(context.Context, uint64, map[string]any) error { return domain.ErrNotFound }
	rec = a.doJSON(t, stdhttp.MethodPut, "/api/requests/4", map[string]any{"category": "Bug"})
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	rec = a.do(t, stdhttp.MethodPut, "/api/requests/4", strings.NewReader("[1,2"), "application/json")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("invalid json status = %d, want 400", rec.Code)
	}
}

func TestRequests_Delete(t *testing.T) {
	a := newAPI()
	a.requests.DeleteFn = func(_ context.Context, id uint64) error {
		if id == 404 {
			return domain.ErrNotFound
		}
		return nil
	}
	if rec := a.do(t, stdhttp.MethodDelete, "/api/requests/1", nil, ""); rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec := a.do(t, stdhttp.MethodDelete, "/api/requests/404", nil, ""); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRequests_Details(t *testing.T) {
	a := newAPI()
	status := "Open"
	a.requests.GetByIDFn = func(_ context.Context, id uint64) (*domain.Request, error) {
		if id != 2 {
			return nil, domain.ErrNotFound
		}
		return &domain.Request{ID: 2, RequestNo: "CR-2"}, nil
	}
	a.updates.GetByRequestIDFn = func(context.Context, uint64) (*domain.Update, error) {
		return &domain.Update{RequestID: 2, CurrentStatus: &status}, nil
	}

	rec := a.do(t, stdhttp.MethodGet, "/api/request-details/2", nil, "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decode[request.DetailsDTO](t, rec)
	if got.RequestNo != "CR-2" || got.CurrentStatus == nil || *got.CurrentStatus != "Open" {
		t.Fatalf("unexpected details: %+v", got)
	}

	rec = a.do(t, stdhttp.MethodGet, "/api/request-details/3", nil, "")
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := decode[ErrorResponse](t, rec); got.Error != "Request not found" {
		t.Fatalf("error = %q", got.Error)
	}
}

func TestRequests_UpdateDetails(t *testing.T) {
	a := newAPI()
	a.requests.GetByIDFn = func(context.Context, uint64) (*domain.Request, error) {
		return &domain.Request{ID: 2}, nil
	}
	a.updates.GetByRequestIDFn = func(context.Context, uint64) (*domain.Update, error) {
		return nil, domain.ErrNoUpdate
	}
	var saved *domain.Update
	a.updates.UpsertFn = func(_ context.Context, u *domain.Update) error {
		saved = u
		return nil
	}

	rec := a.doJSON(t, stdhttp.MethodPut, "/api/update-request/2", map[string]any{
		"current_status":         "In Progress",
		"estimated_man_hours_ba": 12,
	})
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	if m := decode[messageResponse](t, rec); m.Message != "Request details updated successfully" {
		t.Fatalf("message = %q", m.Message)
	}
	if saved == nil || saved.RequestID != 2 || *saved.CurrentStatus != "In Progress" || *saved.EstimatedManHoursBA != 12 {
		t.Fatalf("unexpected upsert: %+v", saved)
	}
	if saved.SRSSentDate != nil {
		t.Fatalf("untouched column must stay null: %+v", saved)
	}
}

func TestRequests_UpdateDetailsErrors(t *testing.T) {
	a := newAPI()
	a.requests.GetByIDFn = func(context.Context, uint64) (*domain.Request, error) {
		return &domain.Request{ID: 2}, nil
	}
	a.updates.GetByRequestIDFn = func(context.Context, uint64) (*domain.Update, error) {
		return &domain.Update{RequestID: 2}, nil
	}

	rec := a.doJSON(t, stdhttp.MethodPut, "/api/update-request/2", map[string]any{"nope": 1})
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("no fields: status = %d, want 400", rec.Code)
	}

	rec = a.doJSON(t, stdhttp.MethodPut, "/api/update-request/2", map[string]any{"estimated_man_hours_dev": "lots"})
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("bad hours: status = %d, want 422, body=%s", rec.Code, rec.Body.String())
	}
	if got := decode[ErrorResponse](t, rec); got.Error != "Invalid numeric value for 'estimated_man_hours_dev'." {
		t.Fatalf("error = %q", got.Error)
	}
}

func TestRequests_Download(t *testing.T) {
	a := newAPI()
	a.requests.ListFn = func(context.Context) ([]domain.Request, error) {
		return []domain.Request{{
			ID: 1, RequestNo: "CR-1", RequestedBy: "Alice", Department: "Finance",
			Category: "Bug", RequestDate: "2024-01-10", RequestTitle: "Fix totals",
		}}, nil
	}
	rec := a.do(t, stdhttp.MethodGet, "/api/requests/download", nil, "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != mimeXLSX {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="requests_data.xlsx"`) {
		t.Fatalf("content disposition = %q", cd)
	}

	s, err := excel.NewParser().Parse(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("parse download: %v", err)
	}
	if !slices.Equal(s.Headers, ingest.RequestHeaders) {
		t.Fatalf("headers = %v", s.Headers)
	}
	if len(s.Rows) != 1 || s.Rows[0].Get("Request No").String() != "CR-1" {
		t.Fatalf("rows = %+v", s.Rows)
	}
}

func TestRequests_DownloadUpdates(t *testing.T) {
	a := newAPI()
	status := "Closed"
	a.updates.ListDetailsFn = func(context.Context) ([]domain.Details, error) {
		return []domain.Details{
			{Request: domain.Request{ID: 1, RequestNo: "CR-1", RequestTitle: "A"}, Update: &domain.Update{RequestID: 1, CurrentStatus: &status}},
			{Request: domain.Request{ID: 2, RequestNo: "CR-2", RequestTitle: "B"}},
		}, nil
	}
	rec := a.do(t, stdhttp.MethodGet, "/api/update-request/download", nil, "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "request_updates_data.xlsx") {
		t.Fatalf("content disposition = %q", cd)
	}
	s, err := excel.NewParser().Parse(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("parse download: %v", err)
	}
	if len(s.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(s.Rows))
	}
	if got := s.Rows[0].Get("Current Status").String(); got != "Closed" {
		t.Fatalf("status cell = %q", got)
	}
	if !s.Rows[1].Get("Current Status").IsEmpty() {
		t.Fatalf("request without update must export blank columns: %+v", s.Rows[1])
	}
}
