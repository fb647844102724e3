package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"manhour-tracker/internal/domain/uow"
	"manhour-tracker/internal/infrastructure/excel"
	"manhour-tracker/internal/testutil/manhourmock"
	"manhour-tracker/internal/testutil/reportmock"
	"manhour-tracker/internal/testutil/requestmock"
	"manhour-tracker/internal/testutil/stakeholdermock"
	"manhour-tracker/internal/testutil/uowmock"
	"manhour-tracker/internal/usecase/dashboard"
	"manhour-tracker/internal/usecase/ingest"
	"manhour-tracker/internal/usecase/report"
	"manhour-tracker/internal/usecase/request"
	"manhour-tracker/internal/usecase/stakeholder"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// api wires every route against function-field mocks.
type api struct {
	requests     *requestmock.Repo
	updates      *requestmock.UpdateRepo
	stakeholders *stakeholdermock.Repo
	manHours     *manhourmock.Repo
	reports      *reportmock.Repo
}

func newAPI() *api {
	return &api{
		requests:     &requestmock.Repo{},
		updates:      &requestmock.UpdateRepo{},
		stakeholders: &stakeholdermock.Repo{},
		manHours:     &manhourmock.Repo{},
		reports:      &reportmock.Repo{},
	}
}

func (a *api) echo() *echo.Echo {
	tx := uowmock.Passthrough(uow.Repos{
		Requests:     a.requests,
		Updates:      a.updates,
		Stakeholders: a.stakeholders,
		ManHours:     a.manHours,
	})
	files := NewFiles(excel.NewParser(), excel.NewRenderer())
	e := newEchoWithValidator()
	Routes{
		Health:       NewHandler(nil),
		Stakeholders: NewStakeholderHandler(stakeholder.NewUsecase(a.stakeholders)),
		Requests:     NewRequestHandler(request.NewUsecase(a.requests, a.updates, tx), files),
		Uploads:      NewUploadHandler(ingest.NewEngine(tx, nil), files),
		Reports:      NewReportHandler(report.NewUsecase(a.reports, a.manHours), dashboard.NewUsecase(a.reports), files),
	}.Register(e)
	return e
}

func (a *api) do(t *testing.T, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	a.echo().ServeHTTP(rec, req)
	return rec
}

func (a *api) doJSON(t *testing.T, method, path string, v any) *httptest.ResponseRecorder {
	t.Helper()
	return a.do(t, method, path, mustJSON(v), echo.MIMEApplicationJSON)
}

// upload posts data as the multipart "file" field named filename.
func (a *api) upload(t *testing.T, path, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return a.do(t, "POST", path, &body, w.FormDataContentType())
}

// workbook builds an xlsx whose first sheet holds rows, header included.
func workbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &rows[i]); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func headerRow(headers []string) []any {
	out := make([]any, len(headers))
	for i, h := range headers {
		out[i] = h
	}
	return out
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("bad json: %v; raw=%s", err, rec.Body.String())
	}
	return v
}
