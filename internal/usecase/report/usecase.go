package report

import (
	"context"
	"strings"

	"manhour-tracker/internal/domain/manhour"
	domain "manhour-tracker/internal/domain/report"
	"manhour-tracker/internal/domain/sheet"
)

type Usecase struct {
	repo     domain.Repository
	manHours manhour.Repository
}

func NewUsecase(r domain.Repository, m manhour.Repository) *Usecase {
	return &Usecase{repo: r, manHours: m}
}

// NormalizeFilter trims the text predicates and drops blank statuses.
func NormalizeFilter(f domain.Filter) domain.Filter {
	out := domain.Filter{
		RequestNo:   strings.TrimSpace(f.RequestNo),
		Department:  strings.TrimSpace(f.Department),
		Category:    strings.TrimSpace(f.Category),
		RequestDate: strings.TrimSpace(f.RequestDate),
	}
	for _, s := range f.Statuses {
		if s = strings.TrimSpace(s); s != "" {
			out.Statuses = append(out.Statuses, s)
		}
	}
	return out
}

// Report builds one row per matching request with its derived metrics.
func (u *Usecase) Report(ctx context.Context, f domain.Filter) ([]domain.Row, error) {
	bases, err := u.repo.Bases(ctx, NormalizeFilter(f))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Row, 0, len(bases))
	if len(bases) == 0 {
		return out, nil
	}

	ids := make([]uint64, len(bases))
	for i, b := range bases {
		ids[i] = b.RequestID
	}
	actual, err := u.repo.ActualByRequest(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, b := range bases {
		out = append(out, domain.BuildRow(b, actual[b.RequestID]))
	}
	return out, nil
}

// Breakup lists a request's entries, optionally for one role.
func (u *Usecase) Breakup(ctx context.Context, requestID uint64, role string) ([]manhour.BreakupRow, error) {
	out, err := u.manHours.Breakup(ctx, requestID, strings.TrimSpace(role))
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []manhour.BreakupRow{}
	}
	return out, nil
}

func (u *Usecase) ManHours(ctx context.Context) ([]manhour.EntryView, error) {
	out, err := u.manHours.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []manhour.EntryView{}
	}
	return out, nil
}

// ReportHeaders are the consolidated report download columns.
var ReportHeaders = []string{
	"Request No", "Current Status", "Requested By", "Department", "Category",
	"Request Date", "Request Title", "SRS Sent Date", "SRS Approval Date",
	"Estimation Received Date", "Indent Sent Date", "Signed Indent Received Date",
	"Est. MH BA", "Actual MH BA", "Est. MH Dev", "Actual MH Dev",
	"Est. MH Tester", "Actual MH Tester", "Total Estimated", "Total Actual",
	"Difference", "Dev Start Date", "UAT Mail Date", "UAT Conf. Date", "TAT (Days)",
}

// Export renders the filtered report.
func (u *Usecase) Export(ctx context.Context, f domain.Filter) (sheet.Table, error) {
	rows, err := u.Report(ctx, f)
	if err != nil {
		return sheet.Table{}, err
	}
	t := sheet.Table{Name: "Consolidated Report", Headers: ReportHeaders}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.RequestNo, r.CurrentStatus, r.RequestedBy, r.Department, r.Category,
			r.RequestDate, r.RequestTitle, r.SRSSentDate, r.SRSApprovalDate,
			r.EstimationReceivedDate, r.IndentSentDate, r.SignedIndentReceivedDate,
			r.EstimatedManHoursBA, r.ActualManHoursBA, r.EstimatedManHoursDevelopers, r.ActualManHoursDevelopers,
			r.EstimatedManHoursTester, r.ActualManHoursTester, r.TotalEstimated, r.TotalActual,
			r.DifferenceManHours, r.DevelopmentStartDate, r.UATMailDate, r.UATConfirmationDate, r.TATDays,
		})
	}
	return t, nil
}

// ExportManHours renders every entry with the upload headers.
func (u *Usecase) ExportManHours(ctx context.Context) (sheet.Table, error) {
	entries, err := u.manHours.List(ctx)
	if err != nil {
		return sheet.Table{}, err
	}
	t := sheet.Table{
		Name:    "Actual Man-Hours Data",
		Headers: []string{"Request No", "Stakeholder Name", "Actual Man-Hours", "Task Date"},
	}
	for _, e := range entries {
		t.Rows = append(t.Rows, []any{e.RequestNo, e.StakeholderName, e.ActualManHours, e.TaskDate})
	}
	return t, nil
}
