package request

import (
	"context"

	domain "manhour-tracker/internal/domain/request"
	"manhour-tracker/internal/domain/sheet"
	"manhour-tracker/internal/usecase/ingest"
)

// ExportRequests renders every request with the upload headers, so a download
// can be edited and uploaded again.
func (u *Usecase) ExportRequests(ctx context.Context) (sheet.Table, error) {
	rs, err := u.requests.List(ctx)
	if err != nil {
		return sheet.Table{}, err
	}
	t := sheet.Table{Name: "Requests", Headers: ingest.RequestHeaders}
	for _, r := range rs {
		t.Rows = append(t.Rows, []any{
			r.RequestNo, r.RequestedBy, r.Department, r.Category,
			r.RequestDate, r.RequestTitle, r.Description,
		})
	}
	return t, nil
}

// ExportUpdates renders every request with its update columns; Request Title
// is informational and ignored on upload.
func (u *Usecase) ExportUpdates(ctx context.Context) (sheet.Table, error) {
	ds, err := u.updates.ListDetails(ctx)
	if err != nil {
		return sheet.Table{}, err
	}
	headers := ingest.UpdateHeaders()
	headers = append([]string{headers[0], "Request Title"}, headers[1:]...)

	t := sheet.Table{Name: "Request Updates", Headers: headers}
	for _, d := range ds {
		row := []any{d.RequestNo, d.RequestTitle}
		for _, f := range domain.UpdateFields {
			if d.Update == nil {
				row = append(row, nil)
				continue
			}
			row = append(row, d.Update.Value(f.Column))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
