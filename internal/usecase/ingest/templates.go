package ingest

import (
	"manhour-tracker/internal/domain/request"
	"manhour-tracker/internal/domain/sheet"
)

// RequestHeaders are the request upload columns; Description is optional.
var RequestHeaders = []string{
	colRequestNo, colRequestedBy, colDepartment, colCategory,
	colRequestDate, colRequestTitle, colDescription,
}

// ManHourHeaders are the actual man-hours upload columns.
var ManHourHeaders = []string{colRequestNo, colStakeholder, colActualHours, colTaskDate}

// UpdateHeaders are the request-update upload columns.
func UpdateHeaders() []string {
	out := []string{colRequestNo}
	for _, f := range request.UpdateFields {
		out = append(out, f.Header)
	}
	return out
}

// Templates are header-only workbooks for each upload mode.
func RequestTemplate() sheet.Table {
	return sheet.Table{Name: "Request Template", Headers: RequestHeaders}
}

func UpdateTemplate() sheet.Table {
	return sheet.Table{Name: "Update Request Template", Headers: UpdateHeaders()}
}

func ManHourTemplate() sheet.Table {
	return sheet.Table{Name: "Actual Man-Hours Template", Headers: ManHourHeaders}
}
