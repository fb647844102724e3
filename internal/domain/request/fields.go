package request

type FieldKind uint8

const (
	KindDate FieldKind = iota
	KindHours
	KindText
)

// UpdateField maps a spreadsheet header to a request_updates column.
type UpdateField struct {
	Header string
	Column string
	Kind   FieldKind
}

// UpdateFields is the full mapped field set, in template order.
var UpdateFields = []UpdateField{
	{"SRS Sent Date", "srs_sent_date", KindDate},
	{"SRS Approval Date", "srs_approval_date", KindDate},
	{"Estimation Received Date", "estimation_received_date", KindDate},
	{"Indent Sent Date", "indent_sent_date", KindDate},
	{"Signed Indent Received Date", "signed_indent_received_date", KindDate},
	{"Estimated Man-hours BA", "estimated_man_hours_ba", KindHours},
	{"Estimated Man-hours Developers", "estimated_man_hours_dev", KindHours},
	{"Estimated Man-hours Tester", "estimated_man_hours_tester", KindHours},
	{"Development Start Date", "development_start_date", KindDate},
	{"UAT Mail Date", "uat_mail_date", KindDate},
	{"UAT Confirmation Date", "uat_confirmation_date", KindDate},
	{"Current Status", "current_status", KindText},
}

// UpdateColumns returns the column names of UpdateFields.
func UpdateColumns() []string {
	out := make([]string, len(UpdateFields))
	for i, f := range UpdateFields {
		out[i] = f.Column
	}
	return out
}

// LookupField finds a field by column name.
func LookupField(column string) (UpdateField, bool) {
	for _, f := range UpdateFields {
		if f.Column == column {
			return f, true
		}
	}
	return UpdateField{}, false
}

// Text returns the slot of a date or text column, nil for unknown or hour columns.
func (u *Update) Text(column string) **string {
	switch column {
	case "srs_sent_date":
		return &u.SRSSentDate
	case "srs_approval_date":
		return &u.SRSApprovalDate
	case "estimation_received_date":
		return &u.EstimationReceivedDate
	case "indent_sent_date":
		return &u.IndentSentDate
	case "signed_indent_received_date":
		return &u.SignedIndentReceivedDate
	case "development_start_date":
		return &u.DevelopmentStartDate
	case "uat_mail_date":
		return &u.UATMailDate
	case "uat_confirmation_date":
		return &u.UATConfirmationDate
	case "current_status":
		return &u.CurrentStatus
	}
	return nil
}

// Hours returns the slot of an estimated man-hours column.
func (u *Update) Hours(column string) **int {
	switch column {
	case "estimated_man_hours_ba":
		return &u.EstimatedManHoursBA
	case "estimated_man_hours_dev":
		return &u.EstimatedManHoursDev
	case "estimated_man_hours_tester":
		return &u.EstimatedManHoursTester
	}
	return nil
}

// Value returns the stored value of column as an untyped cell (nil when unset).
func (u *Update) Value(column string) any {
	if p := u.Text(column); p != nil {
		if *p == nil {
			return nil
		}
		return **p
	}
	if p := u.Hours(column); p != nil {
		if *p == nil {
			return nil
		}
		return **p
	}
	return nil
}
