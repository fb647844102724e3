package report

import (
	"time"

	"manhour-tracker/internal/domain/stakeholder"
)

// Filter holds the optional report predicates; zero values are not applied.
// Text fields are case-insensitive substring matches, RequestDate is exact and
// Statuses is set membership on the update's current_status.
type Filter struct {
	RequestNo   string
	Department  string
	Category    string
	RequestDate string
	Statuses    []string
}

// RoleHours holds one value per fixed role.
type RoleHours struct {
	BA        int
	Developer int
	Tester    int
}

func (h RoleHours) Total() int { return h.BA + h.Developer + h.Tester }

// Get returns the value for role, 0 for roles outside the fixed three.
func (h RoleHours) Get(role string) int {
	switch role {
	case stakeholder.RoleBA:
		return h.BA
	case stakeholder.RoleDeveloper:
		return h.Developer
	case stakeholder.RoleTester:
		return h.Tester
	}
	return 0
}

// Add accumulates hours for role; other roles are ignored.
func (h *RoleHours) Add(role string, hours int) {
	switch role {
	case stakeholder.RoleBA:
		h.BA += hours
	case stakeholder.RoleDeveloper:
		h.Developer += hours
	case stakeholder.RoleTester:
		h.Tester += hours
	}
}

// Base is a request left-joined to its update, before metrics are derived.
type Base struct {
	RequestID                uint64
	RequestNo                string
	RequestedBy              string
	Department               string
	Category                 string
	RequestDate              string
	RequestTitle             string
	CurrentStatus            *string
	SRSSentDate              *string
	SRSApprovalDate          *string
	EstimationReceivedDate   *string
	IndentSentDate           *string
	SignedIndentReceivedDate *string
	EstimatedManHoursBA      *int
	EstimatedManHoursDev     *int
	EstimatedManHoursTester  *int
	DevelopmentStartDate     *string
	UATMailDate              *string
	UATConfirmationDate      *string
}

// Row is one line of the consolidated report.
type Row struct {
	RequestInternalID           uint64  `json:"request_internal_id"`
	RequestNo                   string  `json:"request_no"`
	CurrentStatus               *string `json:"current_status"`
	RequestedBy                 string  `json:"requested_by"`
	Department                  string  `json:"department"`
	Category                    string  `json:"category"`
	RequestDate                 string  `json:"request_date"`
	RequestTitle                string  `json:"request_title"`
	SRSSentDate                 *string `json:"srs_sent_date"`
	SRSApprovalDate             *string `json:"srs_approval_date"`
	EstimationReceivedDate      *string `json:"estimation_received_date"`
	IndentSentDate              *string `json:"indent_sent_date"`
	SignedIndentReceivedDate    *string `json:"signed_indent_received_date"`
	EstimatedManHoursBA         int     `json:"estimated_man_hours_ba"`
	EstimatedManHoursDevelopers int     `json:"estimated_man_hours_developers"`
	EstimatedManHoursTester     int     `json:"estimated_man_hours_tester"`
	ActualManHoursBA            int     `json:"actual_man_hours_ba"`
	ActualManHoursDevelopers    int     `json:"actual_man_hours_developers"`
	ActualManHoursTester        int     `json:"actual_man_hours_tester"`
	TotalEstimated              int     `json:"total_estimated"`
	TotalActual                 int     `json:"total_actual"`
	DifferenceManHours          int     `json:"difference_man_hours"`
	DevelopmentStartDate        *string `json:"development_start_date"`
	UATMailDate                 *string `json:"uat_mail_date"`
	UATConfirmationDate         *string `json:"uat_confirmation_date"`
	TATDays                     *int    `json:"tat_days"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type RoleComparison struct {
	Role      string `json:"role"`
	Estimated int    `json:"estimated"`
	Actual    int    `json:"actual"`
}

const dateLayout = "2006-01-02"

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// BuildRow derives the estimated/actual totals, variance and TAT of b.
func BuildRow(b Base, actual RoleHours) Row {
	est := RoleHours{
		BA:        intOrZero(b.EstimatedManHoursBA),
		Developer: intOrZero(b.EstimatedManHoursDev),
		Tester:    intOrZero(b.EstimatedManHoursTester),
	}
	return Row{
		RequestInternalID:           b.RequestID,
		RequestNo:                   b.RequestNo,
		CurrentStatus:               b.CurrentStatus,
		RequestedBy:                 b.RequestedBy,
		Department:                  b.Department,
		Category:                    b.Category,
		RequestDate:                 b.RequestDate,
		RequestTitle:                b.RequestTitle,
		SRSSentDate:                 b.SRSSentDate,
		SRSApprovalDate:             b.SRSApprovalDate,
		EstimationReceivedDate:      b.EstimationReceivedDate,
		IndentSentDate:              b.IndentSentDate,
		SignedIndentReceivedDate:    b.SignedIndentReceivedDate,
		EstimatedManHoursBA:         est.BA,
		EstimatedManHoursDevelopers: est.Developer,
		EstimatedManHoursTester:     est.Tester,
		ActualManHoursBA:            actual.BA,
		ActualManHoursDevelopers:    actual.Developer,
		ActualManHoursTester:        actual.Tester,
		TotalEstimated:              est.Total(),
		TotalActual:                 actual.Total(),
		DifferenceManHours:          est.Total() - actual.Total(),
		DevelopmentStartDate:        b.DevelopmentStartDate,
		UATMailDate:                 b.UATMailDate,
		UATConfirmationDate:         b.UATConfirmationDate,
		TATDays:                     TATDays(b.DevelopmentStartDate, b.UATMailDate),
	}
}

// TATDays is the calendar-day count from devStart to uatMail. It is nil when
// either date is missing or not a YYYY-MM-DD value, negative when inverted.
func TATDays(devStart, uatMail *string) *int {
	if devStart == nil || uatMail == nil {
		return nil
	}
	start, err := time.Parse(dateLayout, *devStart)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dateLayout, *uatMail)
	if err != nil {
		return nil
	}
	days := int(end.Sub(start).Hours() / 24)
	return &days
}
