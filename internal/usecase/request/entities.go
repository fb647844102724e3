package request

import (
	domain "manhour-tracker/internal/domain/request"
)

type CreateInput struct {
	RequestNo    string `json:"request_no"`
	RequestedBy  string `json:"requested_by"`
	Department   string `json:"department"`
	Category     string `json:"category"`
	RequestDate  string `json:"request_date"`
	RequestTitle string `json:"request_title"`
	Description  string `json:"description"`
}

// DetailsDTO is a request flattened with its update columns, all nil when
// no update has been recorded.
type DetailsDTO struct {
	ID                       uint64  `json:"id"`
	RequestNo                string  `json:"request_no"`
	RequestedBy              string  `json:"requested_by"`
	Department               string  `json:"department"`
	Category                 string  `json:"category"`
	RequestDate              string  `json:"request_date"`
	RequestTitle             string  `json:"request_title"`
	Description              string  `json:"description"`
	SRSSentDate              *string `json:"srs_sent_date"`
	SRSApprovalDate          *string `json:"srs_approval_date"`
	EstimationReceivedDate   *string `json:"estimation_received_date"`
	IndentSentDate           *string `json:"indent_sent_date"`
	SignedIndentReceivedDate *string `json:"signed_indent_received_date"`
	EstimatedManHoursBA      *int    `json:"estimated_man_hours_ba"`
	EstimatedManHoursDev     *int    `json:"estimated_man_hours_dev"`
	EstimatedManHoursTester  *int    `json:"estimated_man_hours_tester"`
	DevelopmentStartDate     *string `json:"development_start_date"`
	UATMailDate              *string `json:"uat_mail_date"`
	UATConfirmationDate      *string `json:"uat_confirmation_date"`
	CurrentStatus            *string `json:"current_status"`
}

func toDetailsDTO(r domain.Request, u *domain.Update) *DetailsDTO {
	d := &DetailsDTO{
		ID:           r.ID,
		RequestNo:    r.RequestNo,
		RequestedBy:  r.RequestedBy,
		Department:   r.Department,
		Category:     r.Category,
		RequestDate:  r.RequestDate,
		RequestTitle: r.RequestTitle,
		Description:  r.Description,
	}
	if u == nil {
		return d
	}
	d.SRSSentDate = u.SRSSentDate
	d.SRSApprovalDate = u.SRSApprovalDate
	d.EstimationReceivedDate = u.EstimationReceivedDate
	d.IndentSentDate = u.IndentSentDate
	d.SignedIndentReceivedDate = u.SignedIndentReceivedDate
	d.EstimatedManHoursBA = u.EstimatedManHoursBA
	d.EstimatedManHoursDev = u.EstimatedManHoursDev
	d.EstimatedManHoursTester = u.EstimatedManHoursTester
	d.DevelopmentStartDate = u.DevelopmentStartDate
	d.UATMailDate = u.UATMailDate
	d.UATConfirmationDate = u.UATConfirmationDate
	d.CurrentStatus = u.CurrentStatus
	return d
}
