package request

import (
	"time"

	"manhour-tracker/internal/domain/apperr"
)

var (
	ErrNotFound  = apperr.NotFound("Request not found")
	ErrDuplicate = apperr.Conflict("Request with this number already exists")
	ErrNoUpdate  = apperr.NotFound("No updates recorded for request")
)

// Table: requests
type Request struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RequestNo    string    `gorm:"column:request_no;size:64;not null;uniqueIndex:ux_requests_request_no" json:"request_no"`
	RequestedBy  string    `gorm:"column:requested_by;size:128;not null" json:"requested_by"`
	Department   string    `gorm:"column:department;size:128;not null;index" json:"department"`
	Category     string    `gorm:"column:category;size:128;not null;index" json:"category"`
	RequestDate  string    `gorm:"column:request_date;size:32;not null;index" json:"request_date"` // YYYY-MM-DD for date cells, raw text otherwise
	RequestTitle string    `gorm:"column:request_title;size:255;not null" json:"request_title"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Request) TableName() string { return "requests" }

// Update is the 1:1 workflow record of a Request. A missing row means
// "no updates yet", which is not the same as a row of nulls.
//
// Table: request_updates
type Update struct {
	RequestID                uint64    `gorm:"column:request_id;primaryKey;autoIncrement:false" json:"request_id"`
	SRSSentDate              *string   `gorm:"column:srs_sent_date;size:32" json:"srs_sent_date"`
	SRSApprovalDate          *string   `gorm:"column:srs_approval_date;size:32" json:"srs_approval_date"`
	EstimationReceivedDate   *string   `gorm:"column:estimation_received_date;size:32" json:"estimation_received_date"`
	IndentSentDate           *string   `gorm:"column:indent_sent_date;size:32" json:"indent_sent_date"`
	SignedIndentReceivedDate *string   `gorm:"column:signed_indent_received_date;size:32" json:"signed_indent_received_date"`
	EstimatedManHoursBA      *int      `gorm:"column:estimated_man_hours_ba" json:"estimated_man_hours_ba"`
	EstimatedManHoursDev     *int      `gorm:"column:estimated_man_hours_dev" json:"estimated_man_hours_dev"`
	EstimatedManHoursTester  *int      `gorm:"column:estimated_man_hours_tester" json:"estimated_man_hours_tester"`
	DevelopmentStartDate     *string   `gorm:"column:development_start_date;size:32" json:"development_start_date"`
	UATMailDate              *string   `gorm:"column:uat_mail_date;size:32" json:"uat_mail_date"`
	UATConfirmationDate      *string   `gorm:"column:uat_confirmation_date;size:32" json:"uat_confirmation_date"`
	CurrentStatus            *string   `gorm:"column:current_status;size:128;index" json:"current_status"`
	CreatedAt                time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt                time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Update) TableName() string { return "request_updates" }

// Details is a Request with its Update, nil when none has been recorded.
type Details struct {
	Request
	Update *Update
}

// PatchableColumns are the request columns a partial update may touch.
var PatchableColumns = []string{
	"request_no", "requested_by", "department", "category",
	"request_date", "request_title", "description",
}
