package manhour

import "time"

// Entry is one stakeholder's hours on one request for one date.
// (request_id, stakeholder_id, task_date) is unique.
//
// Table: actual_man_hours
type Entry struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	RequestID      uint64    `gorm:"column:request_id;not null;index;uniqueIndex:ux_amh_request_stakeholder_date,priority:1"`
	StakeholderID  uint64    `gorm:"column:stakeholder_id;not null;index;uniqueIndex:ux_amh_request_stakeholder_date,priority:2"`
	ActualManHours int       `gorm:"column:actual_man_hours;not null"`
	TaskDate       string    `gorm:"column:task_date;size:32;not null;uniqueIndex:ux_amh_request_stakeholder_date,priority:3"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Entry) TableName() string { return "actual_man_hours" }

// EntryView is an entry joined to its request number and stakeholder name.
type EntryView struct {
	RequestNo       string `json:"request_no"`
	TaskDate        string `json:"task_date"`
	StakeholderName string `json:"stakeholder_name"`
	ActualManHours  int    `json:"actual_man_hours"`
}

// BreakupRow is one line of a request's man-hours breakup.
type BreakupRow struct {
	StakeholderName string `json:"stakeholder_name"`
	StakeholderRole string `json:"stakeholder_role"`
	ActualManHours  int    `json:"actual_man_hours"`
	TaskDate        string `json:"task_date"`
}
