package stakeholder

import (
	"time"

	"manhour-tracker/internal/domain/apperr"
)

var (
	ErrNotFound  = apperr.NotFound("Stakeholder not found")
	ErrDuplicate = apperr.Conflict("Stakeholder with this name already exists")
)

// Roles are a convention, the column is free text.
const (
	RoleBA        = "BA"
	RoleDeveloper = "Developer"
	RoleTester    = "Tester"
)

// Roles lists the fixed roles in report/dashboard order.
var Roles = []string{RoleBA, RoleDeveloper, RoleTester}

// Table: stakeholders
type Stakeholder struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:128;not null;uniqueIndex:ux_stakeholders_name" json:"name"`
	Role      string    `gorm:"column:role;size:32;not null;index" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Stakeholder) TableName() string { return "stakeholders" }
