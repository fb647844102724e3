package mysql

import (
	"manhour-tracker/internal/domain/manhour"
	"manhour-tracker/internal/domain/request"
	"manhour-tracker/internal/domain/stakeholder"

	"gorm.io/gorm"
)

// Models lists every persisted entity in dependency order.
func Models() []any {
	return []any{
		&stakeholder.Stakeholder{},
		&request.Request{},
		&request.Update{},
		&manhour.Entry{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
