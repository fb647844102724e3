package mysql

import (
	"context"
	"testing"

	"manhour-tracker/internal/domain/manhour"
	"manhour-tracker/internal/domain/request"
	"manhour-tracker/internal/domain/stakeholder"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the production schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func strp(s string) *string { return &s }
func intp(i int) *int { return &i }

func seedRequest(t *testing.T, db *gorm.DB, no, date string) *request.Request {
	t.Helper()
	r := &request.Request{
		RequestNo:    no,
		RequestedBy:  "Asha",
		Department:   "Finance",
		Category:     "Enhancement",
		RequestDate:  date,
		RequestTitle: "Title " + no,
	}
	if err := NewRequestRepository(db).Create(context.Background(), r); err != nil {
		t.Fatalf("seed request %s: %v", no, err)
	}
	return r
}

func seedStakeholder(t *testing.T, db *gorm.DB, name, role string) *stakeholder.Stakeholder {
	t.Helper()
	s := &stakeholder.Stakeholder{Name: name, Role: role}
	if err := NewStakeholderRepository(db).Create(context.Background(), s); err != nil {
		t.Fatalf("seed stakeholder %s: %v", name, err)
	}
	return s
}

func seedEntry(t *testing.T, db *gorm.DB, requestID, stakeholderID uint64, hours int, date string) {
	t.Helper()
	e := &manhour.Entry{RequestID: requestID, StakeholderID: stakeholderID, ActualManHours: hours, TaskDate: date}
	if err := NewManHourRepository(db).Upsert(context.Background(), e); err != nil {
		t.Fatalf("seed entry: %v", err)
	}
}

func countRows(t *testing.T, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if where != "" {
		q = q.Where(where, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
