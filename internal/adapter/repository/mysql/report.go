package mysql

import (
	"context"
	"strings"

	"manhour-tracker/internal/domain/report"

	"gorm.io/gorm"
)

type ReportRepository struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{db: db} }

const baseColumns = `r.id AS request_id, r.request_no, r.requested_by, r.department, r.category,
	r.request_date, r.request_title, ru.current_status,
	ru.srs_sent_date, ru.srs_approval_date, ru.estimation_received_date,
	ru.indent_sent_date, ru.signed_indent_received_date,
	ru.estimated_man_hours_ba, ru.estimated_man_hours_dev, ru.estimated_man_hours_tester,
	ru.development_start_date, ru.uat_mail_date, ru.uat_confirmation_date`

// baseRow is the scan target of baseColumns.
type baseRow struct {
	RequestID                uint64  `gorm:"column:request_id"`
	RequestNo                string  `gorm:"column:request_no"`
	RequestedBy              string  `gorm:"column:requested_by"`
	Department               string  `gorm:"column:department"`
	Category                 string  `gorm:"column:category"`
	RequestDate              string  `gorm:"column:request_date"`
	RequestTitle             string  `gorm:"column:request_title"`
	CurrentStatus            *string `gorm:"column:current_status"`
	SRSSentDate              *string `gorm:"column:srs_sent_date"`
	SRSApprovalDate          *string `gorm:"column:srs_approval_date"`
	EstimationReceivedDate   *string `gorm:"column:estimation_received_date"`
	IndentSentDate           *string `gorm:"column:indent_sent_date"`
	SignedIndentReceivedDate *string `gorm:"column:signed_indent_received_date"`
	EstimatedManHoursBA      *int    `gorm:"column:estimated_man_hours_ba"`
	EstimatedManHoursDev     *int    `gorm:"column:estimated_man_hours_dev"`
	EstimatedManHoursTester  *int    `gorm:"column:estimated_man_hours_tester"`
	DevelopmentStartDate     *string `gorm:"column:development_start_date"`
	UATMailDate              *string `gorm:"column:uat_mail_date"`
	UATConfirmationDate      *string `gorm:"column:uat_confirmation_date"`
}

func (r *ReportRepository) Bases(ctx context.Context, f report.Filter) ([]report.Base, error) {
	q := r.db.WithContext(ctx).
		Table("requests AS r").
		Select(baseColumns).
		Joins("LEFT JOIN request_updates ru ON ru.request_id = r.id")

	var rows []baseRow
	if err := applyFilter(q, f).Order("r.request_date DESC, r.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]report.Base, len(rows))
	for i, b := range rows {
		out[i] = report.Base(b)
	}
	return out, nil
}

// applyFilter adds one parameterized predicate per non-zero field of f.
func applyFilter(q *gorm.DB, f report.Filter) *gorm.DB {
	if f.RequestNo != "" {
		q = q.Where("LOWER(r.request_no) LIKE ? ESCAPE '!'", containsPattern(f.RequestNo))
	}
	if f.Department != "" {
		q = q.Where("LOWER(r.department) LIKE ? ESCAPE '!'", containsPattern(f.Department))
	}
	if f.Category != "" {
		q = q.Where("LOWER(r.category) LIKE ? ESCAPE '!'", containsPattern(f.Category))
	}
	if f.RequestDate != "" {
		q = q.Where("r.request_date = ?", f.RequestDate)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("ru.current_status IN ?", f.Statuses)
	}
	return q
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern folds ASCII only, matching sqlite LOWER. MySQL's _ci
// collations also fold non-ASCII letters; sqlite matches those case-sensitively.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(asciiLower(s)) + "%"
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

type roleSum struct {
	RequestID uint64 `gorm:"column:request_id"`
	Role      string `gorm:"column:role"`
	Hours     int64  `gorm:"column:hours"`
}

func (r *ReportRepository) ActualByRequest(ctx context.Context, requestIDs []uint64) (map[uint64]report.RoleHours, error) {
	out := make(map[uint64]report.RoleHours, len(requestIDs))
	for _, chunk := range chunkIDs(requestIDs, inChunk) {
		var sums []roleSum
		err := r.db.WithContext(ctx).
			Table("actual_man_hours AS amh").
			Select("amh.request_id, s.role, SUM(amh.actual_man_hours) AS hours").
			Joins("JOIN stakeholders s ON amh.stakeholder_id = s.id").
			Where("amh.request_id IN ?", chunk).
			Group("amh.request_id, s.role").
			Scan(&sums).Error
		if err != nil {
			return nil, err
		}
		for _, s := range sums {
			h := out[s.RequestID]
			h.Add(s.Role, int(s.Hours))
			out[s.RequestID] = h
		}
	}
	return out, nil
}

func (r *ReportRepository) CategoryCounts(ctx context.Context) ([]report.CategoryCount, error) {
	var out []report.CategoryCount
	err := r.db.WithContext(ctx).
		Table("requests").
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&out).Error
	return out, err
}

func (r *ReportRepository) EstimatedTotals(ctx context.Context) (report.RoleHours, error) {
	var sums struct {
		BA        int64 `gorm:"column:ba"`
		Developer int64 `gorm:"column:developer"`
		Tester    int64 `gorm:"column:tester"`
	}
	err := r.db.WithContext(ctx).
		Table("request_updates AS ru").
		Select(`COALESCE(SUM(ru.estimated_man_hours_ba), 0) AS ba,
			COALESCE(SUM(ru.estimated_man_hours_dev), 0) AS developer,
			COALESCE(SUM(ru.estimated_man_hours_tester), 0) AS tester`).
		Joins("JOIN requests r ON r.id = ru.request_id").
		Scan(&sums).Error
	if err != nil {
		return report.RoleHours{}, err
	}
	return report.RoleHours{BA: int(sums.BA), Developer: int(sums.Developer), Tester: int(sums.Tester)}, nil
}

func (r *ReportRepository) ActualTotals(ctx context.Context) (report.RoleHours, error) {
	var sums []roleSum
	err := r.db.WithContext(ctx).
		Table("actual_man_hours AS amh").
		Select("s.role, SUM(amh.actual_man_hours) AS hours").
		Joins("JOIN stakeholders s ON amh.stakeholder_id = s.id").
		Group("s.role").
		Scan(&sums).Error
	if err != nil {
		return report.RoleHours{}, err
	}
	var out report.RoleHours
	for _, s := range sums {
		out.Add(s.Role, int(s.Hours))
	}
	return out, nil
}
