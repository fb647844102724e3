package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"manhour-tracker/internal/domain/apperr"
	"manhour-tracker/internal/domain/manhour"
	"manhour-tracker/internal/domain/request"
	"manhour-tracker/internal/domain/sheet"
	"manhour-tracker/internal/domain/stakeholder"
	"manhour-tracker/internal/domain/uow"
	"manhour-tracker/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

const (
	ModeRequests = metrics.ModeRequests
	ModeUpdates  = metrics.ModeUpdates
	ModeManHours = metrics.ModeManHours
)

// Upload column contracts.
const (
	colRequestNo    = "Request No"
	colRequestedBy  = "Requested By"
	colDepartment   = "Department"
	colCategory     = "Category"
	colRequestDate  = "Request Date"
	colRequestTitle = "Request Title"
	colDescription  = "Description"

	colStakeholder = "Stakeholder Name"
	colActualHours = "Actual Man-Hours"
	colTaskDate    = "Task Date"
)

var (
	requestRequired = []string{colRequestNo, colRequestedBy, colDepartment, colCategory, colRequestDate, colRequestTitle}
	updateRequired  = []string{colRequestNo}
	manHourRequired = []string{colRequestNo, colStakeholder, colActualHours, colTaskDate}
)

// Engine validates spreadsheet rows and writes them in one transaction per
// upload, each row in its own savepoint.
type Engine struct {
	uow uow.UnitOfWork
	log *zap.Logger
}

func NewEngine(tx uow.UnitOfWork, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{uow: tx, log: log}
}

// rowError rejects one row; ctx overrides the row's default context when set.
type rowError struct {
	ctx    string
	reason string
}

func (e *rowError) Error() string { return e.reason }

func fail(reason string) error { return &rowError{reason: reason} }

func failCtx(ctx, reason string) error { return &rowError{ctx: ctx, reason: reason} }

func missingColumns(s *sheet.Sheet, want []string) error {
	if len(s.Missing(want...)) == 0 {
		return nil
	}
	quoted := make([]string, len(want))
	for i, w := range want {
		quoted[i] = fmt.Sprintf("%q", w)
	}
	verb := "are"
	if len(want) == 1 {
		verb = "is"
	}
	return apperr.Validationf("Missing required columns in Excel file. Ensure %s %s present.", strings.Join(quoted, ", "), verb)
}

// run drives the shared batch loop; rowFn returns the row's context and work.
func (e *Engine) run(ctx context.Context, mode string, s *sheet.Sheet, rowFn func(row sheet.Row) (string, func(r uow.Repos) error)) (*Result, error) {
	res := &Result{Mode: mode}
	err := e.uow.WithinBatchTx(ctx, func(b uow.Batch) error {
		for _, row := range s.Rows {
			rowCtx, work := rowFn(row)
			err := b.Row(ctx, work)
			if err == nil {
				res.Succeeded++
				continue
			}
			f := RowFailure{Row: row.Number, Context: rowCtx}
			var re *rowError
			if errors.As(err, &re) {
				f.Reason = re.reason
				if re.ctx != "" {
					f.Context = re.ctx
				}
			} else {
				f.Reason = "Error - " + err.Error()
			}
			res.Failures = append(res.Failures, f)
			e.log.Debug("upload row rejected", zap.String("mode", mode), zap.Int("row", f.Row), zap.String("reason", f.Reason))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveUpload(mode, res.Succeeded, len(res.Failures))
	e.log.Info("upload processed",
		zap.String("mode", mode),
		zap.Int("succeeded", res.Succeeded),
		zap.Int("failed", len(res.Failures)),
	)
	return res, nil
}

func text(c sheet.Cell) string { return strings.TrimSpace(c.String()) }

// UploadRequests inserts one request per row; a duplicate request_no fails
// only its row.
func (e *Engine) UploadRequests(ctx context.Context, s *sheet.Sheet) (*Result, error) {
	if err := missingColumns(s, requestRequired); err != nil {
		return nil, err
	}
	return e.run(ctx, ModeRequests, s, func(row sheet.Row) (string, func(uow.Repos) error) {
		no := text(row.Get(colRequestNo))
		rowCtx := "Request No: " + no
		return rowCtx, func(r uow.Repos) error {
			req := &request.Request{
				RequestNo:    no,
				RequestedBy:  text(row.Get(colRequestedBy)),
				Department:   text(row.Get(colDepartment)),
				Category:     text(row.Get(colCategory)),
				RequestTitle: text(row.Get(colRequestTitle)),
				Description:  text(row.Get(colDescription)),
			}
			if d := sheet.NormalizeDate(row.Get(colRequestDate)); d != nil {
				req.RequestDate = strings.TrimSpace(*d)
			}
			required := []struct{ label, v string }{
				{colRequestNo, req.RequestNo},
				{colRequestedBy, req.RequestedBy},
				{colDepartment, req.Department},
				{colCategory, req.Category},
				{colRequestDate, req.RequestDate},
				{colRequestTitle, req.RequestTitle},
			}
			for _, f := range required {
				if f.v == "" {
					return fail("Error - " + f.label + " is required")
				}
			}
			err := r.Requests.Create(ctx, req)
			if errors.Is(err, request.ErrDuplicate) {
				return fail("Duplicate request number.")
			}
			return err
		}
	})
}

// UploadUpdates replaces the full mapped field set of each row's request
// update; blank cells store nulls.
func (e *Engine) UploadUpdates(ctx context.Context, s *sheet.Sheet) (*Result, error) {
	if err := missingColumns(s, updateRequired); err != nil {
		return nil, err
	}
	return e.run(ctx, ModeUpdates, s, func(row sheet.Row) (string, func(uow.Repos) error) {
		no := text(row.Get(colRequestNo))
		if no == "" {
			return "", func(uow.Repos) error { return fail("'Request No' is missing.") }
		}
		return "Request No: " + no, func(r uow.Repos) error {
			req, err := r.Requests.GetByRequestNo(ctx, no)
			if errors.Is(err, request.ErrNotFound) {
				return fail("Request No not found in system.")
			}
			if err != nil {
				return err
			}
			up, err := updateFromRow(req.ID, row)
			if err != nil {
				return err
			}
			return r.Updates.Upsert(ctx, up)
		}
	})
}

func updateFromRow(requestID uint64, row sheet.Row) (*request.Update, error) {
	up := &request.Update{RequestID: requestID}
	for _, f := range request.UpdateFields {
		c := row.Get(f.Header)
		switch f.Kind {
		case request.KindDate:
			if d := sheet.NormalizeDate(c); d != nil {
				if s := strings.TrimSpace(*d); s != "" {
					*up.Text(f.Column) = &s
				}
			}
		case request.KindText:
			if s := text(c); s != "" {
				*up.Text(f.Column) = &s
			}
		case request.KindHours:
			if text(c) == "" {
				continue
			}
			n, err := c.Int()
			if err != nil {
				return nil, fail(fmt.Sprintf("Invalid numeric value for '%s'.", f.Header))
			}
			*up.Hours(f.Column) = &n
		}
	}
	return up, nil
}

// UploadManHours upserts one entry per row keyed by request, stakeholder and
// task date.
func (e *Engine) UploadManHours(ctx context.Context, s *sheet.Sheet) (*Result, error) {
	if err := missingColumns(s, manHourRequired); err != nil {
		return nil, err
	}
	return e.run(ctx, ModeManHours, s, func(row sheet.Row) (string, func(uow.Repos) error) {
		no, name := text(row.Get(colRequestNo)), text(row.Get(colStakeholder))
		hoursCell, dateCell := row.Get(colActualHours), row.Get(colTaskDate)
		if no == "" || name == "" || text(hoursCell) == "" || text(dateCell) == "" {
			return "", func(uow.Repos) error {
				return fail("Missing data in Request No, Stakeholder Name, Actual Man-Hours, or Task Date.")
			}
		}
		rowCtx := fmt.Sprintf("Request No: %s, Stakeholder: %s", no, name)
		return rowCtx, func(r uow.Repos) error {
			hours, err := hoursCell.Int()
			if err != nil {
				return fail("Invalid 'Actual Man-Hours' value.")
			}
			taskDate := strings.TrimSpace(*sheet.NormalizeDate(dateCell))

			req, err := r.Requests.GetByRequestNo(ctx, no)
			if errors.Is(err, request.ErrNotFound) {
				return failCtx("Request No: "+no, "Request No not found in system.")
			}
			if err != nil {
				return err
			}
			stk, err := r.Stakeholders.GetByName(ctx, name)
			if errors.Is(err, stakeholder.ErrNotFound) {
				return failCtx("Stakeholder: "+name, "Stakeholder not found in system.")
			}
			if err != nil {
				return err
			}
			return r.ManHours.Upsert(ctx, &manhour.Entry{
				RequestID:      req.ID,
				StakeholderID:  stk.ID,
				ActualManHours: hours,
				TaskDate:       taskDate,
			})
		}
	})
}
