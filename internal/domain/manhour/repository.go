package manhour

import "context"

type Repository interface {
	// Upsert overwrites the hours of an existing (request, stakeholder, task_date)
	// entry or inserts a new one, in a single statement.
	Upsert(ctx context.Context, e *Entry) error

	// List orders by task_date desc, request_no asc, stakeholder name asc.
	List(ctx context.Context) ([]EntryView, error)

	// Breakup lists a request's entries, optionally for one role only,
	// ordered by task_date then stakeholder name.
	Breakup(ctx context.Context, requestID uint64, role string) ([]BreakupRow, error)
}
