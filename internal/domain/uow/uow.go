package uow

import (
	"context"

	"manhour-tracker/internal/domain/manhour"
	"manhour-tracker/internal/domain/request"
	"manhour-tracker/internal/domain/stakeholder"
)

// Repos are bound to one transaction.
type Repos struct {
	Requests     request.Repository
	Updates      request.UpdateRepository
	Stakeholders stakeholder.Repository
	ManHours     manhour.Repository
}

// Batch runs rows of an upload inside its enclosing transaction.
type Batch interface {
	// Row runs fn in a savepoint: an error rolls back only fn's writes.
	Row(ctx context.Context, fn func(r Repos) error) error
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// one tx per upload, committed once even when some rows failed
	WithinBatchTx(ctx context.Context, fn func(b Batch) error) error
}
