package request

import "context"

type Repository interface {
	// List orders by request_date descending.
	List(ctx context.Context) ([]Request, error)
	GetByID(ctx context.Context, id uint64) (*Request, error)
	GetByRequestNo(ctx context.Context, requestNo string) (*Request, error)

	// Create fails with ErrDuplicate when request_no is taken.
	Create(ctx context.Context, r *Request) error
	// Patch writes only the given columns (keys from PatchableColumns).
	Patch(ctx context.Context, id uint64, fields map[string]any) error

	// Delete cascades to the request's Update and man-hour entries.
	Delete(ctx context.Context, id uint64) error
}

type UpdateRepository interface {
	GetByRequestID(ctx context.Context, requestID uint64) (*Update, error)

	// Upsert writes every mapped column of u in one conditional write keyed by request_id.
	Upsert(ctx context.Context, u *Update) error

	// ListDetails joins every request to its update, request_date descending.
	ListDetails(ctx context.Context) ([]Details, error)
}
