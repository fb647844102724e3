package report

import "context"

type Repository interface {
	// Bases returns one row per request matching f, request_date descending.
	Bases(ctx context.Context, f Filter) ([]Base, error)

	// ActualByRequest sums entry hours per request and stakeholder role.
	ActualByRequest(ctx context.Context, requestIDs []uint64) (map[uint64]RoleHours, error)

	CategoryCounts(ctx context.Context) ([]CategoryCount, error)
	// EstimatedTotals sums each role's estimated field over all updates.
	EstimatedTotals(ctx context.Context) (RoleHours, error)
	// ActualTotals sums entry hours over all requests by stakeholder role.
	ActualTotals(ctx context.Context) (RoleHours, error)
}
