package stakeholder

import "context"

type Repository interface {
	// List returns every stakeholder ordered by name.
	List(ctx context.Context) ([]Stakeholder, error)
	GetByID(ctx context.Context, id uint64) (*Stakeholder, error)
	GetByName(ctx context.Context, name string) (*Stakeholder, error)

	// Create fails with ErrDuplicate on a name clash.
	Create(ctx context.Context, s *Stakeholder) error
	Update(ctx context.Context, s *Stakeholder) error

	// Delete also removes the stakeholder's actual man-hour entries.
	Delete(ctx context.Context, id uint64) error
}
