package staff

import "context"

type Repository interface {
	Create(ctx context.Context, s *Staff) error

	// GetByID retrieves a staff member by id. Returns ErrStaffNotFound if
	// absent.
	GetByID(ctx context.Context, id string) (*Staff, error)

	List(ctx context.Context, q *ListStaffQuery) ([]*Staff, error)

	Update(ctx context.Context, id string, cmd *UpdateStaffCommand) (*Staff, error)

	Delete(ctx context.Context, id string) error
}
