package department

import "context"

type Repository interface {
	Create(ctx context.Context, d *Department) error

	// GetByID retrieves a department by id. Returns ErrDepartmentNotFound
	// if absent.
	GetByID(ctx context.Context, id string) (*Department, error)

	List(ctx context.Context) ([]*Department, error)

	Update(ctx context.Context, id string, cmd *UpdateDepartmentCommand) (*Department, error)

	Delete(ctx context.Context, id string) error
}
