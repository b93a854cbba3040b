package appointment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appointment) error

	// GetByID retrieves an appointment by id. Returns ErrAppointmentNotFound
	// if absent.
	GetByID(ctx context.Context, id string) (*Appointment, error)

	// List returns appointments matching q. View filtering is applied by the
	// caller via FilterByView; repositories only handle field filters.
	List(ctx context.Context, q *ListAppointmentsQuery) ([]*Appointment, error)

	Update(ctx context.Context, id string, cmd *UpdateAppointmentCommand) (*Appointment, error)

	// UpdateStatus persists a status change.
	UpdateStatus(ctx context.Context, id string, status Status) (*Appointment, error)

	Delete(ctx context.Context, id string) error
}
