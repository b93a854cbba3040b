package patient

import "context"

type Repository interface {
	// Create persists a new patient. The id is assigned by the caller.
	Create(ctx context.Context, p *Patient) error

	// GetByID retrieves a patient by id. Returns ErrPatientNotFound if absent.
	GetByID(ctx context.Context, id string) (*Patient, error)

	// List returns the full patient collection, optionally filtered.
	List(ctx context.Context, q *ListPatientsQuery) ([]*Patient, error)

	// Update applies partial updates to an existing patient record.
	Update(ctx context.Context, id string, cmd *UpdatePatientCommand) (*Patient, error)

	// Delete removes the patient record.
	Delete(ctx context.Context, id string) error
}
