package memory

import (
	"context"
	"strings"

	"github.com/harborview/frontdesk/internal/domain/patient"
)

type PatientRepository struct {
	s *Store
}

func (r *PatientRepository) Create(ctx context.Context, p *patient.Patient) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := clonePatient(p)
	r.s.patients[p.ID] = cp
	return nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*patient.Patient, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.patients[id]
	if !ok {
		return nil, patient.ErrPatientNotFound
	}
	return clonePatient(p), nil
}

func (r *PatientRepository) List(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	search := ""
	if q != nil {
		search = strings.ToLower(strings.TrimSpace(q.Search))
	}

	out := make([]*patient.Patient, 0, len(r.s.patients))
	for _, p := range r.s.patients {
		if search != "" && !matchesPatient(p, search) {
			continue
		}
		out = append(out, clonePatient(p))
	}
	sortByKey(out, func(p *patient.Patient) sortKey { return sortKey{p.CreatedAt, p.ID} })
	return out, nil
}

func (r *PatientRepository) Update(ctx context.Context, id string, cmd *patient.UpdatePatientCommand) (*patient.Patient, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.patients[id]
	if !ok {
		return nil, patient.ErrPatientNotFound
	}

	if cmd.Name != nil {
		p.Name = *cmd.Name
	}
	if cmd.DateOfBirth != nil {
		p.DateOfBirth = *cmd.DateOfBirth
	}
	if cmd.Gender != nil {
		p.Gender = *cmd.Gender
	}
	if cmd.BloodType != nil {
		p.BloodType = *cmd.BloodType
	}
	if cmd.Phone != nil {
		p.Phone = *cmd.Phone
	}
	if cmd.Email != nil {
		p.Email = *cmd.Email
	}
	if cmd.Address != nil {
		p.Address = *cmd.Address
	}
	if cmd.Allergies != nil {
		p.Allergies = *cmd.Allergies
	}
	if cmd.EmergencyContact != nil {
		p.EmergencyContact = cmd.EmergencyContact
	}
	if cmd.MedicalHistory != nil {
		p.MedicalHistory = *cmd.MedicalHistory
	}
	if cmd.CurrentMedications != nil {
		p.CurrentMedications = *cmd.CurrentMedications
	}
	touch(&p.UpdatedAt)

	return clonePatient(p), nil
}

func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.patients[id]; !ok {
		return patient.ErrPatientNotFound
	}
	delete(r.s.patients, id)
	return nil
}

func matchesPatient(p *patient.Patient, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Phone), search) ||
		strings.Contains(strings.ToLower(p.Email), search)
}

func clonePatient(p *patient.Patient) *patient.Patient {
	cp := *p
	cp.Allergies = append([]string(nil), p.Allergies...)
	cp.MedicalHistory = append([]patient.HistoryEntry(nil), p.MedicalHistory...)
	cp.CurrentMedications = append([]patient.Medication(nil), p.CurrentMedications...)
	if p.EmergencyContact != nil {
		ec := *p.EmergencyContact
		cp.EmergencyContact = &ec
	}
	return &cp
}
