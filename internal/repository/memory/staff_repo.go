package memory

import (
	"context"

	"github.com/harborview/frontdesk/internal/domain/staff"
)

type StaffRepository struct {
	s *Store
}

func (r *StaffRepository) Create(ctx context.Context, m *staff.Staff) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *m
	r.s.staff[m.ID] = &cp
	return nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id string) (*staff.Staff, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.staff[id]
	if !ok {
		return nil, staff.ErrStaffNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *StaffRepository) List(ctx context.Context, q *staff.ListStaffQuery) ([]*staff.Staff, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*staff.Staff, 0, len(r.s.staff))
	for _, m := range r.s.staff {
		if q != nil {
			if q.DepartmentID != "" && m.DepartmentID != q.DepartmentID {
				continue
			}
			if q.Role != nil && m.Role != *q.Role {
				continue
			}
			if q.Status != nil && m.CurrentStatus != *q.Status {
				continue
			}
		}
		cp := *m
		out = append(out, &cp)
	}
	sortByKey(out, func(m *staff.Staff) sortKey { return sortKey{m.CreatedAt, m.ID} })
	return out, nil
}

func (r *StaffRepository) Update(ctx context.Context, id string, cmd *staff.UpdateStaffCommand) (*staff.Staff, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.staff[id]
	if !ok {
		return nil, staff.ErrStaffNotFound
	}

	if cmd.Name != nil {
		m.Name = *cmd.Name
	}
	if cmd.Role != nil {
		m.Role = *cmd.Role
	}
	if cmd.Specialization != nil {
		m.Specialization = *cmd.Specialization
	}
	if cmd.DepartmentID != nil {
		m.DepartmentID = *cmd.DepartmentID
	}
	if cmd.Phone != nil {
		m.Phone = *cmd.Phone
	}
	if cmd.Email != nil {
		m.Email = *cmd.Email
	}
	if cmd.CurrentStatus != nil {
		m.CurrentStatus = *cmd.CurrentStatus
	}
	touch(&m.UpdatedAt)

	cp := *m
	return &cp, nil
}

func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.staff[id]; !ok {
		return staff.ErrStaffNotFound
	}
	delete(r.s.staff, id)
	return nil
}
