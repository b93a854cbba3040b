package memory

import (
	"context"

	"github.com/harborview/frontdesk/internal/domain/department"
)

type DepartmentRepository struct {
	s *Store
}

func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.departments[d.ID] = cloneDepartment(d)
	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (*department.Department, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.departments[id]
	if !ok {
		return nil, department.ErrDepartmentNotFound
	}
	return cloneDepartment(d), nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*department.Department, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*department.Department, 0, len(r.s.departments))
	for _, d := range r.s.departments {
		out = append(out, cloneDepartment(d))
	}
	sortByKey(out, func(d *department.Department) sortKey { return sortKey{d.CreatedAt, d.ID} })
	return out, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, id string, cmd *department.UpdateDepartmentCommand) (*department.Department, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.departments[id]
	if !ok {
		return nil, department.ErrDepartmentNotFound
	}

	if cmd.Name != nil {
		d.Name = *cmd.Name
	}
	if cmd.Location != nil {
		d.Location = *cmd.Location
	}
	if cmd.Head != nil {
		d.Head = *cmd.Head
	}
	if cmd.Description != nil {
		d.Description = *cmd.Description
	}
	if cmd.Phone != nil {
		d.Phone = *cmd.Phone
	}
	if cmd.Email != nil {
		d.Email = *cmd.Email
	}
	if cmd.AvgWaitMins != nil {
		d.AvgWaitMins = *cmd.AvgWaitMins
	}
	if cmd.ActiveQueue != nil {
		d.ActiveQueue = *cmd.ActiveQueue
	}
	touch(&d.UpdatedAt)

	return cloneDepartment(d), nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	delete(r.s.departments, id)
	return nil
}

func cloneDepartment(d *department.Department) *department.Department {
	cp := *d
	cp.ActiveQueue = append([]department.QueueEntry(nil), d.ActiveQueue...)
	return &cp
}
