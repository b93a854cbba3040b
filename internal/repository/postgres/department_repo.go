package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/harborview/frontdesk/internal/domain/department"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("inserting department: %w", err)
	}
	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (*department.Department, error) {
	var d department.Department
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, department.ErrDepartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching department: %w", err)
	}
	return &d, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*department.Department, error) {
	var out []*department.Department
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}
	return out, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, id string, cmd *department.UpdateDepartmentCommand) (*department.Department, error) {
	d, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
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

	if err := r.db.WithContext(ctx).Save(d).Error; err != nil {
		return nil, fmt.Errorf("updating department: %w", err)
	}
	return d, nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&department.Department{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting department: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
