package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/harborview/frontdesk/internal/domain/staff"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, m *staff.Staff) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("inserting staff member: %w", err)
	}
	return nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id string) (*staff.Staff, error) {
	var m staff.Staff
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, staff.ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching staff member: %w", err)
	}
	return &m, nil
}

func (r *StaffRepository) List(ctx context.Context, q *staff.ListStaffQuery) ([]*staff.Staff, error) {
	tx := r.db.WithContext(ctx).Model(&staff.Staff{})
	if q != nil {
		if q.DepartmentID != "" {
			tx = tx.Where("department_id = ?", q.DepartmentID)
		}
		if q.Role != nil {
			tx = tx.Where("role = ?", *q.Role)
		}
		if q.Status != nil {
			tx = tx.Where("current_status = ?", *q.Status)
		}
	}
	var out []*staff.Staff
	if err := tx.Order("created_at, id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	return out, nil
}

func (r *StaffRepository) Update(ctx context.Context, id string, cmd *staff.UpdateStaffCommand) (*staff.Staff, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
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

	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fmt.Errorf("updating staff member: %w", err)
	}
	return m, nil
}

func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&staff.Staff{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting staff member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}
