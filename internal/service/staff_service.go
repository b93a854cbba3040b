package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/harborview/frontdesk/internal/domain"
	"github.com/harborview/frontdesk/internal/domain/staff"
)

type StaffService struct {
	repo     staff.Repository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewStaffService(repo staff.Repository, auditSvc *AuditService, log *zap.Logger) *StaffService {
	return &StaffService{repo: repo, auditSvc: auditSvc, log: log}
}

func (s *StaffService) CreateStaff(ctx context.Context, cmd *staff.CreateStaffCommand, requestID, ip string) (*staff.Staff, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, staff.ErrNameRequired
	}
	if !cmd.Role.IsValid() {
		return nil, staff.ErrInvalidRole
	}
	if cmd.CurrentStatus == "" {
		cmd.CurrentStatus = staff.StatusAvailable
	}
	if !cmd.CurrentStatus.IsValid() {
		return nil, staff.ErrInvalidStatus
	}

	m := &staff.Staff{
		ID:             domain.NewRecordID(domain.StaffIDPrefix),
		Name:           strings.TrimSpace(cmd.Name),
		Role:           cmd.Role,
		Specialization: cmd.Specialization,
		DepartmentID:   cmd.DepartmentID,
		Phone:          cmd.Phone,
		Email:          strings.ToLower(strings.TrimSpace(cmd.Email)),
		CurrentStatus:  cmd.CurrentStatus,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.log.Error("failed to create staff member", zap.Error(err))
		return nil, fmt.Errorf("creating staff member: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "create",
		ResourceType: "staff",
		ResourceID:   m.ID,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return m, nil
}

func (s *StaffService) GetStaff(ctx context.Context, id string) (*staff.Staff, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *StaffService) ListStaff(ctx context.Context, q *staff.ListStaffQuery) ([]*staff.Staff, error) {
	if q == nil {
		q = &staff.ListStaffQuery{}
	}
	if q.Role != nil && !q.Role.IsValid() {
		return nil, staff.ErrInvalidRole
	}
	if q.Status != nil && !q.Status.IsValid() {
		return nil, staff.ErrInvalidStatus
	}
	return s.repo.List(ctx, q)
}

func (s *StaffService) UpdateStaff(ctx context.Context, id string, cmd *staff.UpdateStaffCommand, requestID, ip string) (*staff.Staff, error) {
	if cmd.Role != nil && !cmd.Role.IsValid() {
		return nil, staff.ErrInvalidRole
	}
	if cmd.CurrentStatus != nil && !cmd.CurrentStatus.IsValid() {
		return nil, staff.ErrInvalidStatus
	}

	m, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "update",
		ResourceType: "staff",
		ResourceID:   id,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return m, nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, id string, requestID, ip string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "delete",
		ResourceType: "staff",
		ResourceID:   id,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return nil
}
