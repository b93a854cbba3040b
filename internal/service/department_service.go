package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/harborview/frontdesk/internal/domain"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/staff"
	"github.com/harborview/frontdesk/pkg/metrics"
)

type DepartmentService struct {
	repo      department.Repository
	staffRepo staff.Repository
	auditSvc  *AuditService
	collector *metrics.Collector
	log       *zap.Logger
}

func NewDepartmentService(repo department.Repository, staffRepo staff.Repository, auditSvc *AuditService, collector *metrics.Collector, log *zap.Logger) *DepartmentService {
	return &DepartmentService{
		repo:      repo,
		staffRepo: staffRepo,
		auditSvc:  auditSvc,
		collector: collector,
		log:       log,
	}
}

// DepartmentDetail is a department joined with the staffing figures the
// queue-monitoring screen shows next to each card.
type DepartmentDetail struct {
	*department.Department
	QueueLength    int                  `json:"queue_length"`
	QueueLoad      department.QueueLoad `json:"queue_load"`
	StaffCount     int                  `json:"staff_count"`
	AvailableStaff int                  `json:"available_staff"`
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, cmd *department.CreateDepartmentCommand, requestID, ip string) (*department.Department, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, department.ErrNameRequired
	}

	d := &department.Department{
		ID:          domain.NewRecordID(domain.DepartmentIDPrefix),
		Name:        strings.TrimSpace(cmd.Name),
		Location:    cmd.Location,
		Head:        cmd.Head,
		Description: cmd.Description,
		Phone:       cmd.Phone,
		Email:       cmd.Email,
		AvgWaitMins: cmd.AvgWaitMins,
		ActiveQueue: []department.QueueEntry{},
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		s.log.Error("failed to create department", zap.Error(err))
		return nil, fmt.Errorf("creating department: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "create",
		ResourceType: "department",
		ResourceID:   d.ID,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return d, nil
}

func (s *DepartmentService) GetDepartment(ctx context.Context, id string) (*department.Department, error) {
	return s.repo.GetByID(ctx, id)
}

// ListDetailed loads departments and staff together and joins staffing
// counts onto each department.
func (s *DepartmentService) ListDetailed(ctx context.Context) ([]*DepartmentDetail, error) {
	var (
		departments []*department.Department
		staffList   []*staff.Staff
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		departments, err = s.repo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		staffList, err = s.staffRepo.List(gctx, &staff.ListStaffQuery{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading department data: %w", err)
	}

	total := make(map[string]int, len(departments))
	available := make(map[string]int, len(departments))
	for _, m := range staffList {
		total[m.DepartmentID]++
		if m.CurrentStatus == staff.StatusAvailable {
			available[m.DepartmentID]++
		}
	}

	details := make([]*DepartmentDetail, 0, len(departments))
	for _, d := range departments {
		s.collector.QueueLength.WithLabelValues(d.Name).Set(float64(len(d.ActiveQueue)))
		details = append(details, &DepartmentDetail{
			Department:     d,
			QueueLength:    len(d.ActiveQueue),
			QueueLoad:      d.Load(),
			StaffCount:     total[d.ID],
			AvailableStaff: available[d.ID],
		})
	}

	return details, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id string, cmd *department.UpdateDepartmentCommand, requestID, ip string) (*department.Department, error) {
	d, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "update",
		ResourceType: "department",
		ResourceID:   id,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return d, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id string, requestID, ip string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "delete",
		ResourceType: "department",
		ResourceID:   id,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return nil
}
