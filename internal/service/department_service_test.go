package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/staff"
)

func TestDepartmentListDetailed(t *testing.T) {
	repo := &mockDepartmentRepo{
		ListFunc: func(ctx context.Context) ([]*department.Department, error) {
			return []*department.Department{
				{ID: "DEPT-1", Name: "Emergency", AvgWaitMins: 25, ActiveQueue: []department.QueueEntry{
					{Number: 1, Name: "Walk-in", WaitMins: 10},
					{Number: 2, Name: "Walk-in", WaitMins: 20},
					{Number: 3, Name: "Walk-in", WaitMins: 30},
					{Number: 4, Name: "Walk-in", WaitMins: 40},
				}},
				{ID: "DEPT-2", Name: "Pediatrics", AvgWaitMins: 10},
			}, nil
		},
	}
	members := &mockStaffRepo{
		ListFunc: func(ctx context.Context, q *staff.ListStaffQuery) ([]*staff.Staff, error) {
			return []*staff.Staff{
				{ID: "STF-1", DepartmentID: "DEPT-1", CurrentStatus: staff.StatusAvailable},
				{ID: "STF-2", DepartmentID: "DEPT-1", CurrentStatus: staff.StatusBusy},
				{ID: "STF-3", DepartmentID: "DEPT-2", CurrentStatus: staff.StatusAvailable},
			}, nil
		},
	}
	auditSvc, _ := newTestAudit()
	defer auditSvc.Shutdown()
	svc := NewDepartmentService(repo, members, auditSvc, testCollector, zap.NewNop())

	details, err := svc.ListDetailed(context.Background())
	if err != nil {
		t.Fatalf("ListDetailed: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("got %d details, want 2", len(details))
	}

	emergency := details[0]
	if emergency.QueueLength != 4 || emergency.QueueLoad != department.QueueLoadModerate {
		t.Errorf("queue = %d/%s, want 4/moderate", emergency.QueueLength, emergency.QueueLoad)
	}
	if emergency.StaffCount != 2 || emergency.AvailableStaff != 1 {
		t.Errorf("staffing = %d/%d, want 2 total 1 available", emergency.StaffCount, emergency.AvailableStaff)
	}

	pediatrics := details[1]
	if pediatrics.QueueLength != 0 || pediatrics.QueueLoad != department.QueueLoadNone {
		t.Errorf("empty queue = %d/%s, want 0/none", pediatrics.QueueLength, pediatrics.QueueLoad)
	}
}

func TestCreateDepartmentRequiresName(t *testing.T) {
	auditSvc, _ := newTestAudit()
	defer auditSvc.Shutdown()
	svc := NewDepartmentService(&mockDepartmentRepo{}, &mockStaffRepo{}, auditSvc, testCollector, zap.NewNop())

	_, err := svc.CreateDepartment(context.Background(), &department.CreateDepartmentCommand{Name: "  "}, "", "")
	if !errors.Is(err, department.ErrNameRequired) {
		t.Errorf("err = %v, want ErrNameRequired", err)
	}
}
