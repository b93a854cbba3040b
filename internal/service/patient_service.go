package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/harborview/frontdesk/internal/domain"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/pkg/metrics"
)

type PatientService struct {
	repo      patient.Repository
	auditSvc  *AuditService
	collector *metrics.Collector
	log       *zap.Logger
}

func NewPatientService(repo patient.Repository, auditSvc *AuditService, collector *metrics.Collector, log *zap.Logger) *PatientService {
	return &PatientService{
		repo:      repo,
		auditSvc:  auditSvc,
		collector: collector,
		log:       log,
	}
}

func (s *PatientService) Register(ctx context.Context, cmd *patient.CreatePatientCommand, requestID, ip string) (*patient.Patient, error) {
	if err := validateCreatePatient(cmd); err != nil {
		return nil, err
	}

	p := &patient.Patient{
		ID:                 domain.NewRecordID(domain.PatientIDPrefix),
		Name:               strings.TrimSpace(cmd.Name),
		DateOfBirth:        cmd.DateOfBirth,
		Gender:             cmd.Gender,
		BloodType:          cmd.BloodType,
		Phone:              strings.TrimSpace(cmd.Phone),
		Email:              strings.ToLower(strings.TrimSpace(cmd.Email)),
		Address:            cmd.Address,
		Allergies:          cmd.Allergies,
		EmergencyContact:   cmd.EmergencyContact,
		MedicalHistory:     cmd.MedicalHistory,
		CurrentMedications: cmd.CurrentMedications,
		CreatedAt:          time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("failed to register patient", zap.Error(err))
		return nil, fmt.Errorf("registering patient: %w", err)
	}

	s.collector.PatientsRegisteredTotal.Inc()
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "create",
		ResourceType: "patient",
		ResourceID:   p.ID,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return p, nil
}

func (s *PatientService) GetPatient(ctx context.Context, id string) (*patient.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientService) ListPatients(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
	if q == nil {
		q = &patient.ListPatientsQuery{}
	}
	return s.repo.List(ctx, q)
}

func (s *PatientService) UpdatePatient(ctx context.Context, id string, cmd *patient.UpdatePatientCommand, requestID, ip string) (*patient.Patient, error) {
	if cmd.Gender != nil && !cmd.Gender.IsValid() {
		return nil, patient.ErrInvalidGender
	}
	if cmd.BloodType != nil && !cmd.BloodType.IsValid() {
		return nil, patient.ErrInvalidBloodType
	}
	if cmd.DateOfBirth != nil && cmd.DateOfBirth.After(time.Now()) {
		return nil, patient.ErrInvalidDateOfBirth
	}

	p, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "update",
		ResourceType: "patient",
		ResourceID:   id,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return p, nil
}

func (s *PatientService) DeletePatient(ctx context.Context, id string, requestID, ip string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "delete",
		ResourceType: "patient",
		ResourceID:   id,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return nil
}

func validateCreatePatient(cmd *patient.CreatePatientCommand) error {
	var fields []string

	if strings.TrimSpace(cmd.Name) == "" {
		fields = append(fields, "name is required")
	}
	if cmd.DateOfBirth.IsZero() {
		fields = append(fields, "date_of_birth is required")
	} else if cmd.DateOfBirth.After(time.Now()) {
		fields = append(fields, "date_of_birth cannot be in the future")
	}
	if !cmd.Gender.IsValid() {
		fields = append(fields, "gender must be one of male, female, other, unknown")
	}
	if cmd.BloodType != "" && !cmd.BloodType.IsValid() {
		fields = append(fields, "blood_type is not a recognized blood type")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
