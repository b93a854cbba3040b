package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record ID prefixes. IDs keep the historical wire format
// "PREFIX-<epochMillis>" so existing records resolve unchanged.
const (
	PatientIDPrefix     = "PAT"
	AppointmentIDPrefix = "APT"
	DepartmentIDPrefix  = "DEPT"
	StaffIDPrefix       = "STF"
)

// NewRecordID mints an id in the historical format. Creation time is carried
// on the record's CreatedAt field; the embedded millis exist only for
// compatibility with records created by the old front-desk client.
func NewRecordID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}

// CreatedFromID recovers the creation instant embedded in a legacy id.
// Returns false for ids that do not carry an epoch-millis suffix.
func CreatedFromID(id string) (time.Time, bool) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

type AuditAction string

const (
	ActionCreate AuditAction = "create"
	ActionUpdate AuditAction = "update"
	ActionDelete AuditAction = "delete"
)

// AuditLog records a mutation of a front-desk record. There is no user model
// at the front desk, so entries identify the caller by request id and IP only.
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OccurredAt time.Time `gorm:"autoCreateTime;index"`

	Action       AuditAction `gorm:"column:action;type:varchar(20);not null;index"`
	ResourceType string      `gorm:"column:resource_type;type:varchar(50);not null;index"`
	ResourceID   string      `gorm:"column:resource_id;type:varchar(50);index"`

	RequestID string `gorm:"column:request_id;type:varchar(50);index"`
	IPAddress string `gorm:"column:ip_address;type:varchar(45)"` // Supports IPv6

	Changes string `gorm:"column:changes;type:jsonb"`
}

func (AuditLog) TableName() string {
	return "audit.logs"
}
