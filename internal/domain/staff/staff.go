package staff

import "time"

type Role string

const (
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleTechnician   Role = "technician"
	RoleReceptionist Role = "receptionist"
	RoleAdmin        Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleDoctor, RoleNurse, RoleTechnician, RoleReceptionist, RoleAdmin:
		return true
	}
	return false
}

type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "available"
	StatusBusy        AvailabilityStatus = "busy"
	StatusUnavailable AvailabilityStatus = "unavailable"
	StatusOffDuty     AvailabilityStatus = "off-duty"
)

func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBusy, StatusUnavailable, StatusOffDuty:
		return true
	}
	return false
}

type Staff struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Name           string             `gorm:"column:name;type:varchar(200);not null;index" json:"name"`
	Role           Role               `gorm:"column:role;type:varchar(30);not null;index" json:"role"`
	Specialization string             `gorm:"column:specialization;type:varchar(200)" json:"specialization"`
	DepartmentID   string             `gorm:"column:department_id;type:varchar(50);index" json:"department_id"`
	Phone          string             `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Email          string             `gorm:"column:email;type:varchar(255)" json:"email"`
	CurrentStatus  AvailabilityStatus `gorm:"column:current_status;type:varchar(20);not null;default:'available';index" json:"current_status"`
}

func (Staff) TableName() string {
	return "frontdesk.staff"
}

type CreateStaffCommand struct {
	Name           string
	Role           Role
	Specialization string
	DepartmentID   string
	Phone          string
	Email          string
	CurrentStatus  AvailabilityStatus
}

type UpdateStaffCommand struct {
	Name           *string
	Role           *Role
	Specialization *string
	DepartmentID   *string
	Phone          *string
	Email          *string
	CurrentStatus  *AvailabilityStatus
}

// ListStaffQuery filters the staff directory.
type ListStaffQuery struct {
	DepartmentID string
	Role         *Role
	Status       *AvailabilityStatus
}
