package appointment

import "time"

type Appointment struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	PatientID    string `gorm:"column:patient_id;type:varchar(50);not null;index" json:"patient_id"`
	DoctorID     string `gorm:"column:doctor_id;type:varchar(50);index" json:"doctor_id"`
	DepartmentID string `gorm:"column:department_id;type:varchar(50);index" json:"department_id"`

	DateTime     time.Time `gorm:"column:date_time;not null;index" json:"date_time"`
	DurationMins int       `gorm:"column:duration_mins;not null;default:30" json:"duration_mins"`
	Reason       string    `gorm:"column:reason;type:text" json:"reason"`
	Notes        string    `gorm:"column:notes;type:text" json:"notes"`
	Status       Status    `gorm:"column:status;type:varchar(30);not null;default:'scheduled';index" json:"status"`
}

func (Appointment) TableName() string {
	return "frontdesk.appointments"
}

func (a *Appointment) EndsAt() time.Time {
	return a.DateTime.Add(time.Duration(a.DurationMins) * time.Minute)
}

type CreateAppointmentCommand struct {
	PatientID    string
	DoctorID     string
	DepartmentID string
	DateTime     time.Time
	DurationMins int
	Reason       string
	Notes        string
	Status       Status
}

type UpdateAppointmentCommand struct {
	DateTime     *time.Time
	DurationMins *int
	Reason       *string
	Notes        *string
	DoctorID     *string
	DepartmentID *string
}

// ListAppointmentsQuery scopes the appointment list. When View is set the
// list is narrowed to the calendar window around Date (see rangefilter.go).
type ListAppointmentsQuery struct {
	PatientID    string
	DepartmentID string
	Status       *Status
	View         View
	Date         time.Time
}
