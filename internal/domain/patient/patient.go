package patient

import (
	"time"
)

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUnknown:
		return true
	}
	return false
}

type BloodType string

const (
	BloodTypeAPos    BloodType = "A+"
	BloodTypeANeg    BloodType = "A-"
	BloodTypeBPos    BloodType = "B+"
	BloodTypeBNeg    BloodType = "B-"
	BloodTypeABPos   BloodType = "AB+"
	BloodTypeABNeg   BloodType = "AB-"
	BloodTypeOPos    BloodType = "O+"
	BloodTypeONeg    BloodType = "O-"
	BloodTypeUnknown BloodType = "unknown"
)

func (b BloodType) IsValid() bool {
	switch b {
	case BloodTypeAPos, BloodTypeANeg, BloodTypeBPos, BloodTypeBNeg,
		BloodTypeABPos, BloodTypeABNeg, BloodTypeOPos, BloodTypeONeg, BloodTypeUnknown:
		return true
	}
	return false
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// HistoryEntry is one line of a patient's medical history as captured at the
// front desk: a condition, when it was recorded, and free-form notes.
type HistoryEntry struct {
	Condition string    `json:"condition"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
	Type      string    `json:"type"`
}

type Medication struct {
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency"`
	StartDate time.Time `json:"start_date"`
}

type Patient struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Name        string    `gorm:"column:name;type:varchar(200);not null;index" json:"name"`
	DateOfBirth time.Time `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	Gender      Gender    `gorm:"column:gender;type:varchar(20);not null" json:"gender"`
	BloodType   BloodType `gorm:"column:blood_type;type:varchar(10)" json:"blood_type"`

	Phone   string `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Email   string `gorm:"column:email;type:varchar(255)" json:"email"`
	Address string `gorm:"column:address;type:text" json:"address"`

	Allergies          []string          `gorm:"column:allergies;serializer:json" json:"allergies"`
	EmergencyContact   *EmergencyContact `gorm:"column:emergency_contact;serializer:json" json:"emergency_contact,omitempty"`
	MedicalHistory     []HistoryEntry    `gorm:"column:medical_history;serializer:json" json:"medical_history"`
	CurrentMedications []Medication      `gorm:"column:current_medications;serializer:json" json:"current_medications"`
}

func (Patient) TableName() string {
	return "frontdesk.patients"
}

func (p *Patient) Age() int {
	now := time.Now()
	years := now.Year() - p.DateOfBirth.Year()
	if now.Month() < p.DateOfBirth.Month() ||
		(now.Month() == p.DateOfBirth.Month() && now.Day() < p.DateOfBirth.Day()) {
		years--
	}
	return years
}

type CreatePatientCommand struct {
	Name               string
	DateOfBirth        time.Time
	Gender             Gender
	BloodType          BloodType
	Phone              string
	Email              string
	Address            string
	Allergies          []string
	EmergencyContact   *EmergencyContact
	MedicalHistory     []HistoryEntry
	CurrentMedications []Medication
}

type UpdatePatientCommand struct {
	Name               *string
	DateOfBirth        *time.Time
	Gender             *Gender
	BloodType          *BloodType
	Phone              *string
	Email              *string
	Address            *string
	Allergies          *[]string
	EmergencyContact   *EmergencyContact
	MedicalHistory     *[]HistoryEntry
	CurrentMedications *[]Medication
}

// ListPatientsQuery filters the patient directory. Search matches name,
// phone, and email, mirroring the front-desk search box.
type ListPatientsQuery struct {
	Search string
}
