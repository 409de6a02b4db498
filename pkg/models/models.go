package models

import (
	"time"

	"gorm.io/datatypes"
)

type Role string

const (
	RoleElderly   Role = "elderly"
	RoleCaregiver Role = "caregiver"
	RoleDoctor    Role = "doctor"
)

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusApproved ConnectionStatus = "approved"
)

type MedicationLogStatus string

const (
	MedicationLogStatusTaken   MedicationLogStatus = "taken"
	MedicationLogStatusSkipped MedicationLogStatus = "skipped"
)

type AlertType string

const (
	AlertTypeMissedMedication AlertType = "missed_medication"
	AlertTypeAbnormalVital    AlertType = "abnormal_vital"
)

type AlertPriority string

const (
	AlertPriorityLow    AlertPriority = "low"
	AlertPriorityMedium AlertPriority = "medium"
	AlertPriorityHigh   AlertPriority = "high"
)

type User struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Name             string  `json:"name"`
	Email            string  `gorm:"uniqueIndex" json:"email"`
	Password         string  `json:"-"`
	Role             Role    `gorm:"type:varchar(20);check:role IN ('elderly','caregiver','doctor')" json:"role"`
	Phone            string  `json:"phone"`
	RegistrationCode *string `gorm:"index" json:"registration_code"`
	DOB              string  `gorm:"column:dob" json:"dob"`
	Gender           string  `json:"gender"`
	EmergencyContact string  `json:"emergency_contact"`

	Medications []Medication `gorm:"foreignKey:UserID" json:"-"`
	HealthLogs  []HealthLog  `gorm:"foreignKey:UserID" json:"-"`
	MoodLogs    []MoodLog    `gorm:"foreignKey:UserID" json:"-"`
}

// Connection links a caregiver or doctor (the requester) to an elder.
// The composite unique index means the insert itself is the duplicate
// check, so two concurrent requests for the same pair cannot both land.
type Connection struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	ElderID      uint             `gorm:"uniqueIndex:idx_connection_pair" json:"elder_id"`
	RequesterID  uint             `gorm:"uniqueIndex:idx_connection_pair" json:"requester_id"`
	Relationship string           `json:"relationship"`
	Status       ConnectionStatus `gorm:"type:varchar(20);check:status IN ('pending','approved')" json:"status"`
}

type Medication struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	UserID       uint                        `gorm:"index" json:"user_id"`
	Name         string                      `json:"name"`
	Dosage       string                      `json:"dosage"`
	Frequency    string                      `json:"frequency"`
	Time         string                      `json:"time"`
	Days         datatypes.JSONSlice[string] `json:"days"`
	Timing       string                      `json:"timing"`
	Notification bool                        `json:"notification"`
	AddedBy      uint                        `json:"added_by"`

	Logs []MedicationLog `gorm:"foreignKey:MedicationID" json:"-"`
}

type MedicationLog struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	MedicationID uint                `gorm:"index" json:"medication_id"`
	UserID       uint                `gorm:"index" json:"user_id"`
	Status       MedicationLogStatus `gorm:"type:varchar(20);check:status IN ('taken','skipped')" json:"status"`
	TakenAt      time.Time           `json:"taken_at"`
}

type HealthLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"index" json:"user_id"`
	LogType  string    `json:"log_type"`
	Value    string    `json:"value"`
	Unit     string    `json:"unit"`
	Notes    string    `json:"notes"`
	LoggedAt time.Time `json:"logged_at"`
}

type MoodLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"index" json:"user_id"`
	Mood     string    `json:"mood"`
	Notes    string    `json:"notes"`
	LoggedAt time.Time `json:"logged_at"`
}

type Alert struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	ElderID     uint          `gorm:"index" json:"elder_id"`
	CaregiverID uint          `gorm:"index" json:"caregiver_id"`
	Type        AlertType     `gorm:"type:varchar(30)" json:"type"`
	Message     string        `json:"message"`
	Priority    AlertPriority `gorm:"type:varchar(10)" json:"priority"`
	ReadStatus  bool          `json:"read_status"`
	CreatedAt   time.Time     `json:"created_at"`
}
