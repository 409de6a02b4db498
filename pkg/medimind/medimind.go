package medimind

import (
	"errors"

	"medimind.xyz/medimind-service/pkg/db"
	"medimind.xyz/medimind-service/pkg/models"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid registration code")
	ErrSelfConnection     = errors.New("cannot connect to yourself")
	ErrAlreadyConnected   = errors.New("already connected or pending")
	ErrNotFound           = errors.New("not found")
)

type IAccount interface {
	Register(input *RegisterInput) (*RegisterResult, error)
	Login(email string, password string) (*LoginResult, error)
}

type IConnection interface {
	Connect(requesterID uint, targetCode string, relationship string) (*ConnectResult, error)
	PendingRequests(elderID uint) ([]PendingRequest, error)
	Approve(connectionID uint) error
	Reject(connectionID uint) error
	ApprovedElders(requesterID uint) ([]ElderSummary, error)
	HasApprovedConnection(requesterID uint) (bool, error)
}

type IMedication interface {
	Add(input *models.Medication) (uint, error)
	ListForUser(userID uint) ([]models.Medication, error)
	Update(id uint, input *models.Medication) error
	Delete(id uint) error
	MarkTaken(medicationID uint, userID uint, status models.MedicationLogStatus) (uint, error)
	RecentLogs(userID uint) ([]AdherenceEntry, error)
	TodaySchedule(userID uint) ([]TodayMedication, error)
}

type IHealth interface {
	Log(input *models.HealthLog) (uint, error)
	RecentLogs(userID uint) ([]models.HealthLog, error)
	LatestReadings(userID uint) ([]LatestReading, error)
}

type IMood interface {
	Log(input *models.MoodLog) (uint, error)
	RecentLogs(userID uint) ([]models.MoodLog, error)
}

type IAlert interface {
	Create(input *models.Alert) (uint, error)
	UnreadForCaregiver(caregiverID uint) ([]CaregiverAlert, error)
	MarkRead(alertID uint) error
	CheckAndStoreVitalAlerts(elderID uint, log *models.HealthLog) error
	NotifySkippedDose(elderID uint, medication *models.Medication) error
}

type IReport interface {
	Weekly(userID uint) (*WeeklyReport, error)
}

type MediMind struct {
	Db         db.DB
	Account    IAccount
	Connection IConnection
	Medication IMedication
	Health     IHealth
	Mood       IMood
	Alert      IAlert
	Report     IReport
}

type ServiceOpts struct {
	Account    IAccount
	Connection IConnection
	Medication IMedication
	Health     IHealth
	Mood       IMood
	Alert      IAlert
	Report     IReport
}

func (m *MediMind) WithServices(opts ServiceOpts) *MediMind {
	if opts.Account != nil {
		m.Account = opts.Account
	}
	if opts.Connection != nil {
		m.Connection = opts.Connection
	}
	if opts.Medication != nil {
		m.Medication = opts.Medication
	}
	if opts.Health != nil {
		m.Health = opts.Health
	}
	if opts.Mood != nil {
		m.Mood = opts.Mood
	}
	if opts.Alert != nil {
		m.Alert = opts.Alert
	}
	if opts.Report != nil {
		m.Report = opts.Report
	}
	return m
}

func (m *MediMind) WithAllServices() *MediMind {
	return m.WithServices(ServiceOpts{
		Account:    m.GetIAccount(),
		Connection: m.GetIConnection(),
		Medication: m.GetIMedication(),
		Health:     m.GetIHealth(),
		Mood:       m.GetIMood(),
		Alert:      m.GetIAlert(),
		Report:     m.GetIReport(),
	})
}
