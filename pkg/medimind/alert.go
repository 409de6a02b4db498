package medimind

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"medimind.xyz/medimind-service/pkg/common"
	"medimind.xyz/medimind-service/pkg/models"
)

type CaregiverAlert struct {
	ID          uint                 `json:"id"`
	ElderID     uint                 `json:"elder_id"`
	CaregiverID uint                 `json:"caregiver_id"`
	Type        models.AlertType     `json:"type"`
	Message     string               `json:"message"`
	Priority    models.AlertPriority `json:"priority"`
	ReadStatus  bool                 `json:"read_status"`
	CreatedAt   time.Time            `json:"created_at"`
	ElderName   string               `json:"elder_name"`
}

type vitalRange struct {
	min float64
	max float64
}

// Built-in normal ranges for vital types whose values are plain numbers.
// Readings of other types, or non-numeric values, are stored without an
// alert check.
var vitalRanges = map[string]vitalRange{
	"heart_rate":  {min: 40, max: 120},
	"blood_sugar": {min: 60, max: 180},
	"temperature": {min: 35, max: 38.5},
}

func (m *MediMind) createAlert(input *models.Alert) (uint, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	alert := models.Alert{
		ElderID:     input.ElderID,
		CaregiverID: input.CaregiverID,
		Type:        input.Type,
		Message:     input.Message,
		Priority:    input.Priority,
		CreatedAt:   time.Now(),
	}

	if err := m.Db.Conn.Create(&alert).Error; err != nil {
		return 0, err
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))
	return alert.ID, nil
}

func (m *MediMind) unreadForCaregiver(caregiverID uint) ([]CaregiverAlert, error) {
	var alerts []CaregiverAlert
	err := m.Db.Conn.Model(&models.Alert{}).
		Select("alerts.*, users.name AS elder_name").
		Joins("JOIN users ON alerts.elder_id = users.id").
		Where("alerts.caregiver_id = ? AND alerts.read_status = ?", caregiverID, false).
		Order("alerts.created_at DESC").
		Scan(&alerts).Error
	return alerts, err
}

func (m *MediMind) markAlertRead(alertID uint) error {
	return m.Db.Conn.Model(&models.Alert{}).
		Where("id = ?", alertID).
		Update("read_status", true).Error
}

// fanOutToCaregivers stores one alert per approved caregiver of the elder.
// An elder with no approved connections produces no alerts.
func (m *MediMind) fanOutToCaregivers(elderID uint, alertType models.AlertType, priority models.AlertPriority, message string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	var caregiverIDs []uint
	err := m.Db.Conn.Model(&models.Connection{}).
		Where("elder_id = ? AND status = ?", elderID, models.ConnectionStatusApproved).
		Pluck("requester_id", &caregiverIDs).Error
	if err != nil {
		return err
	}

	now := time.Now()
	for _, caregiverID := range caregiverIDs {
		alert := models.Alert{
			ElderID:     elderID,
			CaregiverID: caregiverID,
			Type:        alertType,
			Message:     message,
			Priority:    priority,
			CreatedAt:   now,
		}

		logger.Info("Alert found", zap.Reflect("alert", alert))

		if err := m.Db.Conn.Create(&alert).Error; err != nil {
			return err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))
	}

	return nil
}

func (m *MediMind) checkAndStoreVitalAlerts(elderID uint, log *models.HealthLog) error {
	bounds, known := vitalRanges[log.LogType]
	if !known {
		return nil
	}

	value, err := strconv.ParseFloat(log.Value, 64)
	if err != nil {
		// free-form reading such as "120/80", nothing to threshold
		return nil
	}

	if value >= bounds.min && value <= bounds.max {
		return nil
	}

	message := fmt.Sprintf("%s reading %s %s outside normal range %.1f-%.1f",
		log.LogType, log.Value, log.Unit, bounds.min, bounds.max)

	return m.fanOutToCaregivers(elderID, models.AlertTypeAbnormalVital, models.AlertPriorityHigh, message)
}

func (m *MediMind) notifySkippedDose(elderID uint, medication *models.Medication) error {
	message := fmt.Sprintf("Dose of %s (%s) was skipped", medication.Name, medication.Dosage)
	return m.fanOutToCaregivers(elderID, models.AlertTypeMissedMedication, models.AlertPriorityMedium, message)
}

type IAlertImpl struct {
	medimind *MediMind
}

func (ia *IAlertImpl) Create(input *models.Alert) (uint, error) {
	return ia.medimind.createAlert(input)
}

func (ia *IAlertImpl) UnreadForCaregiver(caregiverID uint) ([]CaregiverAlert, error) {
	return ia.medimind.unreadForCaregiver(caregiverID)
}

func (ia *IAlertImpl) MarkRead(alertID uint) error {
	return ia.medimind.markAlertRead(alertID)
}

func (ia *IAlertImpl) CheckAndStoreVitalAlerts(elderID uint, log *models.HealthLog) error {
	return ia.medimind.checkAndStoreVitalAlerts(elderID, log)
}

func (ia *IAlertImpl) NotifySkippedDose(elderID uint, medication *models.Medication) error {
	return ia.medimind.notifySkippedDose(elderID, medication)
}

func (m *MediMind) GetIAlert() IAlert {
	return &IAlertImpl{medimind: m}
}
