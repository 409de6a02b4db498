package medimind

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"medimind.xyz/medimind-service/pkg/common"
	"medimind.xyz/medimind-service/pkg/models"
)

const recentAdherenceLimit = 100

type AdherenceEntry struct {
	ID           uint                       `json:"id"`
	MedicationID uint                       `json:"medication_id"`
	UserID       uint                       `json:"user_id"`
	Status       models.MedicationLogStatus `json:"status"`
	TakenAt      time.Time                  `json:"taken_at"`
	Name         string                     `json:"name"`
	Dosage       string                     `json:"dosage"`
	Time         string                     `json:"time"`
}

type TodayMedication struct {
	ID           uint                        `json:"id"`
	UserID       uint                        `json:"user_id"`
	Name         string                      `json:"name"`
	Dosage       string                      `json:"dosage"`
	Frequency    string                      `json:"frequency"`
	Time         string                      `json:"time"`
	Days         datatypes.JSONSlice[string] `json:"days"`
	Timing       string                      `json:"timing"`
	Notification bool                        `json:"notification"`
	AddedBy      uint                        `json:"added_by"`
	TakenToday   int64                       `json:"taken_today"`
}

func (m *MediMind) addMedication(input *models.Medication) (uint, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMedication),
	)

	if err := m.Db.Conn.Create(input).Error; err != nil {
		return 0, err
	}

	logger.Info("Medication added",
		zap.Uint("medication_id", input.ID),
		zap.Uint("user_id", input.UserID),
		zap.Uint("added_by", input.AddedBy))

	return input.ID, nil
}

func (m *MediMind) listMedications(userID uint) ([]models.Medication, error) {
	var medications []models.Medication
	err := m.Db.Conn.
		Where("user_id = ?", userID).
		Order("time").
		Find(&medications).Error
	return medications, err
}

func (m *MediMind) updateMedication(id uint, input *models.Medication) error {
	return m.Db.Conn.Model(&models.Medication{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":         input.Name,
			"dosage":       input.Dosage,
			"frequency":    input.Frequency,
			"time":         input.Time,
			"days":         input.Days,
			"timing":       input.Timing,
			"notification": input.Notification,
		}).Error
}

func (m *MediMind) deleteMedication(id uint) error {
	return m.Db.Conn.Delete(&models.Medication{}, id).Error
}

func (m *MediMind) markTaken(medicationID uint, userID uint, status models.MedicationLogStatus) (uint, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMedication),
	)

	entry := models.MedicationLog{
		MedicationID: medicationID,
		UserID:       userID,
		Status:       status,
		TakenAt:      time.Now(),
	}

	if err := m.Db.Conn.Create(&entry).Error; err != nil {
		return 0, err
	}

	logger.Info("Adherence logged",
		zap.Uint("medication_id", medicationID),
		zap.Uint("user_id", userID),
		zap.String("status", string(status)))

	if status == models.MedicationLogStatusSkipped && m.Alert != nil {
		var medication models.Medication
		if err := m.Db.Conn.First(&medication, medicationID).Error; err == nil {
			if err := m.Alert.NotifySkippedDose(userID, &medication); err != nil {
				logger.Warn("Skipped-dose alert fan-out failed", zap.Error(err))
			}
		}
	}

	return entry.ID, nil
}

func (m *MediMind) recentAdherenceLogs(userID uint) ([]AdherenceEntry, error) {
	var entries []AdherenceEntry
	err := m.Db.Conn.Model(&models.MedicationLog{}).
		Select("medication_logs.*, medications.name, medications.dosage, medications.time").
		Joins("JOIN medications ON medication_logs.medication_id = medications.id").
		Where("medication_logs.user_id = ?", userID).
		Order("medication_logs.taken_at DESC").
		Limit(recentAdherenceLimit).
		Scan(&entries).Error
	return entries, err
}

func (m *MediMind) todaySchedule(userID uint) ([]TodayMedication, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var medications []TodayMedication
	err := m.Db.Conn.Model(&models.Medication{}).
		Select(`medications.*, (
			SELECT COUNT(*) FROM medication_logs
			WHERE medication_logs.medication_id = medications.id
			AND medication_logs.user_id = medications.user_id
			AND medication_logs.taken_at >= ?
			AND medication_logs.status = 'taken'
		) AS taken_today`, startOfDay).
		Where("medications.user_id = ?", userID).
		Order("medications.time").
		Scan(&medications).Error
	return medications, err
}

type IMedicationImpl struct {
	medimind *MediMind
}

func (im *IMedicationImpl) Add(input *models.Medication) (uint, error) {
	return im.medimind.addMedication(input)
}

func (im *IMedicationImpl) ListForUser(userID uint) ([]models.Medication, error) {
	return im.medimind.listMedications(userID)
}

func (im *IMedicationImpl) Update(id uint, input *models.Medication) error {
	return im.medimind.updateMedication(id, input)
}

func (im *IMedicationImpl) Delete(id uint) error {
	return im.medimind.deleteMedication(id)
}

func (im *IMedicationImpl) MarkTaken(medicationID uint, userID uint, status models.MedicationLogStatus) (uint, error) {
	return im.medimind.markTaken(medicationID, userID, status)
}

func (im *IMedicationImpl) RecentLogs(userID uint) ([]AdherenceEntry, error) {
	return im.medimind.recentAdherenceLogs(userID)
}

func (im *IMedicationImpl) TodaySchedule(userID uint) ([]TodayMedication, error) {
	return im.medimind.todaySchedule(userID)
}

func (m *MediMind) GetIMedication() IMedication {
	return &IMedicationImpl{medimind: m}
}
