package medimind

import (
	"time"

	"go.uber.org/zap"
	"medimind.xyz/medimind-service/pkg/common"
	"medimind.xyz/medimind-service/pkg/models"
)

const recentHealthLogLimit = 50

type LatestReading struct {
	LogType  string    `json:"log_type"`
	Value    string    `json:"value"`
	Unit     string    `json:"unit"`
	LoggedAt time.Time `json:"logged_at"`
}

func (m *MediMind) logHealth(input *models.HealthLog) (uint, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryHealth),
	)

	entry := models.HealthLog{
		UserID:   input.UserID,
		LogType:  input.LogType,
		Value:    input.Value,
		Unit:     input.Unit,
		Notes:    input.Notes,
		LoggedAt: time.Now(),
	}

	if err := m.Db.Conn.Create(&entry).Error; err != nil {
		return 0, err
	}

	logger.Info("Health data logged",
		zap.Uint("user_id", entry.UserID),
		zap.String("log_type", entry.LogType),
		zap.String("value", entry.Value))

	if m.Alert != nil {
		if err := m.Alert.CheckAndStoreVitalAlerts(entry.UserID, &entry); err != nil {
			logger.Warn("Vital alert check failed", zap.Error(err))
		}
	}

	return entry.ID, nil
}

func (m *MediMind) recentHealthLogs(userID uint) ([]models.HealthLog, error) {
	var logs []models.HealthLog
	err := m.Db.Conn.
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Limit(recentHealthLogLimit).
		Find(&logs).Error
	return logs, err
}

func (m *MediMind) latestReadings(userID uint) ([]LatestReading, error) {
	var readings []LatestReading
	err := m.Db.Conn.Model(&models.HealthLog{}).
		Select("log_type, value, unit, logged_at").
		Where(`user_id = ? AND logged_at = (
			SELECT MAX(h2.logged_at) FROM health_logs h2
			WHERE h2.user_id = health_logs.user_id
			AND h2.log_type = health_logs.log_type
		)`, userID).
		Scan(&readings).Error
	return readings, err
}

type IHealthImpl struct {
	medimind *MediMind
}

func (ih *IHealthImpl) Log(input *models.HealthLog) (uint, error) {
	return ih.medimind.logHealth(input)
}

func (ih *IHealthImpl) RecentLogs(userID uint) ([]models.HealthLog, error) {
	return ih.medimind.recentHealthLogs(userID)
}

func (ih *IHealthImpl) LatestReadings(userID uint) ([]LatestReading, error) {
	return ih.medimind.latestReadings(userID)
}

func (m *MediMind) GetIHealth() IHealth {
	return &IHealthImpl{medimind: m}
}
