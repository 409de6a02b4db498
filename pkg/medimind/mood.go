package medimind

import (
	"time"

	"go.uber.org/zap"
	"medimind.xyz/medimind-service/pkg/common"
	"medimind.xyz/medimind-service/pkg/models"
)

const recentMoodLogLimit = 30

func (m *MediMind) logMood(input *models.MoodLog) (uint, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMood),
	)

	entry := models.MoodLog{
		UserID:   input.UserID,
		Mood:     input.Mood,
		Notes:    input.Notes,
		LoggedAt: time.Now(),
	}

	if err := m.Db.Conn.Create(&entry).Error; err != nil {
		return 0, err
	}

	logger.Info("Mood logged",
		zap.Uint("user_id", entry.UserID),
		zap.String("mood", entry.Mood))

	return entry.ID, nil
}

func (m *MediMind) recentMoodLogs(userID uint) ([]models.MoodLog, error) {
	var logs []models.MoodLog
	err := m.Db.Conn.
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Limit(recentMoodLogLimit).
		Find(&logs).Error
	return logs, err
}

type IMoodImpl struct {
	medimind *MediMind
}

func (im *IMoodImpl) Log(input *models.MoodLog) (uint, error) {
	return im.medimind.logMood(input)
}

func (im *IMoodImpl) RecentLogs(userID uint) ([]models.MoodLog, error) {
	return im.medimind.recentMoodLogs(userID)
}

func (m *MediMind) GetIMood() IMood {
	return &IMoodImpl{medimind: m}
}
