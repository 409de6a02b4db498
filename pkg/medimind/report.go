package medimind

import (
	"time"

	"medimind.xyz/medimind-service/pkg/models"
)

type WeeklyMedicationSummary struct {
	Total int64 `json:"total"`
	Taken int64 `json:"taken"`
}

type WeeklyHealthSummary struct {
	Count int64 `json:"count"`
}

type MoodCount struct {
	Mood  string `json:"mood"`
	Count int64  `json:"count"`
}

type WeeklyReport struct {
	Medications WeeklyMedicationSummary `json:"medications"`
	HealthLogs  WeeklyHealthSummary     `json:"healthLogs"`
	Mood        []MoodCount             `json:"mood"`
}

// weekly runs three independent aggregates over a trailing 7-day window.
// The reads are not wrapped in one transaction; a write landing between
// them can skew the combination, which matches the polled-summary
// contract of the endpoint.
func (m *MediMind) weekly(userID uint) (*WeeklyReport, error) {
	since := time.Now().AddDate(0, 0, -7)
	report := WeeklyReport{Mood: []MoodCount{}}

	err := m.Db.Conn.Model(&models.MedicationLog{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN status = 'taken' THEN 1 ELSE 0 END), 0) AS taken").
		Where("user_id = ? AND taken_at >= ?", userID, since).
		Scan(&report.Medications).Error
	if err != nil {
		return nil, err
	}

	err = m.Db.Conn.Model(&models.HealthLog{}).
		Select("COUNT(*) AS count").
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Scan(&report.HealthLogs).Error
	if err != nil {
		return nil, err
	}

	err = m.Db.Conn.Model(&models.MoodLog{}).
		Select("mood, COUNT(*) AS count").
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Group("mood").
		Scan(&report.Mood).Error
	if err != nil {
		return nil, err
	}

	return &report, nil
}

type IReportImpl struct {
	medimind *MediMind
}

func (ir *IReportImpl) Weekly(userID uint) (*WeeklyReport, error) {
	return ir.medimind.weekly(userID)
}

func (m *MediMind) GetIReport() IReport {
	return &IReportImpl{medimind: m}
}
