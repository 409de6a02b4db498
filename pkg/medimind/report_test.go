package medimind

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medimind.xyz/medimind-service/pkg/common"
	"medimind.xyz/medimind-service/pkg/models"
	_ "medimind.xyz/medimind-service/pkg/testing"
)

func TestWeeklyReport(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)
	caregiver, _ := registerTestUser(t, core, models.RoleCaregiver)

	medID := addTestMedication(t, core, elder, caregiver.ID, "Atorvastatin", "21:00")

	_, err := core.Medication.MarkTaken(medID, elder.ID, models.MedicationLogStatusTaken)
	require.NoError(t, err)
	_, err = core.Medication.MarkTaken(medID, elder.ID, models.MedicationLogStatusTaken)
	require.NoError(t, err)
	_, err = core.Medication.MarkTaken(medID, elder.ID, models.MedicationLogStatusSkipped)
	require.NoError(t, err)

	// outside the trailing 7-day window, must not count
	stale := models.MedicationLog{
		MedicationID: medID,
		UserID:       elder.ID,
		Status:       models.MedicationLogStatusTaken,
		TakenAt:      time.Now().AddDate(0, 0, -8),
	}
	require.NoError(t, core.Db.Conn.Create(&stale).Error)

	_, err = core.Health.Log(&models.HealthLog{
		UserID: elder.ID, LogType: "heart_rate", Value: "70", Unit: "bpm",
	})
	require.NoError(t, err)

	for _, mood := range []string{"happy", "happy", "sad"} {
		_, err = core.Mood.Log(&models.MoodLog{UserID: elder.ID, Mood: mood})
		require.NoError(t, err)
	}

	report, err := core.Report.Weekly(elder.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.Medications.Total)
	assert.Equal(t, int64(2), report.Medications.Taken)
	assert.LessOrEqual(t, report.Medications.Taken, report.Medications.Total)

	assert.Equal(t, int64(1), report.HealthLogs.Count)

	moodCounts := map[string]int64{}
	for _, mc := range report.Mood {
		moodCounts[mc.Mood] = mc.Count
	}
	assert.Equal(t, int64(2), moodCounts["happy"])
	assert.Equal(t, int64(1), moodCounts["sad"])
}

func TestWeeklyReportEmpty(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)

	report, err := core.Report.Weekly(elder.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), report.Medications.Total)
	assert.Equal(t, int64(0), report.Medications.Taken)
	assert.Equal(t, int64(0), report.HealthLogs.Count)
	assert.Len(t, report.Mood, 0)
}

func TestMoodLogsCappedAtThirty(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)

	for range 35 {
		_, err := core.Mood.Log(&models.MoodLog{UserID: elder.ID, Mood: "calm"})
		require.NoError(t, err)
	}

	logs, err := core.Mood.RecentLogs(elder.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 30)
}
