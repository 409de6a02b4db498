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

func TestLogHealthAndRecent(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)

	_, err := core.Health.Log(&models.HealthLog{
		UserID: elder.ID, LogType: "heart_rate", Value: "72", Unit: "bpm",
	})
	require.NoError(t, err)
	_, err = core.Health.Log(&models.HealthLog{
		UserID: elder.ID, LogType: "blood_pressure", Value: "120/80", Unit: "mmHg", Notes: "after walk",
	})
	require.NoError(t, err)

	logs, err := core.Health.RecentLogs(elder.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	// newest first
	assert.Equal(t, "blood_pressure", logs[0].LogType)
	assert.Equal(t, "after walk", logs[0].Notes)
	assert.False(t, logs[0].LoggedAt.IsZero())
}

func TestLatestReadingsPerType(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)

	now := time.Now()
	seed := []models.HealthLog{
		{UserID: elder.ID, LogType: "heart_rate", Value: "70", Unit: "bpm", LoggedAt: now.Add(-2 * time.Hour)},
		{UserID: elder.ID, LogType: "heart_rate", Value: "85", Unit: "bpm", LoggedAt: now.Add(-1 * time.Hour)},
		{UserID: elder.ID, LogType: "blood_sugar", Value: "110", Unit: "mg/dL", LoggedAt: now.Add(-3 * time.Hour)},
		{UserID: elder.ID, LogType: "blood_sugar", Value: "95", Unit: "mg/dL", LoggedAt: now.Add(-30 * time.Minute)},
	}
	for i := range seed {
		require.NoError(t, core.Db.Conn.Create(&seed[i]).Error)
	}

	readings, err := core.Health.LatestReadings(elder.ID)
	require.NoError(t, err)
	require.Len(t, readings, 2)

	byType := map[string]LatestReading{}
	for _, r := range readings {
		byType[r.LogType] = r
	}
	assert.Equal(t, "85", byType["heart_rate"].Value)
	assert.Equal(t, "95", byType["blood_sugar"].Value)
}

func TestAbnormalVitalFansOutAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)
	caregiver, _ := registerTestUser(t, core, models.RoleCaregiver)
	doctor, _ := registerTestUser(t, core, models.RoleDoctor)
	approveTestConnection(t, core, elder, caregiver)
	approveTestConnection(t, core, elder, doctor)

	_, err := core.Health.Log(&models.HealthLog{
		UserID: elder.ID, LogType: "heart_rate", Value: "150", Unit: "bpm",
	})
	require.NoError(t, err)

	for _, watcherID := range []uint{caregiver.ID, doctor.ID} {
		alerts, err := core.Alert.UnreadForCaregiver(watcherID)
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, models.AlertTypeAbnormalVital, alerts[0].Type)
		assert.Equal(t, models.AlertPriorityHigh, alerts[0].Priority)
		assert.Contains(t, alerts[0].Message, "heart_rate")
	}
}

func TestNormalVitalProducesNoAlert(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)
	caregiver, _ := registerTestUser(t, core, models.RoleCaregiver)
	approveTestConnection(t, core, elder, caregiver)

	_, err := core.Health.Log(&models.HealthLog{
		UserID: elder.ID, LogType: "heart_rate", Value: "72", Unit: "bpm",
	})
	require.NoError(t, err)

	// unknown types and non-numeric values never threshold
	_, err = core.Health.Log(&models.HealthLog{
		UserID: elder.ID, LogType: "weight", Value: "1000", Unit: "kg",
	})
	require.NoError(t, err)
	_, err = core.Health.Log(&models.HealthLog{
		UserID: elder.ID, LogType: "heart_rate", Value: "120/80", Unit: "bpm",
	})
	require.NoError(t, err)

	alerts, err := core.Alert.UnreadForCaregiver(caregiver.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 0)
}

func TestAbnormalVitalWithoutCaregivers(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)

	// no approved connections, so nothing to notify
	_, err := core.Health.Log(&models.HealthLog{
		UserID: elder.ID, LogType: "blood_sugar", Value: "300", Unit: "mg/dL",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, core.Db.Conn.Model(&models.Alert{}).
		Where("elder_id = ?", elder.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
