package medimind

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"medimind.xyz/medimind-service/pkg/common"
	"medimind.xyz/medimind-service/pkg/models"
	_ "medimind.xyz/medimind-service/pkg/testing"
)

func TestCreateAndReadAlert(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)
	caregiver, _ := registerTestUser(t, core, models.RoleCaregiver)

	alertID, err := core.Alert.Create(&models.Alert{
		ElderID:     elder.ID,
		CaregiverID: caregiver.ID,
		Type:        models.AlertTypeAbnormalVital,
		Message:     "manual check requested",
		Priority:    models.AlertPriorityLow,
	})
	require.NoError(t, err)

	alerts, err := core.Alert.UnreadForCaregiver(caregiver.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, alertID, alerts[0].ID)
	assert.Equal(t, elder.Name, alerts[0].ElderName)
	assert.False(t, alerts[0].ReadStatus)
	assert.False(t, alerts[0].CreatedAt.IsZero())
}

func TestMarkAlertReadRemovesFromUnread(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)
	caregiver, _ := registerTestUser(t, core, models.RoleCaregiver)

	alertID, err := core.Alert.Create(&models.Alert{
		ElderID:     elder.ID,
		CaregiverID: caregiver.ID,
		Type:        models.AlertTypeMissedMedication,
		Message:     "dose skipped",
		Priority:    models.AlertPriorityMedium,
	})
	require.NoError(t, err)

	require.NoError(t, core.Alert.MarkRead(alertID))

	alerts, err := core.Alert.UnreadForCaregiver(caregiver.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 0)

	// the row itself survives the flip
	var alert models.Alert
	require.NoError(t, core.Db.Conn.First(&alert, alertID).Error)
	assert.True(t, alert.ReadStatus)
}

func TestVitalAlertFanOut_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)
	caregiver, _ := registerTestUser(t, core, models.RoleCaregiver)
	approveTestConnection(t, core, elder, caregiver)

	require.NoError(t, core.Alert.CheckAndStoreVitalAlerts(elder.ID, &models.HealthLog{
		UserID: elder.ID, LogType: "temperature", Value: "39.2", Unit: "C",
	}))

	alerts, err := core.Alert.UnreadForCaregiver(caregiver.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "alert" &&
			lobj["msg"] == "Alert saved" &&
			lobj["alert"].(map[string]any)["Type"] == "abnormal_vital" {
			found = true
		}
	}
	assert.True(t, found, "expected an 'Alert saved' log entry with category alert")
}
