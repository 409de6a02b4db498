package medimind

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"medimind.xyz/medimind-service/pkg/common"
	"medimind.xyz/medimind-service/pkg/models"
	_ "medimind.xyz/medimind-service/pkg/testing"
)

func addTestMedication(t *testing.T, core *MediMind, elder *models.User, addedBy uint, name string, timeOfDay string) uint {
	t.Helper()

	id, err := core.Medication.Add(&models.Medication{
		UserID:       elder.ID,
		Name:         name,
		Dosage:       "10mg",
		Frequency:    "daily",
		Time:         timeOfDay,
		Days:         datatypes.NewJSONSlice([]string{"Mon", "Wed", "Fri"}),
		Timing:       "before_meal",
		Notification: true,
		AddedBy:      addedBy,
	})
	require.NoError(t, err)
	return id
}

func TestMedicationCRUD(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)
	caregiver, _ := registerTestUser(t, core, models.RoleCaregiver)

	addTestMedication(t, core, elder, caregiver.ID, "Metformin", "20:00")
	id := addTestMedication(t, core, elder, caregiver.ID, "Aspirin", "08:00")

	medications, err := core.Medication.ListForUser(elder.ID)
	require.NoError(t, err)
	require.Len(t, medications, 2)
	// ordered by time of day
	assert.Equal(t, "Aspirin", medications[0].Name)
	assert.Equal(t, "Metformin", medications[1].Name)
	assert.Equal(t, []string{"Mon", "Wed", "Fri"}, []string(medications[0].Days))

	err = core.Medication.Update(id, &models.Medication{
		Name:         "Aspirin",
		Dosage:       "20mg",
		Frequency:    "daily",
		Time:         "09:00",
		Days:         datatypes.NewJSONSlice([]string{"Tue"}),
		Timing:       "after_meal",
		Notification: false,
	})
	require.NoError(t, err)

	var updated models.Medication
	require.NoError(t, core.Db.Conn.First(&updated, id).Error)
	assert.Equal(t, "20mg", updated.Dosage)
	assert.Equal(t, []string{"Tue"}, []string(updated.Days))
	assert.False(t, updated.Notification)

	require.NoError(t, core.Medication.Delete(id))

	medications, err = core.Medication.ListForUser(elder.ID)
	require.NoError(t, err)
	assert.Len(t, medications, 1)
}

func TestMarkTakenCountsTodayOnly(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)
	caregiver, _ := registerTestUser(t, core, models.RoleCaregiver)

	medID := addTestMedication(t, core, elder, caregiver.ID, "Lisinopril", "07:30")
	otherID := addTestMedication(t, core, elder, caregiver.ID, "Vitamin D", "12:00")

	_, err := core.Medication.MarkTaken(medID, elder.ID, models.MedicationLogStatusTaken)
	require.NoError(t, err)
	_, err = core.Medication.MarkTaken(medID, elder.ID, models.MedicationLogStatusTaken)
	require.NoError(t, err)

	// a skipped dose today and a taken dose yesterday must not count
	_, err = core.Medication.MarkTaken(medID, elder.ID, models.MedicationLogStatusSkipped)
	require.NoError(t, err)
	yesterday := models.MedicationLog{
		MedicationID: medID,
		UserID:       elder.ID,
		Status:       models.MedicationLogStatusTaken,
		TakenAt:      time.Now().AddDate(0, 0, -1),
	}
	require.NoError(t, core.Db.Conn.Create(&yesterday).Error)

	schedule, err := core.Medication.TodaySchedule(elder.ID)
	require.NoError(t, err)
	require.Len(t, schedule, 2)

	byID := map[uint]TodayMedication{}
	for _, entry := range schedule {
		byID[entry.ID] = entry
	}
	assert.Equal(t, int64(2), byID[medID].TakenToday)
	assert.Equal(t, int64(0), byID[otherID].TakenToday)
}

func TestRecentAdherenceLogsJoinMedication(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)
	caregiver, _ := registerTestUser(t, core, models.RoleCaregiver)

	medID := addTestMedication(t, core, elder, caregiver.ID, "Warfarin", "18:00")

	_, err := core.Medication.MarkTaken(medID, elder.ID, models.MedicationLogStatusTaken)
	require.NoError(t, err)
	_, err = core.Medication.MarkTaken(medID, elder.ID, models.MedicationLogStatusSkipped)
	require.NoError(t, err)

	logs, err := core.Medication.RecentLogs(elder.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, entry := range logs {
		assert.Equal(t, "Warfarin", entry.Name)
		assert.Equal(t, "10mg", entry.Dosage)
		assert.Equal(t, medID, entry.MedicationID)
	}
}

func TestMarkSkippedNotifiesCaregivers(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)
	caregiver, _ := registerTestUser(t, core, models.RoleCaregiver)
	approveTestConnection(t, core, elder, caregiver)

	medID := addTestMedication(t, core, elder, caregiver.ID, "Insulin", "06:00")

	_, err := core.Medication.MarkTaken(medID, elder.ID, models.MedicationLogStatusSkipped)
	require.NoError(t, err)

	alerts, err := core.Alert.UnreadForCaregiver(caregiver.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeMissedMedication, alerts[0].Type)
	assert.Equal(t, models.AlertPriorityMedium, alerts[0].Priority)
	assert.Equal(t, elder.Name, alerts[0].ElderName)
	assert.Contains(t, alerts[0].Message, "Insulin")
}

func TestMarkTakenDoesNotNotify(t *testing.T) {
	common.SetTestLoggerNop()

	core := GetTestCoreWithMemorySqliteDialector(t)

	elder, _ := registerTestUser(t, core, models.RoleElderly)
	caregiver, _ := registerTestUser(t, core, models.RoleCaregiver)
	approveTestConnection(t, core, elder, caregiver)

	medID := addTestMedication(t, core, elder, caregiver.ID, "Insulin", "06:00")

	_, err := core.Medication.MarkTaken(medID, elder.ID, models.MedicationLogStatusTaken)
	require.NoError(t, err)

	alerts, err := core.Alert.UnreadForCaregiver(caregiver.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 0)
}
