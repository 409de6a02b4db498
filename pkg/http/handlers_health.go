package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"gorm.io/datatypes"
	"medimind.xyz/medimind-service/pkg/models"
)

type MedicationRequest struct {
	ElderID      int      `json:"elderId"`
	Name         string   `json:"name"`
	Dosage       string   `json:"dosage"`
	Frequency    string   `json:"frequency"`
	Time         string   `json:"time"`
	Days         []string `json:"days"`
	Timing       string   `json:"timing"`
	Notification bool     `json:"notification"`
	AddedBy      int      `json:"addedBy"`
}

var medicationRequestSchema = z.Struct(z.Shape{
	"ElderID":      z.Int().Required(),
	"Name":         z.String().Required(),
	"Dosage":       z.String(),
	"Frequency":    z.String(),
	"Time":         z.String(),
	"Days":         z.Slice(z.String()),
	"Timing":       z.String(),
	"Notification": z.Bool(),
	"AddedBy":      z.Int().Required(),
})

func (rs *RestfulServer) AddMedication(c *gin.Context) {
	var req MedicationRequest
	if err := medicationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	id, err := rs.Core.Medication.Add(&models.Medication{
		UserID:       uint(req.ElderID),
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Time:         req.Time,
		Days:         datatypes.NewJSONSlice(req.Days),
		Timing:       req.Timing,
		Notification: req.Notification,
		AddedBy:      uint(req.AddedBy),
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medication added successfully", "medicationId": id})
}

func (rs *RestfulServer) ListMedications(c *gin.Context) {
	userID, ok := rs.paramID(c, "userId")
	if !ok {
		return
	}

	medications, err := rs.Core.Medication.ListForUser(userID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, medications)
}

type MedicationUpdateRequest struct {
	Name         string   `json:"name"`
	Dosage       string   `json:"dosage"`
	Frequency    string   `json:"frequency"`
	Time         string   `json:"time"`
	Days         []string `json:"days"`
	Timing       string   `json:"timing"`
	Notification bool     `json:"notification"`
}

var medicationUpdateRequestSchema = z.Struct(z.Shape{
	"Name":         z.String().Required(),
	"Dosage":       z.String(),
	"Frequency":    z.String(),
	"Time":         z.String(),
	"Days":         z.Slice(z.String()),
	"Timing":       z.String(),
	"Notification": z.Bool(),
})

func (rs *RestfulServer) UpdateMedication(c *gin.Context) {
	id, ok := rs.paramID(c, "id")
	if !ok {
		return
	}

	var req MedicationUpdateRequest
	if err := medicationUpdateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Core.Medication.Update(id, &models.Medication{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Time:         req.Time,
		Days:         datatypes.NewJSONSlice(req.Days),
		Timing:       req.Timing,
		Notification: req.Notification,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medication updated"})
}

func (rs *RestfulServer) DeleteMedication(c *gin.Context) {
	id, ok := rs.paramID(c, "id")
	if !ok {
		return
	}

	if err := rs.Core.Medication.Delete(id); err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medication deleted"})
}

type MarkTakenRequest struct {
	MedicationID int    `json:"medicationId"`
	UserID       int    `json:"userId"`
	Status       string `json:"status"`
}

var markTakenRequestSchema = z.Struct(z.Shape{
	"MedicationID": z.Int().Required(),
	"UserID":       z.Int().Required(),
	"Status":       z.String().OneOf([]string{"taken", "skipped"}).Required(),
})

func (rs *RestfulServer) MarkTaken(c *gin.Context) {
	var req MarkTakenRequest
	if err := markTakenRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	logID, err := rs.Core.Medication.MarkTaken(
		uint(req.MedicationID), uint(req.UserID), models.MedicationLogStatus(req.Status))
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medication logged", "logId": logID})
}

func (rs *RestfulServer) MedicationLogs(c *gin.Context) {
	userID, ok := rs.paramID(c, "userId")
	if !ok {
		return
	}

	logs, err := rs.Core.Medication.RecentLogs(userID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (rs *RestfulServer) TodayMedications(c *gin.Context) {
	userID, ok := rs.paramID(c, "userId")
	if !ok {
		return
	}

	medications, err := rs.Core.Medication.TodaySchedule(userID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, medications)
}

type HealthLogRequest struct {
	UserID  int    `json:"userId"`
	LogType string `json:"logType"`
	Value   string `json:"value"`
	Unit    string `json:"unit"`
	Notes   string `json:"notes"`
}

var healthLogRequestSchema = z.Struct(z.Shape{
	"UserID":  z.Int().Required(),
	"LogType": z.String().Required(),
	"Value":   z.String().Required(),
	"Unit":    z.String(),
	"Notes":   z.String(),
})

func (rs *RestfulServer) LogHealth(c *gin.Context) {
	var req HealthLogRequest
	if err := healthLogRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	logID, err := rs.Core.Health.Log(&models.HealthLog{
		UserID:  uint(req.UserID),
		LogType: req.LogType,
		Value:   req.Value,
		Unit:    req.Unit,
		Notes:   req.Notes,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Health data logged", "logId": logID})
}

func (rs *RestfulServer) HealthLogs(c *gin.Context) {
	userID, ok := rs.paramID(c, "userId")
	if !ok {
		return
	}

	logs, err := rs.Core.Health.RecentLogs(userID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (rs *RestfulServer) LatestHealthReadings(c *gin.Context) {
	userID, ok := rs.paramID(c, "userId")
	if !ok {
		return
	}

	readings, err := rs.Core.Health.LatestReadings(userID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, readings)
}

type MoodRequest struct {
	UserID int    `json:"userId"`
	Mood   string `json:"mood"`
	Notes  string `json:"notes"`
}

var moodRequestSchema = z.Struct(z.Shape{
	"UserID": z.Int().Required(),
	"Mood":   z.String().Required(),
	"Notes":  z.String(),
})

func (rs *RestfulServer) LogMood(c *gin.Context) {
	var req MoodRequest
	if err := moodRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	moodID, err := rs.Core.Mood.Log(&models.MoodLog{
		UserID: uint(req.UserID),
		Mood:   req.Mood,
		Notes:  req.Notes,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mood logged", "moodId": moodID})
}

func (rs *RestfulServer) MoodLogs(c *gin.Context) {
	userID, ok := rs.paramID(c, "userId")
	if !ok {
		return
	}

	logs, err := rs.Core.Mood.RecentLogs(userID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

type AlertRequest struct {
	ElderID     int    `json:"elderId"`
	CaregiverID int    `json:"caregiverId"`
	Type        string `json:"type"`
	Message     string `json:"message"`
	Priority    string `json:"priority"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"ElderID":     z.Int().Required(),
	"CaregiverID": z.Int().Required(),
	"Type":        z.String().Required(),
	"Message":     z.String().Required(),
	"Priority":    z.String().OneOf([]string{"low", "medium", "high"}).Required(),
})

func (rs *RestfulServer) CreateAlert(c *gin.Context) {
	var req AlertRequest
	if err := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	alertID, err := rs.Core.Alert.Create(&models.Alert{
		ElderID:     uint(req.ElderID),
		CaregiverID: uint(req.CaregiverID),
		Type:        models.AlertType(req.Type),
		Message:     req.Message,
		Priority:    models.AlertPriority(req.Priority),
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alert created", "alertId": alertID})
}

func (rs *RestfulServer) CaregiverAlerts(c *gin.Context) {
	caregiverID, ok := rs.paramID(c, "caregiverId")
	if !ok {
		return
	}

	alerts, err := rs.Core.Alert.UnreadForCaregiver(caregiverID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) MarkAlertRead(c *gin.Context) {
	id, ok := rs.paramID(c, "id")
	if !ok {
		return
	}

	if err := rs.Core.Alert.MarkRead(id); err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alert marked as read"})
}

func (rs *RestfulServer) WeeklyReport(c *gin.Context) {
	userID, ok := rs.paramID(c, "userId")
	if !ok {
		return
	}

	report, err := rs.Core.Report.Weekly(userID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
