package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"medimind.xyz/medimind-service/pkg/common"
	"medimind.xyz/medimind-service/pkg/medimind"
)

type RestfulServer struct {
	Server           *gin.Engine
	Core             *medimind.MediMind
	RateLimiterStore *medimind.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

// RateLimit gates every /api route per client address. Without a store
// configured all requests pass.
func (rs *RestfulServer) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rs.GetLimiter(c.ClientIP())
		if limiter != nil && !limiter.Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")
	api.Use(rs.RateLimit())
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", rs.Register)
			auth.POST("/login", rs.Login)
			auth.POST("/connect", rs.Connect)
			auth.GET("/pending/:elderId", rs.PendingConnections)
			auth.POST("/approve-connection", rs.ApproveConnection)
			auth.POST("/reject-connection", rs.RejectConnection)
		}

		api.GET("/connections/:caregiverId", rs.ApprovedConnections)

		medications := api.Group("/medications")
		{
			medications.POST("", rs.AddMedication)
			medications.GET("/:userId", rs.ListMedications)
			medications.PUT("/:id", rs.UpdateMedication)
			medications.DELETE("/:id", rs.DeleteMedication)
			medications.POST("/mark-taken", rs.MarkTaken)
			medications.GET("/today/:userId", rs.TodayMedications)
		}
		api.GET("/medication-logs/:userId", rs.MedicationLogs)

		healthLogs := api.Group("/health-logs")
		{
			healthLogs.POST("", rs.LogHealth)
			healthLogs.GET("/:userId", rs.HealthLogs)
			healthLogs.GET("/latest/:userId", rs.LatestHealthReadings)
		}

		api.POST("/mood", rs.LogMood)
		api.GET("/mood/:userId", rs.MoodLogs)

		alerts := api.Group("/alerts")
		{
			alerts.POST("", rs.CreateAlert)
			alerts.GET("/caregiver/:caregiverId", rs.CaregiverAlerts)
			alerts.PUT("/:id/read", rs.MarkAlertRead)
		}

		api.GET("/reports/weekly/:userId", rs.WeeklyReport)
	}
}

func (rs *RestfulServer) paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain sentinel errors to the status codes the mobile
// client expects. Anything unrecognized is logged with detail and
// surfaced as a generic 500.
func (rs *RestfulServer) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, medimind.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed: " + err.Error()})
	case errors.Is(err, medimind.ErrSelfConnection):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot connect to yourself"})
	case errors.Is(err, medimind.ErrAlreadyConnected):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Already connected or pending"})
	case errors.Is(err, medimind.ErrInvalidCode):
		c.JSON(http.StatusNotFound, gin.H{"message": "Invalid Code"})
	case errors.Is(err, medimind.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, medimind.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		logger := common.GetLoggerWith(common.LoggerNameRestfulServer)
		logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
