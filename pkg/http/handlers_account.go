package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"medimind.xyz/medimind-service/pkg/medimind"
	"medimind.xyz/medimind-service/pkg/models"
)

type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender"`
	Emergency string `json:"emergency"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Name":      z.String().Required(),
	"Email":     z.String().Email().Required(),
	"Password":  z.String().Min(1).Required(),
	"Role":      z.String().OneOf([]string{"elderly", "caregiver", "doctor"}).Required(),
	"Phone":     z.String(),
	"DOB":       z.String(),
	"Gender":    z.String(),
	"Emergency": z.String(),
})

func (rs *RestfulServer) Register(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	result, err := rs.Core.Account.Register(&medimind.RegisterInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Role:             models.Role(req.Role),
		Phone:            req.Phone,
		DOB:              req.DOB,
		Gender:           req.Gender,
		EmergencyContact: req.Emergency,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Success",
		"registration_code": result.RegistrationCode,
		"userId":            result.UserID,
	})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Required(),
	"Password": z.String().Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	result, err := rs.Core.Account.Login(req.Email, req.Password)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type ConnectRequest struct {
	RequesterID  int    `json:"requesterId"`
	TargetCode   string `json:"targetCode"`
	Relationship string `json:"relationship"`
}

var connectRequestSchema = z.Struct(z.Shape{
	"RequesterID":  z.Int().Required(),
	"TargetCode":   z.String().Required(),
	"Relationship": z.String(),
})

func (rs *RestfulServer) Connect(c *gin.Context) {
	var req ConnectRequest
	if err := connectRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	result, err := rs.Core.Connection.Connect(uint(req.RequesterID), req.TargetCode, req.Relationship)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Request sent successfully!",
		"elderName": result.ElderName,
	})
}

func (rs *RestfulServer) PendingConnections(c *gin.Context) {
	elderID, ok := rs.paramID(c, "elderId")
	if !ok {
		return
	}

	requests, err := rs.Core.Connection.PendingRequests(elderID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

type ConnectionDecisionRequest struct {
	ConnectionID int `json:"connectionId"`
}

var connectionDecisionRequestSchema = z.Struct(z.Shape{
	"ConnectionID": z.Int().Required(),
})

func (rs *RestfulServer) ApproveConnection(c *gin.Context) {
	var req ConnectionDecisionRequest
	if err := connectionDecisionRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Core.Connection.Approve(uint(req.ConnectionID)); err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Approved"})
}

func (rs *RestfulServer) RejectConnection(c *gin.Context) {
	var req ConnectionDecisionRequest
	if err := connectionDecisionRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Core.Connection.Reject(uint(req.ConnectionID)); err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request removed"})
}

func (rs *RestfulServer) ApprovedConnections(c *gin.Context) {
	caregiverID, ok := rs.paramID(c, "caregiverId")
	if !ok {
		return
	}

	elders, err := rs.Core.Connection.ApprovedElders(caregiverID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, elders)
}
