package medimind

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"medimind.xyz/medimind-service/pkg/common"
	"medimind.xyz/medimind-service/pkg/models"
)

type ConnectResult struct {
	ElderName string `json:"elderName"`
}

type PendingRequest struct {
	ConnectionID uint        `json:"connectionId"`
	Name         string      `json:"name"`
	Role         models.Role `json:"role"`
	Relationship string      `json:"relationship"`
}

type ElderSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	DOB              string `json:"dob"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergency_contact"`
	Relationship     string `json:"relationship"`
}

func (m *MediMind) connect(requesterID uint, targetCode string, relationship string) (*ConnectResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryConnection),
	)

	var elder models.User
	if err := m.Db.Conn.First(&elder, "registration_code = ?", targetCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	if elder.ID == requesterID {
		return nil, ErrSelfConnection
	}

	// the unique index on (elder_id, requester_id) is what actually
	// prevents a duplicate pair; this lookup only makes the common case
	// fail before an insert attempt
	var existing int64
	if err := m.Db.Conn.Model(&models.Connection{}).
		Where("elder_id = ? AND requester_id = ?", elder.ID, requesterID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadyConnected
	}

	connection := models.Connection{
		ElderID:      elder.ID,
		RequesterID:  requesterID,
		Relationship: relationship,
		Status:       models.ConnectionStatusPending,
	}

	if err := m.Db.Conn.Create(&connection).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyConnected
		}
		return nil, err
	}

	logger.Info("Connection requested",
		zap.Uint("elder_id", elder.ID),
		zap.Uint("requester_id", requesterID),
		zap.String("relationship", relationship))

	return &ConnectResult{ElderName: elder.Name}, nil
}

func (m *MediMind) pendingRequests(elderID uint) ([]PendingRequest, error) {
	var requests []PendingRequest
	err := m.Db.Conn.Model(&models.Connection{}).
		Select("connections.id AS connection_id, users.name, users.role, connections.relationship").
		Joins("JOIN users ON connections.requester_id = users.id").
		Where("connections.elder_id = ? AND connections.status = ?", elderID, models.ConnectionStatusPending).
		Scan(&requests).Error
	return requests, err
}

func (m *MediMind) approve(connectionID uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryConnection),
	)

	err := m.Db.Conn.Model(&models.Connection{}).
		Where("id = ?", connectionID).
		Update("status", models.ConnectionStatusApproved).Error
	if err != nil {
		return err
	}

	logger.Info("Connection approved", zap.Uint("connection_id", connectionID))
	return nil
}

func (m *MediMind) reject(connectionID uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryConnection),
	)

	// rejection deletes the row so the pair can request again later
	if err := m.Db.Conn.Delete(&models.Connection{}, connectionID).Error; err != nil {
		return err
	}

	logger.Info("Connection rejected", zap.Uint("connection_id", connectionID))
	return nil
}

func (m *MediMind) approvedElders(requesterID uint) ([]ElderSummary, error) {
	var elders []ElderSummary
	err := m.Db.Conn.Model(&models.Connection{}).
		Select("users.id, users.name, users.dob, users.phone, users.emergency_contact, connections.relationship").
		Joins("JOIN users ON connections.elder_id = users.id").
		Where("connections.requester_id = ? AND connections.status = ?", requesterID, models.ConnectionStatusApproved).
		Scan(&elders).Error
	return elders, err
}

func (m *MediMind) hasApprovedConnection(requesterID uint) (bool, error) {
	var count int64
	err := m.Db.Conn.Model(&models.Connection{}).
		Where("requester_id = ? AND status = ?", requesterID, models.ConnectionStatusApproved).
		Count(&count).Error
	return count > 0, err
}

type IConnectionImpl struct {
	medimind *MediMind
}

func (ic *IConnectionImpl) Connect(requesterID uint, targetCode string, relationship string) (*ConnectResult, error) {
	return ic.medimind.connect(requesterID, targetCode, relationship)
}

func (ic *IConnectionImpl) PendingRequests(elderID uint) ([]PendingRequest, error) {
	return ic.medimind.pendingRequests(elderID)
}

func (ic *IConnectionImpl) Approve(connectionID uint) error {
	return ic.medimind.approve(connectionID)
}

func (ic *IConnectionImpl) Reject(connectionID uint) error {
	return ic.medimind.reject(connectionID)
}

func (ic *IConnectionImpl) ApprovedElders(requesterID uint) ([]ElderSummary, error) {
	return ic.medimind.approvedElders(requesterID)
}

func (ic *IConnectionImpl) HasApprovedConnection(requesterID uint) (bool, error) {
	return ic.medimind.hasApprovedConnection(requesterID)
}

func (m *MediMind) GetIConnection() IConnection {
	return &IConnectionImpl{medimind: m}
}
