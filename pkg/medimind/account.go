package medimind

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"medimind.xyz/medimind-service/pkg/common"
	"medimind.xyz/medimind-service/pkg/models"
)

type RegisterInput struct {
	Name             string
	Email            string
	Password         string
	Role             models.Role
	Phone            string
	DOB              string
	Gender           string
	EmergencyContact string
}

type RegisterResult struct {
	UserID           uint    `json:"userId"`
	RegistrationCode *string `json:"registration_code"`
}

type LoginResult struct {
	ID            uint        `json:"id"`
	Role          models.Role `json:"role"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Code          *string     `json:"code"`
	HasConnection *bool       `json:"hasConnection,omitempty"`
}

func (m *MediMind) register(input *RegisterInput) (*RegisterResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAccount),
	)

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:             input.Name,
		Email:            input.Email,
		Password:         string(hashed),
		Role:             input.Role,
		Phone:            input.Phone,
		DOB:              input.DOB,
		Gender:           input.Gender,
	}

	if input.Role == models.RoleElderly {
		code := common.GenerateRegistrationCode()
		user.RegistrationCode = &code
		user.EmergencyContact = input.EmergencyContact
	}

	if err := m.Db.Conn.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	logger.Info("Registered user",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return &RegisterResult{
		UserID:           user.ID,
		RegistrationCode: user.RegistrationCode,
	}, nil
}

func (m *MediMind) login(email string, password string) (*LoginResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAccount),
	)

	var user models.User
	if err := m.Db.Conn.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same error as a password mismatch, no user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	result := LoginResult{
		ID:    user.ID,
		Role:  user.Role,
		Name:  user.Name,
		Email: user.Email,
		Code:  user.RegistrationCode,
	}

	// caregivers and doctors get routed client-side by whether they
	// already monitor someone
	if user.Role == models.RoleCaregiver || user.Role == models.RoleDoctor {
		hasConnection := false
		if m.Connection != nil {
			has, err := m.Connection.HasApprovedConnection(user.ID)
			if err != nil {
				logger.Warn("Connection check failed during login", zap.Error(err))
			} else {
				hasConnection = has
			}
		}
		result.HasConnection = &hasConnection
	}

	logger.Info("Login succeeded",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return &result, nil
}

type IAccountImpl struct {
	medimind *MediMind
}

func (ia *IAccountImpl) Register(input *RegisterInput) (*RegisterResult, error) {
	return ia.medimind.register(input)
}

func (ia *IAccountImpl) Login(email string, password string) (*LoginResult, error) {
	return ia.medimind.login(email, password)
}

func (m *MediMind) GetIAccount() IAccount {
	return &IAccountImpl{medimind: m}
}
