package staff

import (
	"context"
	"fmt"
	"staffportal-service/internal/app/models"
	"staffportal-service/internal/pkg/constvars"
	"staffportal-service/internal/pkg/dto/requests"
	"staffportal-service/internal/pkg/exceptions"
	"staffportal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type staffUsecase struct {
	Log             *zap.Logger
	StaffRepository StaffRepository
}

func NewStaffUsecase(logger *zap.Logger, staffMongoRepository StaffRepository) StaffUsecase {
	return &staffUsecase{
		Log:             logger,
		StaffRepository: staffMongoRepository,
	}
}

func (uc *staffUsecase) RegisterStaff(ctx context.Context, request *requests.RegisterStaff) error {
	// Check username availability
	existing, err := uc.StaffRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s taken", request.Username))
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	role := request.Role
	if role == "" {
		role = constvars.RoleNurse
	}

	now := time.Now()
	staffModel := &models.StaffAccount{
		Username:   request.Username,
		Email:      request.Email,
		Password:   hashedPassword,
		Role:       role,
		FullName:   request.FullName,
		EmployeeID: request.EmployeeID,
		IsActive:   true,
		MFAEnabled: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err = uc.StaffRepository.CreateStaff(ctx, staffModel)
	return err
}

func (uc *staffUsecase) GetAllStaff(ctx context.Context) ([]models.StaffAccount, error) {
	return uc.StaffRepository.FindAll(ctx)
}

func (uc *staffUsecase) CreateStaff(ctx context.Context, request *requests.CreateStaff) (*models.StaffAccount, error) {
	// Check username availability
	existing, err := uc.StaffRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s taken", request.Username))
	}

	// Check email availability
	existing, err = uc.StaffRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s taken", request.Email))
	}

	if request.EmployeeID != "" {
		existing, err = uc.StaffRepository.FindByEmployeeID(ctx, request.EmployeeID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrEmployeeIDAlreadyExist(fmt.Errorf("employeeId %s taken", request.EmployeeID))
		}
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	role := request.Role
	if role == "" {
		role = constvars.RoleNurse
	}
	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	now := time.Now()
	staffModel := &models.StaffAccount{
		Username:   request.Username,
		Email:      request.Email,
		Password:   hashedPassword,
		Role:       role,
		FullName:   request.FullName,
		EmployeeID: request.EmployeeID,
		IsActive:   isActive,
		MFAEnabled: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	staffID, err := uc.StaffRepository.CreateStaff(ctx, staffModel)
	if err != nil {
		return nil, err
	}
	staffModel.ID = staffID
	return staffModel, nil
}

func (uc *staffUsecase) UpdateStaff(ctx context.Context, staffID string, request *requests.UpdateStaff) (*models.StaffAccount, error) {
	staffAccount, err := uc.StaffRepository.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staffAccount == nil {
		return nil, exceptions.ErrStaffNotFound(fmt.Errorf("staff %s not found", staffID))
	}

	// Merge the provided fields over the stored account
	if request.Username != nil {
		staffAccount.Username = *request.Username
	}
	if request.Email != nil {
		staffAccount.Email = *request.Email
	}
	if request.Role != nil {
		staffAccount.Role = *request.Role
	}
	if request.FullName != nil {
		staffAccount.FullName = *request.FullName
	}
	if request.EmployeeID != nil {
		staffAccount.EmployeeID = *request.EmployeeID
	}
	if request.IsActive != nil {
		staffAccount.IsActive = *request.IsActive
	}
	if request.Password != nil && *request.Password != "" {
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		staffAccount.Password = hashedPassword
	}
	staffAccount.UpdatedAt = time.Now()

	if err := uc.StaffRepository.UpdateStaff(ctx, staffAccount); err != nil {
		return nil, err
	}
	return staffAccount, nil
}

func (uc *staffUsecase) DeleteStaff(ctx context.Context, staffID string) error {
	deleted, err := uc.StaffRepository.DeleteStaff(ctx, staffID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrStaffNotFound(fmt.Errorf("staff %s not found", staffID))
	}
	return nil
}

// SeedTestAccounts creates the demo doctor/nurse/admin logins on an empty
// staff collection. Existing deployments are left untouched.
func (uc *staffUsecase) SeedTestAccounts(ctx context.Context) error {
	count, err := uc.StaffRepository.CountStaff(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seedAccounts := []models.StaffAccount{
		{Username: "doctor", Email: "doctor@hospital.com", Role: constvars.RoleDoctor, FullName: "Dr. Sarah"},
		{Username: "nurse", Email: "nurse@hospital.com", Role: constvars.RoleNurse, FullName: "Nurse Khetrapal"},
		{Username: "admin", Email: "admin@hospital.com", Role: constvars.RoleAdmin, FullName: "Admin Harsh"},
	}

	for i := range seedAccounts {
		hashedPassword, err := utils.HashPassword("password123")
		if err != nil {
			return exceptions.ErrHashPassword(err)
		}
		account := seedAccounts[i]
		now := time.Now()
		account.Password = hashedPassword
		account.IsActive = true
		account.MFAEnabled = true
		account.CreatedAt = now
		account.UpdatedAt = now

		if _, err := uc.StaffRepository.CreateStaff(ctx, &account); err != nil {
			return err
		}
		uc.Log.Info("seeded staff account",
			zap.String(constvars.LoggingUsernameKey, account.Username),
		)
	}
	return nil
}
