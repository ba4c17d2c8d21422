package staff

import (
	"context"
	"staffportal-service/internal/app/models"
	"staffportal-service/internal/pkg/dto/requests"
)

type StaffRepository interface {
	CreateStaff(ctx context.Context, staffModel *models.StaffAccount) (string, error)
	FindByID(ctx context.Context, staffID string) (*models.StaffAccount, error)
	FindByUsername(ctx context.Context, username string) (*models.StaffAccount, error)
	FindByEmail(ctx context.Context, email string) (*models.StaffAccount, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*models.StaffAccount, error)
	FindAll(ctx context.Context) ([]models.StaffAccount, error)
	UpdateStaff(ctx context.Context, staffModel *models.StaffAccount) error
	DeleteStaff(ctx context.Context, staffID string) (bool, error)
	CountStaff(ctx context.Context) (int64, error)
}

type StaffUsecase interface {
	RegisterStaff(ctx context.Context, request *requests.RegisterStaff) error
	GetAllStaff(ctx context.Context) ([]models.StaffAccount, error)
	CreateStaff(ctx context.Context, request *requests.CreateStaff) (*models.StaffAccount, error)
	UpdateStaff(ctx context.Context, staffID string, request *requests.UpdateStaff) (*models.StaffAccount, error)
	DeleteStaff(ctx context.Context, staffID string) error
	SeedTestAccounts(ctx context.Context) error
}
