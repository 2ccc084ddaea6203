package services_test

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/greencity/wastetrack/models"
	"github.com/stretchr/testify/mock"
)

type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) SaveComplaint(complaint *models.Complaint) (*models.Complaint, error) {
	args := m.Called(complaint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) GetComplaintByID(id uuid.UUID) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) GetComplaintsForAdmin() ([]models.ComplaintView, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ComplaintView), args.Error(1)
}

func (m *MockComplaintRepository) GetComplaintsByOwner(userID uint) ([]models.ComplaintView, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ComplaintView), args.Error(1)
}

func (m *MockComplaintRepository) UpdateStatus(id uuid.UUID, status models.ComplaintStatus, adminID uint) error {
	args := m.Called(id, status, adminID)
	return args.Error(0)
}

func (m *MockComplaintRepository) DeleteByID(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockComplaintRepository) GetImageKey(id uuid.UUID) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) Store(ctx context.Context, key string, body io.Reader, contentType string) error {
	args := m.Called(ctx, key, body, contentType)
	return args.Error(0)
}

func (m *MockAssetService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAssetService) SignedURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type MockUserDataRepository struct {
	mock.Mock
}

func (m *MockUserDataRepository) GetRewardBalance(userID uint) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockUserDataRepository) GetAddress(userID uint) (*string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockUserDataRepository) UpsertAddress(userID uint, address string) error {
	args := m.Called(userID, address)
	return args.Error(0)
}

type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) CreateUser(user *models.User) (*models.User, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthRepository) IsEmailExist(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func (m *MockAuthRepository) FindUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthRepository) FindUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthRepository) FindRoleByName(name string) (*models.Role, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}
