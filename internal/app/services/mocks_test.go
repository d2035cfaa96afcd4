package services

import (
	"context"
	"mime/multipart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/skhostel/hostelpay/internal/app/models"
	"github.com/skhostel/hostelpay/internal/app/notify"
)

// MockStudentRepository is a mock implementation of IStudentRepository.
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	args := m.Called(ctx, student)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) GetByFullName(ctx context.Context, fullName string) (*models.Student, error) {
	args := m.Called(ctx, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentRepository) AadharExists(ctx context.Context, aadhar string) (bool, error) {
	args := m.Called(ctx, aadhar)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

// MockAdminRepository is a mock implementation of IAdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *models.AdminUser) (int64, error) {
	args := m.Called(ctx, admin)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) GetByName(ctx context.Context, adminName string) (*models.AdminUser, error) {
	args := m.Called(ctx, adminName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) NameExists(ctx context.Context, adminName string) (bool, error) {
	args := m.Called(ctx, adminName)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaymentRepository is a mock implementation of IPaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *models.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetForStudent(ctx context.Context, studentID, paymentID int64) (*models.Payment, error) {
	args := m.Called(ctx, studentID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Payment, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumForMonth(ctx context.Context, studentID int64, month string) (decimal.Decimal, error) {
	args := m.Called(ctx, studentID, month)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNotifier records payment events for assertions.
type MockNotifier struct {
	Events []notify.PaymentRecorded
}

func (m *MockNotifier) PaymentRecorded(_ context.Context, event notify.PaymentRecorded) {
	m.Events = append(m.Events, event)
}

// MockFileStorage is a mock implementation of filestorage.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	args := m.Called(fileHeader, path)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteFile(filePath string) error {
	args := m.Called(filePath)
	return args.Error(0)
}
