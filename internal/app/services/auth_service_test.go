package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skhostel/hostelpay/internal/app/models"
	"github.com/skhostel/hostelpay/internal/app/models/dto"
	"github.com/skhostel/hostelpay/internal/pkg/apperrors"
	"github.com/skhostel/hostelpay/internal/pkg/auth"
)

func validSignupRequest() *dto.StudentSignupRequest {
	return &dto.StudentSignupRequest{
		FullName:     "Ravi Kumar",
		FatherName:   "Suresh Kumar",
		Address:      "12 MG Road",
		Aadhar:       "123456789012",
		College:      "Govt Engineering College",
		StudentPhone: "9381422218",
		FatherPhone:  "+919381422219",
		JoiningDate:  "2024-06-15",
		Email:        "ravi@example.com",
		Password:     "secret123",
	}
}

func newTestAuthService(studentRepo *MockStudentRepository, adminRepo *MockAdminRepository) *AuthService {
	return NewAuthService(
		studentRepo,
		adminRepo,
		new(MockFileStorage),
		BootstrapAdmin{Username: "1234", Password: "1234"},
		zerolog.Nop(),
	)
}

func TestAuthService_SignupStudent(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	adminRepo := new(MockAdminRepository)
	studentRepo.On("EmailExists", mock.Anything, "ravi@example.com").Return(false, nil)
	studentRepo.On("AadharExists", mock.Anything, "123456789012").Return(false, nil)
	studentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Student")).Return(int64(1), nil)

	service := newTestAuthService(studentRepo, adminRepo)
	student, err := service.SignupStudent(context.Background(), validSignupRequest(), nil)

	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", student.Email)
	assert.NotEqual(t, "secret123", student.Password)
	assert.True(t, auth.CheckPassword(student.Password, "secret123"))
	assert.True(t, student.MonthlyFee.Equal(models.DefaultMonthlyFee))
	studentRepo.AssertExpectations(t)
}

func TestAuthService_SignupStudent_NormalizesEmail(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	adminRepo := new(MockAdminRepository)
	studentRepo.On("EmailExists", mock.Anything, "ravi@example.com").Return(false, nil)
	studentRepo.On("AadharExists", mock.Anything, "123456789012").Return(false, nil)
	studentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Student")).Return(int64(1), nil)

	req := validSignupRequest()
	req.Email = "  Ravi@Example.COM "
	req.FullName = "  Ravi Kumar  "

	service := newTestAuthService(studentRepo, adminRepo)
	student, err := service.SignupStudent(context.Background(), req, nil)

	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", student.Email)
	assert.Equal(t, "Ravi Kumar", student.FullName)
}

func TestAuthService_SignupStudent_ValidationOrder(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*dto.StudentSignupRequest)
		wantMessage string
	}{
		{
			name:        "missing fullname reported first",
			mutate:      func(r *dto.StudentSignupRequest) { r.FullName = ""; r.Email = "bad" },
			wantMessage: "Fullname is required.",
		},
		{
			name:        "missing email",
			mutate:      func(r *dto.StudentSignupRequest) { r.Email = "" },
			wantMessage: "Email is required.",
		},
		{
			name:        "invalid email",
			mutate:      func(r *dto.StudentSignupRequest) { r.Email = "not-an-email" },
			wantMessage: "Please enter a valid email address.",
		},
		{
			name:        "short aadhar",
			mutate:      func(r *dto.StudentSignupRequest) { r.Aadhar = "12345" },
			wantMessage: "Aadhar must be exactly 12 digits.",
		},
		{
			name:        "bad student phone",
			mutate:      func(r *dto.StudentSignupRequest) { r.StudentPhone = "12345" },
			wantMessage: "Student phone must be 10 to 15 digits.",
		},
		{
			name:        "bad father phone",
			mutate:      func(r *dto.StudentSignupRequest) { r.FatherPhone = "12345" },
			wantMessage: "Father phone must be 10 to 15 digits.",
		},
		{
			name:        "bad joining date",
			mutate:      func(r *dto.StudentSignupRequest) { r.JoiningDate = "15-06-2024" },
			wantMessage: "Joining date must be in YYYY-MM-DD format.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			studentRepo := new(MockStudentRepository)
			adminRepo := new(MockAdminRepository)
			// Uniqueness checks only run when the earlier checks pass.
			studentRepo.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil).Maybe()
			studentRepo.On("AadharExists", mock.Anything, mock.Anything).Return(false, nil).Maybe()

			req := validSignupRequest()
			tt.mutate(req)

			service := newTestAuthService(studentRepo, adminRepo)
			_, err := service.SignupStudent(context.Background(), req, nil)

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
			var customErr *apperrors.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, tt.wantMessage, customErr.Message)
		})
	}
}

func TestAuthService_SignupStudent_DuplicateEmail(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	adminRepo := new(MockAdminRepository)
	studentRepo.On("EmailExists", mock.Anything, "ravi@example.com").Return(true, nil)

	service := newTestAuthService(studentRepo, adminRepo)
	_, err := service.SignupStudent(context.Background(), validSignupRequest(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateEntry))
	studentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_SignupStudent_DuplicateAadhar(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	adminRepo := new(MockAdminRepository)
	studentRepo.On("EmailExists", mock.Anything, "ravi@example.com").Return(false, nil)
	studentRepo.On("AadharExists", mock.Anything, "123456789012").Return(true, nil)

	service := newTestAuthService(studentRepo, adminRepo)
	_, err := service.SignupStudent(context.Background(), validSignupRequest(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateEntry))
}

func TestAuthService_SignupStudent_RaceLosesToConstraint(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	adminRepo := new(MockAdminRepository)
	studentRepo.On("EmailExists", mock.Anything, "ravi@example.com").Return(false, nil)
	studentRepo.On("AadharExists", mock.Anything, "123456789012").Return(false, nil)
	studentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Student")).
		Return(int64(0), apperrors.ErrEmailAlreadyExists)

	service := newTestAuthService(studentRepo, adminRepo)
	_, err := service.SignupStudent(context.Background(), validSignupRequest(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateEntry))
	var customErr *apperrors.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "Duplicate entry. Please check your Email/Aadhar.", customErr.Message)
}

func TestAuthService_SignupAdmin(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.AdminSignupRequest
		setupMock     func(*MockAdminRepository)
		wantMessage   string
		wantDuplicate bool
	}{
		{
			name: "successful signup",
			req:  dto.AdminSignupRequest{AdminName: "warden", Password: "pass123", ConfirmPassword: "pass123"},
			setupMock: func(m *MockAdminRepository) {
				m.On("NameExists", mock.Anything, "warden").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*models.AdminUser")).Return(int64(2), nil)
			},
		},
		{
			name:        "missing fields",
			req:         dto.AdminSignupRequest{AdminName: "", Password: "pass123"},
			setupMock:   func(m *MockAdminRepository) {},
			wantMessage: "Admin name and password are required.",
		},
		{
			name:        "password mismatch",
			req:         dto.AdminSignupRequest{AdminName: "warden", Password: "pass123", ConfirmPassword: "other"},
			setupMock:   func(m *MockAdminRepository) {},
			wantMessage: "Passwords do not match.",
		},
		{
			name: "duplicate name",
			req:  dto.AdminSignupRequest{AdminName: "warden", Password: "pass123", ConfirmPassword: "pass123"},
			setupMock: func(m *MockAdminRepository) {
				m.On("NameExists", mock.Anything, "warden").Return(true, nil)
			},
			wantMessage:   "Admin username already exists.",
			wantDuplicate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			studentRepo := new(MockStudentRepository)
			adminRepo := new(MockAdminRepository)
			tt.setupMock(adminRepo)

			service := newTestAuthService(studentRepo, adminRepo)
			admin, err := service.SignupAdmin(context.Background(), &tt.req)

			if tt.wantMessage == "" {
				require.NoError(t, err)
				assert.Equal(t, "warden", admin.AdminName)
				assert.True(t, auth.CheckPassword(admin.Password, "pass123"))
			} else {
				require.Error(t, err)
				var customErr *apperrors.CustomError
				require.True(t, errors.As(err, &customErr))
				assert.Equal(t, tt.wantMessage, customErr.Message)
				if tt.wantDuplicate {
					assert.True(t, errors.Is(err, apperrors.ErrDuplicateEntry))
				}
			}
			adminRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginStudent_ByEmail(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	studentRepo := new(MockStudentRepository)
	adminRepo := new(MockAdminRepository)
	studentRepo.On("GetByEmail", mock.Anything, "ravi@example.com").
		Return(&models.Student{ID: 1, Email: "ravi@example.com", Password: hashed}, nil)

	service := newTestAuthService(studentRepo, adminRepo)
	student, err := service.LoginStudent(context.Background(), &dto.LoginRequest{
		Username: "Ravi@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), student.ID)
	studentRepo.AssertNotCalled(t, "GetByFullName", mock.Anything, mock.Anything)
}

func TestAuthService_LoginStudent_FallsBackToFullName(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	studentRepo := new(MockStudentRepository)
	adminRepo := new(MockAdminRepository)
	studentRepo.On("GetByEmail", mock.Anything, "ravi kumar").Return(nil, apperrors.ErrStudentNotFound)
	studentRepo.On("GetByFullName", mock.Anything, "Ravi Kumar").
		Return(&models.Student{ID: 1, FullName: "Ravi Kumar", Password: hashed}, nil)

	service := newTestAuthService(studentRepo, adminRepo)
	student, err := service.LoginStudent(context.Background(), &dto.LoginRequest{
		Username: "Ravi Kumar",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", student.FullName)
}

func TestAuthService_LoginStudent_InvalidCredentials(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	tests := []struct {
		name      string
		password  string
		setupMock func(*MockStudentRepository)
	}{
		{
			name:     "unknown user",
			password: "secret123",
			setupMock: func(m *MockStudentRepository) {
				m.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, apperrors.ErrStudentNotFound)
				m.On("GetByFullName", mock.Anything, mock.Anything).Return(nil, apperrors.ErrStudentNotFound)
			},
		},
		{
			name:     "wrong password",
			password: "wrong",
			setupMock: func(m *MockStudentRepository) {
				m.On("GetByEmail", mock.Anything, mock.Anything).
					Return(&models.Student{ID: 1, Password: hashed}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			studentRepo := new(MockStudentRepository)
			adminRepo := new(MockAdminRepository)
			tt.setupMock(studentRepo)

			service := newTestAuthService(studentRepo, adminRepo)
			_, err := service.LoginStudent(context.Background(), &dto.LoginRequest{
				Username: "ravi@example.com",
				Password: tt.password,
			})

			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_LoginAdmin_Bootstrap(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	adminRepo := new(MockAdminRepository)

	service := newTestAuthService(studentRepo, adminRepo)
	adminID, err := service.LoginAdmin(context.Background(), &dto.AdminLoginRequest{
		Username: "1234",
		Password: "1234",
	})

	require.NoError(t, err)
	// The synthetic id must be positive so the session layer accepts it.
	assert.Equal(t, BootstrapAdminID, adminID)
	assert.Positive(t, adminID)
	// The bootstrap pair never touches the admin_users table.
	adminRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestAuthService_LoginAdmin_TablePath(t *testing.T) {
	hashed, err := auth.HashPassword("wardenpass")
	require.NoError(t, err)

	studentRepo := new(MockStudentRepository)
	adminRepo := new(MockAdminRepository)
	adminRepo.On("GetByName", mock.Anything, "warden").
		Return(&models.AdminUser{ID: 3, AdminName: "warden", Password: hashed}, nil)
	adminRepo.On("UpdateLastLogin", mock.Anything, int64(3)).Return(nil)

	service := newTestAuthService(studentRepo, adminRepo)
	adminID, err := service.LoginAdmin(context.Background(), &dto.AdminLoginRequest{
		Username: "warden",
		Password: "wardenpass",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), adminID)
	adminRepo.AssertExpectations(t)
}

func TestAuthService_LoginAdmin_Invalid(t *testing.T) {
	hashed, err := auth.HashPassword("wardenpass")
	require.NoError(t, err)

	tests := []struct {
		name      string
		username  string
		password  string
		setupMock func(*MockAdminRepository)
	}{
		{
			name:     "unknown admin",
			username: "ghost",
			password: "whatever",
			setupMock: func(m *MockAdminRepository) {
				m.On("GetByName", mock.Anything, "ghost").Return(nil, apperrors.ErrAdminNotFound)
			},
		},
		{
			name:     "wrong password",
			username: "warden",
			password: "wrong",
			setupMock: func(m *MockAdminRepository) {
				m.On("GetByName", mock.Anything, "warden").
					Return(&models.AdminUser{ID: 3, AdminName: "warden", Password: hashed}, nil)
			},
		},
		{
			name:     "bootstrap password with wrong username",
			username: "12345",
			password: "1234",
			setupMock: func(m *MockAdminRepository) {
				m.On("GetByName", mock.Anything, "12345").Return(nil, apperrors.ErrAdminNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			studentRepo := new(MockStudentRepository)
			adminRepo := new(MockAdminRepository)
			tt.setupMock(adminRepo)

			service := newTestAuthService(studentRepo, adminRepo)
			_, err := service.LoginAdmin(context.Background(), &dto.AdminLoginRequest{
				Username: tt.username,
				Password: tt.password,
			})

			assert.ErrorIs(t, err, apperrors.ErrInvalidAdminLogin)
		})
	}
}
