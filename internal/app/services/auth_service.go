package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skhostel/hostelpay/internal/app/models"
	"github.com/skhostel/hostelpay/internal/app/models/dto"
	"github.com/skhostel/hostelpay/internal/app/repositories"
	"github.com/skhostel/hostelpay/internal/pkg/apperrors"
	"github.com/skhostel/hostelpay/internal/pkg/auth"
	"github.com/skhostel/hostelpay/internal/pkg/filestorage"
	"github.com/skhostel/hostelpay/internal/pkg/validation"
)

// MaxPhotoSize is the upload limit for student photos.
const MaxPhotoSize = 2 << 20 // 2 MiB

// BootstrapAdminID is the synthetic admin id bound to sessions established
// through the bootstrap credential shortcut. It must be positive so the
// session layer accepts it like any table-backed admin id.
const BootstrapAdminID int64 = 1

// BootstrapAdmin holds the fixed credential shortcut that bypasses the
// admin_users table. It is a deliberate special case kept apart from normal
// credential verification; the real admin login path runs only after this
// check fails.
type BootstrapAdmin struct {
	Username string
	Password string
	// ID is the synthetic admin id bound to sessions established through the
	// shortcut. Zero falls back to BootstrapAdminID.
	ID int64
}

// Matches reports whether the given credentials are exactly the bootstrap pair.
func (b BootstrapAdmin) Matches(username, password string) bool {
	return b.Username != "" && username == b.Username && password == b.Password
}

// AuthService handles signup, login and the signup validation pipeline
type AuthService struct {
	studentRepo    repositories.IStudentRepository
	adminRepo      repositories.IAdminRepository
	storage        filestorage.FileStorage
	bootstrapAdmin BootstrapAdmin
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	adminRepo repositories.IAdminRepository,
	storage filestorage.FileStorage,
	bootstrapAdmin BootstrapAdmin,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		studentRepo:    studentRepo,
		adminRepo:      adminRepo,
		storage:        storage,
		bootstrapAdmin: bootstrapAdmin,
		logger:         logger,
	}
}

// validateSignup runs the ordered signup checks and stops at the first
// failure. Uniqueness pre-checks run here; the insert still guards against
// races via the DB constraints.
func (s *AuthService) validateSignup(ctx context.Context, req *dto.StudentSignupRequest, photo *multipart.FileHeader) error {
	required := []struct {
		label string
		value string
	}{
		{"Fullname", req.FullName},
		{"Fathername", req.FatherName},
		{"Address", req.Address},
		{"Aadhar", req.Aadhar},
		{"College", req.College},
		{"Studentphone", req.StudentPhone},
		{"Fatherphone", req.FatherPhone},
		{"Joiningdate", req.JoiningDate},
		{"Email", req.Email},
		{"Password", req.Password},
	}
	for _, f := range required {
		if f.value == "" {
			return apperrors.NewValidationError(f.label + " is required.")
		}
	}

	if !validation.IsValidEmail(req.Email) {
		return apperrors.NewValidationError("Please enter a valid email address.")
	}

	if !validation.IsValidAadhar(req.Aadhar) {
		return apperrors.NewValidationError("Aadhar must be exactly 12 digits.")
	}

	if !validation.IsValidPhone(req.StudentPhone) {
		return apperrors.NewValidationError("Student phone must be 10 to 15 digits.")
	}
	if !validation.IsValidPhone(req.FatherPhone) {
		return apperrors.NewValidationError("Father phone must be 10 to 15 digits.")
	}

	if !validation.IsValidDate(req.JoiningDate) {
		return apperrors.NewValidationError("Joining date must be in YYYY-MM-DD format.")
	}

	emailTaken, err := s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("error checking if email exists: %w", err)
	}
	if emailTaken {
		return apperrors.NewDuplicateEntryError("Email already exists.")
	}

	aadharTaken, err := s.studentRepo.AadharExists(ctx, req.Aadhar)
	if err != nil {
		return fmt.Errorf("error checking if aadhar exists: %w", err)
	}
	if aadharTaken {
		return apperrors.NewDuplicateEntryError("Aadhar already registered.")
	}

	if photo != nil {
		if photo.Size > MaxPhotoSize {
			return apperrors.NewValidationError("Photo must be less than 2 MB.")
		}
		contentType := strings.ToLower(photo.Header.Get("Content-Type"))
		if !strings.HasPrefix(contentType, "image/") {
			return apperrors.NewValidationError("Only image files are allowed for photo.")
		}
	}

	return nil
}

// SignupStudent registers a new student after the validation pipeline passes.
func (s *AuthService) SignupStudent(ctx context.Context, req *dto.StudentSignupRequest, photo *multipart.FileHeader) (*models.Student, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.FatherName = strings.TrimSpace(req.FatherName)
	req.Address = strings.TrimSpace(req.Address)
	req.Aadhar = strings.TrimSpace(req.Aadhar)
	req.College = strings.TrimSpace(req.College)
	req.StudentPhone = strings.TrimSpace(req.StudentPhone)
	req.FatherPhone = strings.TrimSpace(req.FatherPhone)
	req.JoiningDate = strings.TrimSpace(req.JoiningDate)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validateSignup(ctx, req, photo); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	joiningDate, err := time.Parse(validation.JoiningDateLayout, req.JoiningDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Joining date must be in YYYY-MM-DD format.")
	}

	var photoURL *string
	if photo != nil {
		path, err := s.storage.SaveFileWithPath(photo, "photos")
		if err != nil {
			return nil, fmt.Errorf("error saving photo: %w", err)
		}
		photoURL = &path
	}

	student := &models.Student{
		FullName:     req.FullName,
		FatherName:   req.FatherName,
		Address:      req.Address,
		Aadhar:       req.Aadhar,
		College:      req.College,
		StudentPhone: req.StudentPhone,
		FatherPhone:  req.FatherPhone,
		JoiningDate:  joiningDate,
		Email:        req.Email,
		PhotoURL:     photoURL,
		Password:     hashed,
		MonthlyFee:   models.DefaultMonthlyFee,
	}

	if _, err := s.studentRepo.Create(ctx, student); err != nil {
		// A concurrent signup can win the race past the pre-checks; the
		// constraint violation comes back as a duplicate error.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) ||
			errors.Is(err, apperrors.ErrAadharAlreadyExists) ||
			errors.Is(err, apperrors.ErrDuplicateEntry) {
			if photoURL != nil {
				_ = s.storage.DeleteFile(*photoURL)
			}
			return nil, apperrors.NewDuplicateEntryError("Duplicate entry. Please check your Email/Aadhar.")
		}
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Str("email", student.Email).Msg("Student account created")
	return student, nil
}

// SignupAdmin registers a new admin account.
func (s *AuthService) SignupAdmin(ctx context.Context, req *dto.AdminSignupRequest) (*models.AdminUser, error) {
	req.AdminName = strings.TrimSpace(req.AdminName)

	if req.AdminName == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Admin name and password are required.")
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewValidationError("Passwords do not match.")
	}

	taken, err := s.adminRepo.NameExists(ctx, req.AdminName)
	if err != nil {
		return nil, fmt.Errorf("error checking if admin name exists: %w", err)
	}
	if taken {
		return nil, apperrors.NewDuplicateEntryError("Admin username already exists.")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	admin := &models.AdminUser{
		AdminName: req.AdminName,
		Password:  hashed,
	}
	if _, err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrAdminNameExists) {
			return nil, apperrors.NewDuplicateEntryError("Admin username already exists.")
		}
		return nil, err
	}

	s.logger.Info().Int64("adminID", admin.ID).Str("adminname", admin.AdminName).Msg("Admin account created")
	return admin, nil
}

// LoginStudent authenticates a student by email or full name.
func (s *AuthService) LoginStudent(ctx context.Context, req *dto.LoginRequest) (*models.Student, error) {
	username := strings.TrimSpace(req.Username)

	student, err := s.studentRepo.GetByEmail(ctx, strings.ToLower(username))
	if err != nil {
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		student, err = s.studentRepo.GetByFullName(ctx, username)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, err
		}
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return student, nil
}

// LoginAdmin authenticates an admin. The bootstrap shortcut is checked first;
// only then does the admin_users credential path run, stamping last_login on
// success.
func (s *AuthService) LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (int64, error) {
	username := strings.TrimSpace(req.Username)

	if s.bootstrapAdmin.Matches(username, req.Password) {
		id := s.bootstrapAdmin.ID
		if id <= 0 {
			id = BootstrapAdminID
		}
		s.logger.Info().Str("adminname", username).Msg("Bootstrap admin login")
		return id, nil
	}

	admin, err := s.adminRepo.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return 0, apperrors.ErrInvalidAdminLogin
		}
		return 0, err
	}
	if !auth.CheckPassword(admin.Password, req.Password) {
		return 0, apperrors.ErrInvalidAdminLogin
	}

	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID); err != nil {
		s.logger.Warn().Err(err).Int64("adminID", admin.ID).Msg("Failed to stamp admin last login")
	}

	return admin.ID, nil
}
