package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skhostel/hostelpay/internal/app/models"
	"github.com/skhostel/hostelpay/internal/app/services"
	"github.com/skhostel/hostelpay/internal/middleware"
	"github.com/skhostel/hostelpay/internal/pkg/apperrors"
	"github.com/skhostel/hostelpay/internal/pkg/auth"
)

// MockStudentRepository is a mock implementation of repositories.IStudentRepository.
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

// MockAdminRepository is a mock implementation of repositories.IAdminRepository.
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

type noopFileStorage struct{}

func (noopFileStorage) SaveFileWithPath(*multipart.FileHeader, string) (string, error) {
	return "", nil
}

func (noopFileStorage) DeleteFile(string) error { return nil }

// newAdminTestRouter wires the real session service, middleware, auth
// controller and admin student list behind the routes they serve in
// production, backed by mocked repositories.
func newAdminTestRouter(studentRepo *MockStudentRepository, adminRepo *MockAdminRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	sessions := auth.NewSessionService(auth.SessionConfig{
		SecretKey:  "test-secret",
		TTL:        time.Hour,
		Issuer:     "hostelpay",
		CookieName: "hostelpay_session",
	})
	authService := services.NewAuthService(
		studentRepo,
		adminRepo,
		noopFileStorage{},
		services.BootstrapAdmin{Username: "1234", Password: "1234", ID: services.BootstrapAdminID},
		zerolog.Nop(),
	)
	authController := NewAuthController(authService, sessions, zerolog.Nop())
	adminController := NewAdminController(services.NewStudentService(studentRepo), zerolog.Nop())
	sessionMiddleware := middleware.NewSessionMiddleware(sessions)

	router := gin.New()
	router.Use(sessionMiddleware.Resolve())
	router.POST("/myadmin/login", authController.AdminLogin)
	admin := router.Group("/myadmin", sessionMiddleware.RequireAdminSession())
	admin.GET("/students", adminController.ListStudents)
	return router
}

func postAdminLogin(router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/myadmin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "hostelpay_session" {
			return c
		}
	}
	return nil
}

func TestAdminLogin_BootstrapSessionReachesAdminRoutes(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	adminRepo := new(MockAdminRepository)
	studentRepo.On("GetAll", mock.Anything).Return([]models.Student{
		{ID: 7, FullName: "Ravi Kumar", Email: "ravi@example.com", MonthlyFee: decimal.NewFromInt(5000)},
	}, nil)

	router := newAdminTestRouter(studentRepo, adminRepo)

	loginRec := postAdminLogin(router, "1234", "1234")
	require.Equal(t, http.StatusOK, loginRec.Code)
	cookie := sessionCookie(t, loginRec)
	require.NotNil(t, cookie, "login must set the session cookie")

	listReq := httptest.NewRequest(http.MethodGet, "/myadmin/students", nil)
	listReq.AddCookie(cookie)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	assert.Equal(t, http.StatusOK, listRec.Code)
	assert.Contains(t, listRec.Body.String(), "Ravi Kumar")
	// The bootstrap pair never touches the admin_users table.
	adminRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestAdminLogin_InvalidCredentialsStayLockedOut(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	adminRepo := new(MockAdminRepository)
	adminRepo.On("GetByName", mock.Anything, "1234").Return(nil, apperrors.ErrAdminNotFound)

	router := newAdminTestRouter(studentRepo, adminRepo)

	loginRec := postAdminLogin(router, "1234", "wrong")
	assert.Equal(t, http.StatusUnauthorized, loginRec.Code)
	assert.Nil(t, sessionCookie(t, loginRec))

	listReq := httptest.NewRequest(http.MethodGet, "/myadmin/students", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)
	assert.Equal(t, http.StatusUnauthorized, listRec.Code)
}
