// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/skhostel/hostelpay/internal/app/models"
	"github.com/skhostel/hostelpay/internal/app/models/dto"
	"github.com/skhostel/hostelpay/internal/app/services"
	"github.com/skhostel/hostelpay/internal/middleware"
	"github.com/skhostel/hostelpay/internal/pkg/auth"
)

// AuthController handles signup, login and logout
type AuthController struct {
	authService *services.AuthService
	sessions    *auth.SessionService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, sessions *auth.SessionService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// setSession issues a fresh session cookie, replacing any prior session so a
// role switch can never ride an old cookie.
func (c *AuthController) setSession(ctx *gin.Context, role auth.Role, subjectID int64) error {
	token, err := c.sessions.Issue(role, subjectID)
	if err != nil {
		return err
	}
	ctx.SetCookie(c.sessions.CookieName(), token, c.sessions.TTLSeconds(), "/", "", false, true)
	return nil
}

// clearSession drops the session cookie entirely.
func (c *AuthController) clearSession(ctx *gin.Context) {
	ctx.SetCookie(c.sessions.CookieName(), "", -1, "/", "", false, true)
}

// SignupPage returns the signup render context
// @Summary Signup page context
// @Description Returns the month names and required fields for the signup form
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SignupPageResponse}
// @Router /signup [get]
func (c *AuthController) SignupPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SignupPageResponse{
			Months: models.Months,
			RequiredFields: []string{
				"fullname", "fathername", "address", "aadhar", "college",
				"studentphone", "fatherphone", "joiningdate", "email", "password",
			},
		},
	})
}

// Signup handles both signup branches: a student form (multipart with an
// optional photo) or an admin form, selected by the presence of adminname.
// @Summary Create a student or admin account
// @Description Registers a student (multipart form, optional photo) or, when the adminname field is present, an admin account
// @Tags auth
// @Accept mpfd
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.SessionResponse} "Account created, log in next"
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 409 {object} dto.ErrorResponse "Duplicate email/aadhar/adminname"
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	// Admin branch is keyed off the adminname field, matching the combined
	// signup form.
	if ctx.PostForm("adminname") != "" {
		c.signupAdmin(ctx)
		return
	}
	c.signupStudent(ctx)
}

func (c *AuthController) signupStudent(ctx *gin.Context) {
	var req dto.StudentSignupRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup request payload")
		// Fall through to the pipeline so the first missing field is reported
		// with its own message.
	}

	photo, err := ctx.FormFile("photo")
	if err != nil && err != http.ErrMissingFile {
		photo = nil
	}

	student, err := c.authService.SignupStudent(ctx.Request.Context(), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message: "Student account created successfully! Please log in.",
		Data:    dto.SessionResponse{Role: string(auth.RoleStudent), ID: student.ID, Redirect: "/login"},
	})
}

func (c *AuthController) signupAdmin(ctx *gin.Context) {
	req := dto.AdminSignupRequest{
		AdminName:       ctx.PostForm("adminname"),
		Password:        ctx.PostForm("password"),
		ConfirmPassword: ctx.PostForm("confirmpassword"),
	}

	admin, err := c.authService.SignupAdmin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message: "Admin account created! Please log in.",
		Data:    dto.SessionResponse{Role: string(auth.RoleAdmin), ID: admin.ID, Redirect: "/login"},
	})
}

// Login establishes a student session
// @Summary Student login
// @Description Authenticates a student by email or full name and establishes a session cookie
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Session established"
// @Failure 401 {object} dto.ErrorResponse "Invalid username or password."
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid username or password.")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.authService.LoginStudent(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Str("username", req.Username).Msg("Student login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.setSession(ctx, auth.RoleStudent, student.ID); err != nil {
		c.logger.Error().Err(err).Msg("Failed to issue session")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", student.ID).Msg("Student logged in")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SessionResponse{Role: string(auth.RoleStudent), ID: student.ID, Redirect: "/my-payments"},
	})
}

// AdminLogin establishes an admin session
// @Summary Admin login
// @Description Authenticates an admin via the bootstrap shortcut or the admin_users table
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Session established"
// @Failure 401 {object} dto.ErrorResponse "Invalid admin credentials."
// @Router /myadmin/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid admin credentials.")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	adminID, err := c.authService.LoginAdmin(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Str("username", req.Username).Msg("Admin login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.setSession(ctx, auth.RoleAdmin, adminID); err != nil {
		c.logger.Error().Err(err).Msg("Failed to issue session")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("adminID", adminID).Msg("Admin logged in")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SessionResponse{Role: string(auth.RoleAdmin), ID: adminID, Redirect: "/myadmin/students"},
	})
}

// Logout clears the session
// @Summary Log out
// @Description Invalidates the current session for any role
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.clearSession(ctx)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message: "Logged out successfully.",
		Data:    dto.SessionResponse{Redirect: "/login"},
	})
}
