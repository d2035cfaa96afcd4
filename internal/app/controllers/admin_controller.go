package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/skhostel/hostelpay/internal/app/models/dto"
	"github.com/skhostel/hostelpay/internal/app/services"
	"github.com/skhostel/hostelpay/internal/middleware"
)

// AdminController handles the admin student directory
type AdminController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(studentService *services.StudentService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		studentService: studentService,
		logger:         logger,
	}
}

// ListStudents returns every registered student
// @Summary List students (admin)
// @Description Lists all registered students in registration order
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Failure 403 {object} dto.ErrorResponse "Not an admin session"
// @Security SessionCookie
// @Router /myadmin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: students})
}

// GetStudent returns a single student
// @Summary Get a student (admin)
// @Description Returns one student's profile
// @Tags admin
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security SessionCookie
// @Router /myadmin/student/{id} [get]
func (c *AdminController) GetStudent(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student})
}
