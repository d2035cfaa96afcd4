package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/skhostel/hostelpay/internal/app/models/dto"
	"github.com/skhostel/hostelpay/internal/app/services"
	"github.com/skhostel/hostelpay/internal/middleware"
	"github.com/skhostel/hostelpay/internal/pkg/apperrors"
)

// PaymentController handles the student payment surface and the admin
// payment management surface.
type PaymentController struct {
	paymentService *services.PaymentService
	logger         zerolog.Logger
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService *services.PaymentService, logger zerolog.Logger) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		logger:         logger,
	}
}

// MyPayments returns the logged-in student's payment history
// @Summary My payment history
// @Description Lists the logged-in student's payments with the paid/due summary for the requested month
// @Tags payments
// @Produce json
// @Param month query string false "Month to summarize (defaults to the current calendar month)"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentListResponse}
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Failure 403 {object} dto.ErrorResponse "Not a student session"
// @Security SessionCookie
// @Router /my-payments [get]
func (c *PaymentController) MyPayments(ctx *gin.Context) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	history, err := c.paymentService.PaymentHistory(ctx.Request.Context(), studentID, ctx.Query("month"), false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: history})
}

// RecordMyPayment records a payment for the logged-in student
// @Summary Record my payment
// @Description Records a fee payment for the logged-in student and fires the payment notification
// @Tags payments
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Month and amount"
// @Success 201 {object} dto.APIResponse{data=dto.PaymentResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown month or negative amount"
// @Security SessionCookie
// @Router /my-payments [post]
func (c *PaymentController) RecordMyPayment(ctx *gin.Context) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(
			middleware.BindingErrorMessage(err, "Month and amount are required.")))
		return
	}

	payment, err := c.paymentService.CreatePayment(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message: "Payment recorded successfully.",
		Data:    dto.NewPaymentResponse(payment),
	})
}

// StudentPayments returns any student's payment history for an admin
// @Summary Student payment history (admin)
// @Description Lists a student's payments for an admin, with the month summary
// @Tags admin
// @Produce json
// @Param id path int true "Student ID"
// @Param month query string false "Month to summarize"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentListResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security SessionCookie
// @Router /myadmin/student/{id}/payments [get]
func (c *PaymentController) StudentPayments(ctx *gin.Context) {
	studentID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	history, err := c.paymentService.PaymentHistory(ctx.Request.Context(), studentID, ctx.Query("month"), true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: history})
}

// RecordStudentPayment records a payment on a student's behalf
// @Summary Record a student payment (admin)
// @Description Records a fee payment for the given student on the admin's behalf
// @Tags admin
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.CreatePaymentRequest true "Month and amount"
// @Success 201 {object} dto.APIResponse{data=dto.PaymentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security SessionCookie
// @Router /myadmin/student/{id}/payments [post]
func (c *PaymentController) RecordStudentPayment(ctx *gin.Context) {
	studentID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(
			middleware.BindingErrorMessage(err, "Month and amount are required.")))
		return
	}

	payment, err := c.paymentService.CreatePayment(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message: "Payment recorded successfully.",
		Data:    dto.NewPaymentResponse(payment),
	})
}

// ManagePayment returns the manage-payment context for a student
// @Summary Manage-payment context (admin)
// @Description Returns the student, their payments, and the payment being edited when payment_id is given
// @Tags admin
// @Produce json
// @Param id path int true "Student ID"
// @Param payment_id query int false "Payment to edit"
// @Success 200 {object} dto.APIResponse{data=dto.ManagePaymentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student or payment not found"
// @Security SessionCookie
// @Router /myadmin/manage-payment/{id} [get]
func (c *PaymentController) ManagePayment(ctx *gin.Context) {
	studentID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var paymentID *int64
	if raw := ctx.Query("payment_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid payment id."))
			return
		}
		paymentID = &id
	}

	managed, err := c.paymentService.ManagePaymentContext(ctx.Request.Context(), studentID, paymentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: managed})
}

// SaveManagedPayment creates or updates a payment for a student
// @Summary Save a managed payment (admin)
// @Description Creates a payment for the student, or updates the one named by payment_id; updates fire no notification
// @Tags admin
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Student ID"
// @Param payment_id query int false "Payment to update instead of creating"
// @Param request body dto.CreatePaymentRequest true "Month and amount"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student or payment not found"
// @Security SessionCookie
// @Router /myadmin/manage-payment/{id} [post]
func (c *PaymentController) SaveManagedPayment(ctx *gin.Context) {
	studentID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(
			middleware.BindingErrorMessage(err, "Month and amount are required.")))
		return
	}

	if raw := ctx.Query("payment_id"); raw != "" {
		paymentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid payment id."))
			return
		}

		payment, err := c.paymentService.UpdatePayment(ctx.Request.Context(), studentID, paymentID, &req)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.APIResponse{
			Message: "Payment updated successfully.",
			Data:    dto.NewPaymentResponse(payment),
		})
		return
	}

	payment, err := c.paymentService.CreatePayment(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message: "Payment recorded successfully.",
		Data:    dto.NewPaymentResponse(payment),
	})
}

// DeletePayment removes a payment
// @Summary Delete a payment (admin)
// @Description Deletes the payment and reports the owning student so the caller can return to their history
// @Tags admin
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Security SessionCookie
// @Router /delete-payment/{id} [get]
func (c *PaymentController) DeletePayment(ctx *gin.Context) {
	paymentID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	studentID, err := c.paymentService.DeletePayment(ctx.Request.Context(), paymentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("paymentID", paymentID).Int64("studentID", studentID).Msg("Payment deleted")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message: "Payment deleted successfully.",
		Data:    gin.H{"studentId": studentID, "redirect": "/myadmin/student/" + strconv.FormatInt(studentID, 10) + "/payments"},
	})
}

// pathID parses a positive integer path parameter.
func pathID(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("Invalid id parameter.")
	}
	return id, nil
}
