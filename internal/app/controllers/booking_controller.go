package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skhostel/hostelpay/internal/app/models/dto"
	"github.com/skhostel/hostelpay/internal/app/services"
	"github.com/skhostel/hostelpay/internal/middleware"
)

// BookingController handles the plan booking page
type BookingController struct {
	bookingService *services.BookingService
}

// NewBookingController creates a new BookingController
func NewBookingController(bookingService *services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// Book returns the booking context for a plan
// @Summary Book a plan
// @Description Returns the plan amount, the UPI deep link and a QR code image for paying it
// @Tags booking
// @Produce json
// @Param plan path string true "Plan name" Enums(daily, monthly, yearly)
// @Success 200 {object} dto.APIResponse{data=dto.BookingResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown plan"
// @Router /book/{plan} [get]
func (c *BookingController) Book(ctx *gin.Context) {
	booking, err := c.bookingService.Book(ctx.Param("plan"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: booking})
}
