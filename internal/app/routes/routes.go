package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/skhostel/hostelpay/internal/app/controllers"
	"github.com/skhostel/hostelpay/internal/middleware"
	"github.com/skhostel/hostelpay/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminController,
	bookingController *controllers.BookingController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// Session resolution runs on every route; guards are applied per group.
	router.Use(sessionMiddleware.Resolve())

	// --- Public routes ---
	router.GET("/signup", authController.SignupPage)
	router.POST("/signup", authController.Signup)
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)
	router.GET("/book/:plan", bookingController.Book)

	// --- Student routes ---
	student := router.Group("")
	student.Use(sessionMiddleware.RequireRole(auth.RoleStudent))
	{
		student.GET("/my-payments", paymentController.MyPayments)
		student.POST("/my-payments", paymentController.RecordMyPayment)
	}

	// --- Admin routes ---
	// Admin login itself is public; everything else under /myadmin requires
	// an admin session, as does payment deletion.
	router.POST("/myadmin/login", authController.AdminLogin)

	admin := router.Group("/myadmin")
	admin.Use(sessionMiddleware.RequireAdminSession())
	{
		admin.GET("/students", adminController.ListStudents)
		admin.GET("/student/:id", adminController.GetStudent)
		admin.GET("/student/:id/payments", paymentController.StudentPayments)
		admin.POST("/student/:id/payments", paymentController.RecordStudentPayment)
		admin.GET("/manage-payment/:id", paymentController.ManagePayment)
		admin.POST("/manage-payment/:id", paymentController.SaveManagedPayment)
	}

	deletion := router.Group("")
	deletion.Use(sessionMiddleware.RequireAdminSession())
	{
		deletion.GET("/delete-payment/:id", paymentController.DeletePayment)
	}
}
