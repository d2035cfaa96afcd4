package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/skhostel/hostelpay/internal/app/models"
	"github.com/skhostel/hostelpay/internal/app/models/dto"
	"github.com/skhostel/hostelpay/internal/app/notify"
	"github.com/skhostel/hostelpay/internal/app/repositories"
	"github.com/skhostel/hostelpay/internal/pkg/apperrors"
)

// PaymentService is the fee accounting engine: paid/due computation over
// payment rows plus payment CRUD on behalf of students and admins.
type PaymentService struct {
	paymentRepo repositories.IPaymentRepository
	studentRepo repositories.IStudentRepository
	notifier    notify.Notifier
	logger      zerolog.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo repositories.IPaymentRepository,
	studentRepo repositories.IStudentRepository,
	notifier notify.Notifier,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// PaidAmount sums all payments of a student for a month, matched
// case-insensitively. A month with no payments sums to zero.
func (s *PaymentService) PaidAmount(ctx context.Context, studentID int64, month string) (decimal.Decimal, error) {
	return s.paymentRepo.SumForMonth(ctx, studentID, month)
}

// DueAmount computes the remaining due for a month. The result may be
// negative on overpayment; callers treat <= 0 as paid in full.
func (s *PaymentService) DueAmount(ctx context.Context, student *models.Student, month string) (decimal.Decimal, error) {
	paid, err := s.PaidAmount(ctx, student.ID, month)
	if err != nil {
		return decimal.Zero, err
	}
	return student.MonthlyFee.Sub(paid), nil
}

// MonthSummary reports paid and due for a student's month.
func (s *PaymentService) MonthSummary(ctx context.Context, student *models.Student, month string) (dto.MonthSummary, error) {
	paid, err := s.PaidAmount(ctx, student.ID, month)
	if err != nil {
		return dto.MonthSummary{}, err
	}
	due := student.MonthlyFee.Sub(paid)
	return dto.MonthSummary{
		Month:      month,
		Paid:       paid,
		Due:        due,
		PaidInFull: due.LessThanOrEqual(decimal.Zero),
	}, nil
}

// validatePayment normalizes the month name and bounds the amount.
func validatePayment(req *dto.CreatePaymentRequest) (string, error) {
	month, ok := models.CanonicalMonth(req.Month)
	if !ok {
		return "", apperrors.NewValidationError("Month must be a calendar month name.")
	}
	if req.Amount.IsNegative() {
		return "", apperrors.NewValidationError("Amount must not be negative.")
	}
	return month, nil
}

// CreatePayment records a payment for a student and emits the payment
// notification event exactly once.
func (s *PaymentService) CreatePayment(ctx context.Context, studentID int64, req *dto.CreatePaymentRequest) (*models.Payment, error) {
	month, err := validatePayment(req)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		StudentID: student.ID,
		Amount:    req.Amount,
		Month:     month,
	}
	if _, err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	due, err := s.DueAmount(ctx, student, month)
	if err != nil {
		// The payment stands; only the notification context failed.
		s.logger.Warn().Err(err).Int64("paymentID", payment.ID).Msg("Failed to compute due for payment notification")
		return payment, nil
	}

	s.notifier.PaymentRecorded(ctx, notify.PaymentRecorded{
		StudentID:   student.ID,
		StudentName: student.FullName,
		Month:       month,
		Amount:      payment.Amount,
		Due:         due,
	})

	return payment, nil
}

// UpdatePayment rewrites a payment's month and amount in place. The payment
// must belong to the given student; no notification event fires on update.
func (s *PaymentService) UpdatePayment(ctx context.Context, studentID, paymentID int64, req *dto.CreatePaymentRequest) (*models.Payment, error) {
	month, err := validatePayment(req)
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetForStudent(ctx, studentID, paymentID)
	if err != nil {
		return nil, err
	}

	payment.Month = month
	payment.Amount = req.Amount
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// DeletePayment removes a payment and returns the owning student's id so the
// caller can land back on that student's payment list. No notification event
// fires on delete.
func (s *PaymentService) DeletePayment(ctx context.Context, paymentID int64) (int64, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return 0, err
	}
	if err := s.paymentRepo.Delete(ctx, payment.ID); err != nil {
		return 0, err
	}
	return payment.StudentID, nil
}

// PaymentHistory builds the render context for a student's payment page: the
// student, their payments newest first, and the accounting summary for the
// requested month.
func (s *PaymentService) PaymentHistory(ctx context.Context, studentID int64, month string, isAdmin bool) (*dto.PaymentListResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if month == "" {
		month = time.Now().Month().String()
	}
	canonical, ok := models.CanonicalMonth(month)
	if !ok {
		return nil, apperrors.NewValidationError("Month must be a calendar month name.")
	}

	payments, err := s.paymentRepo.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	summary, err := s.MonthSummary(ctx, student, canonical)
	if err != nil {
		return nil, err
	}

	return &dto.PaymentListResponse{
		Student:  dto.NewStudentResponse(student),
		Payments: dto.NewPaymentResponses(payments),
		Summary:  summary,
		IsAdmin:  isAdmin,
	}, nil
}

// ManagePaymentContext builds the admin add/edit context for one student,
// optionally loading the payment under edit.
func (s *PaymentService) ManagePaymentContext(ctx context.Context, studentID int64, paymentID *int64) (*dto.ManagePaymentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var editing *dto.PaymentResponse
	if paymentID != nil {
		payment, err := s.paymentRepo.GetForStudent(ctx, student.ID, *paymentID)
		if err != nil {
			return nil, err
		}
		resp := dto.NewPaymentResponse(payment)
		editing = &resp
	}

	payments, err := s.paymentRepo.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ManagePaymentResponse{
		Student:  dto.NewStudentResponse(student),
		Payment:  editing,
		Payments: dto.NewPaymentResponses(payments),
	}, nil
}
