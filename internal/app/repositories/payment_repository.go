package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/skhostel/hostelpay/internal/app/models"
	"github.com/skhostel/hostelpay/internal/pkg/apperrors"
	"github.com/skhostel/hostelpay/internal/pkg/logger"
)

// PaymentRepository handles payment database operations
type PaymentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new payment row and returns its id
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) (int64, error) {
	builder := r.sb.Insert("payments").
		Columns("student_id", "amount", "month").
		Values(payment.StudentID, payment.Amount, payment.Month)

	sql, args, err := builder.Suffix("RETURNING id, date_paid").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create payment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&payment.ID, &payment.DatePaid); err != nil {
		logger.Error().Err(err).Int64("studentID", payment.StudentID).Msg("Error executing create payment query")
		return 0, fmt.Errorf("error creating payment: %w", err)
	}

	logger.Info().
		Int64("paymentID", payment.ID).
		Int64("studentID", payment.StudentID).
		Str("month", payment.Month).
		Str("amount", payment.Amount.String()).
		Msg("Payment recorded")
	return payment.ID, nil
}

// GetByID retrieves a payment by id
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "amount", "month", "date_paid").
		From("payments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get payment query: %w", err)
	}

	var p models.Payment
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.StudentID, &p.Amount, &p.Month, &p.DatePaid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("error retrieving payment: %w", err)
	}
	return &p, nil
}

// GetForStudent retrieves a payment by id scoped to one student. Used for
// admin edit-in-place so a payment id cannot reach across students.
func (r *PaymentRepository) GetForStudent(ctx context.Context, studentID, paymentID int64) (*models.Payment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "amount", "month", "date_paid").
		From("payments").
		Where(squirrel.Eq{"id": paymentID, "student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get payment for student query: %w", err)
	}

	var p models.Payment
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.StudentID, &p.Amount, &p.Month, &p.DatePaid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("error retrieving payment for student: %w", err)
	}
	return &p, nil
}

// ListByStudent retrieves a student's payments ordered by date paid descending
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Payment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "amount", "month", "date_paid").
		From("payments").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date_paid DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error listing payments")
		return nil, fmt.Errorf("error listing payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.StudentID, &p.Amount, &p.Month, &p.DatePaid); err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

// SumForMonth sums a student's payments for a month, matched case-insensitively.
// No rows yields zero, not an error.
func (r *PaymentRepository) SumForMonth(ctx context.Context, studentID int64, month string) (decimal.Decimal, error) {
	sql, args, err := r.sb.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(squirrel.Eq{"student_id": studentID}).
		Where("LOWER(month) = ?", strings.ToLower(month)).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build sum payments query: %w", err)
	}

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Str("month", month).Msg("Error summing payments")
		return decimal.Zero, fmt.Errorf("error summing payments: %w", err)
	}
	return total, nil
}

// Update rewrites a payment's month and amount in place
func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	sql, args, err := r.sb.Update("payments").
		Set("month", payment.Month).
		Set("amount", payment.Amount).
		Where(squirrel.Eq{"id": payment.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update payment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("paymentID", payment.ID).Msg("Error updating payment")
		return fmt.Errorf("error updating payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}

// Delete removes a payment row
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("payments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete payment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("paymentID", id).Msg("Error deleting payment")
		return fmt.Errorf("error deleting payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}

	logger.Info().Int64("paymentID", id).Msg("Payment deleted")
	return nil
}
