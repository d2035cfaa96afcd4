package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skhostel/hostelpay/internal/app/models"
	"github.com/skhostel/hostelpay/internal/pkg/apperrors"
	"github.com/skhostel/hostelpay/internal/pkg/dberrors"
	"github.com/skhostel/hostelpay/internal/pkg/logger"
)

var studentColumns = []string{
	"id", "fullname", "fathername", "address", "aadhar", "college",
	"studentphone", "fatherphone", "joiningdate", "email", "photo_url",
	"password", "monthly_fee", "created_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.FullName, &s.FatherName, &s.Address, &s.Aadhar, &s.College,
		&s.StudentPhone, &s.FatherPhone, &s.JoiningDate, &s.Email, &s.PhotoURL,
		&s.Password, &s.MonthlyFee, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student and returns its id. A uniqueness race on email
// or aadhar surfaces as the matching duplicate error, not a raw DB error.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("fullname", "fathername", "address", "aadhar", "college",
			"studentphone", "fatherphone", "joiningdate", "email", "photo_url",
			"password", "monthly_fee").
		Values(student.FullName, student.FatherName, student.Address, student.Aadhar,
			student.College, student.StudentPhone, student.FatherPhone, student.JoiningDate,
			student.Email, student.PhotoURL, student.Password, student.MonthlyFee).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			logger.Warn().Str("email", student.Email).Msg("Attempted to create student with duplicate email")
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_aadhar_key") {
			logger.Warn().Str("aadhar", student.Aadhar).Msg("Attempted to create student with duplicate aadhar")
			return 0, apperrors.ErrAadharAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrDuplicateEntry
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	student.ID = id
	logger.Info().Int64("studentID", id).Str("email", student.Email).Msg("Student created")
	return id, nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by email query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}
	return student, nil
}

// GetByFullName retrieves the first student matching a full name. Login accepts
// the full name as a username alongside email.
func (r *StudentRepository) GetByFullName(ctx context.Context, fullName string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"fullname": fullName}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by name query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by name: %w", err)
	}
	return student, nil
}

// EmailExists checks if an email is already registered
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"email": email})
}

// AadharExists checks if an aadhar number is already registered
func (r *StudentRepository) AadharExists(ctx context.Context, aadhar string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"aadhar": aadhar})
}

func (r *StudentRepository) exists(ctx context.Context, cond squirrel.Eq) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(cond).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// GetAll retrieves all students ordered by id
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing students")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}
