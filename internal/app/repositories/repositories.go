package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/skhostel/hostelpay/internal/app/models"
)

// IStudentRepository defines student persistence operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByFullName(ctx context.Context, fullName string) (*models.Student, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	AadharExists(ctx context.Context, aadhar string) (bool, error)
	GetAll(ctx context.Context) ([]models.Student, error)
}

// IAdminRepository defines admin persistence operations
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) (int64, error)
	GetByName(ctx context.Context, adminName string) (*models.AdminUser, error)
	NameExists(ctx context.Context, adminName string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// IPaymentRepository defines payment persistence operations
type IPaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Payment, error)
	GetForStudent(ctx context.Context, studentID, paymentID int64) (*models.Payment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.Payment, error)
	SumForMonth(ctx context.Context, studentID int64, month string) (decimal.Decimal, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id int64) error
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	AdminRepository   *AdminRepository
	PaymentRepository *PaymentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		AdminRepository:   NewAdminRepository(db),
		PaymentRepository: NewPaymentRepository(db),
	}
}
