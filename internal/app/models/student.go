package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMonthlyFee is the fee assigned to newly registered students.
var DefaultMonthlyFee = decimal.NewFromInt(5000)

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64           `json:"id" db:"id" example:"1"`
	FullName     string          `json:"fullname" db:"fullname" example:"Ravi Kumar"`
	FatherName   string          `json:"fathername" db:"fathername" example:"Suresh Kumar"`
	Address      string          `json:"address" db:"address"`
	Aadhar       string          `json:"aadhar" db:"aadhar" example:"123456789012"` // exactly 12 digits, unique
	College      string          `json:"college" db:"college"`
	StudentPhone string          `json:"studentphone" db:"studentphone" example:"+919381422218"`
	FatherPhone  string          `json:"fatherphone" db:"fatherphone"`
	JoiningDate  time.Time       `json:"joiningdate" db:"joiningdate"`
	Email        string          `json:"email" db:"email" example:"ravi@example.com"` // unique
	PhotoURL     *string         `json:"photoUrl,omitempty" db:"photo_url"`           // nullable
	Password     string          `json:"-" db:"password"`                             // bcrypt hash, excluded from JSON
	MonthlyFee   decimal.Decimal `json:"monthlyFee" db:"monthly_fee"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}
