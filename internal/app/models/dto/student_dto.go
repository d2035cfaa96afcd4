package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/skhostel/hostelpay/internal/app/models"
)

// StudentResponse represents student information returned to the display layer
type StudentResponse struct {
	ID           int64           `json:"id"`
	FullName     string          `json:"fullname"`
	FatherName   string          `json:"fathername"`
	Address      string          `json:"address"`
	Aadhar       string          `json:"aadhar"`
	College      string          `json:"college"`
	StudentPhone string          `json:"studentphone"`
	FatherPhone  string          `json:"fatherphone"`
	JoiningDate  string          `json:"joiningdate"`
	Email        string          `json:"email"`
	PhotoURL     string          `json:"photoUrl,omitempty"`
	MonthlyFee   decimal.Decimal `json:"monthlyFee"`
}

// StudentListResponse is the render context for the admin student list.
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	Count    int               `json:"count"`
}

// NewStudentResponse maps a student model to its response form
func NewStudentResponse(s *models.Student) StudentResponse {
	resp := StudentResponse{
		ID:           s.ID,
		FullName:     s.FullName,
		FatherName:   s.FatherName,
		Address:      s.Address,
		Aadhar:       s.Aadhar,
		College:      s.College,
		StudentPhone: s.StudentPhone,
		FatherPhone:  s.FatherPhone,
		JoiningDate:  s.JoiningDate.Format(time.DateOnly),
		Email:        s.Email,
		MonthlyFee:   s.MonthlyFee,
	}
	if s.PhotoURL != nil {
		resp.PhotoURL = *s.PhotoURL
	}
	return resp
}

// NewStudentListResponse maps a slice of student models
func NewStudentListResponse(students []models.Student) StudentListResponse {
	out := make([]StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, NewStudentResponse(&students[i]))
	}
	return StudentListResponse{Students: out, Count: len(out)}
}
