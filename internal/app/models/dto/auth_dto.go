package dto

// StudentSignupRequest carries the student branch of the signup form. The form
// is multipart; the optional photo file is read separately from the request.
type StudentSignupRequest struct {
	FullName     string `form:"fullname" json:"fullname" binding:"required"`
	FatherName   string `form:"fathername" json:"fathername" binding:"required"`
	Address      string `form:"address" json:"address" binding:"required"`
	Aadhar       string `form:"aadhar" json:"aadhar" binding:"required"`
	College      string `form:"college" json:"college" binding:"required"`
	StudentPhone string `form:"studentphone" json:"studentphone" binding:"required"`
	FatherPhone  string `form:"fatherphone" json:"fatherphone" binding:"required"`
	JoiningDate  string `form:"joiningdate" json:"joiningdate" binding:"required"` // YYYY-MM-DD
	Email        string `form:"email" json:"email" binding:"required"`
	Password     string `form:"password" json:"password" binding:"required"`
}

// AdminSignupRequest carries the admin branch of the signup form, selected by
// the presence of the adminname field.
type AdminSignupRequest struct {
	AdminName       string `form:"adminname" json:"adminname" binding:"required"`
	Password        string `form:"password" json:"password" binding:"required"`
	ConfirmPassword string `form:"confirmpassword" json:"confirmpassword"`
}

// LoginRequest represents student login credentials. Username may be the
// registered email or the full name.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// AdminLoginRequest represents admin login credentials
type AdminLoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// SessionResponse reports the established session after a successful login.
type SessionResponse struct {
	Role     string `json:"role" example:"student"`
	ID       int64  `json:"id" example:"1"`
	Redirect string `json:"redirect" example:"/my-payments"`
}

// SignupPageResponse is the render context for the signup page.
type SignupPageResponse struct {
	Months         []string `json:"months"`
	RequiredFields []string `json:"requiredFields"`
}
