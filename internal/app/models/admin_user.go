package models

import "time"

// AdminUser defines the admin model based on the 'admin_users' table
type AdminUser struct {
	ID        int64      `json:"id" db:"id"`
	AdminName string     `json:"adminname" db:"adminname"` // unique
	Password  string     `json:"-" db:"password"`          // bcrypt hash
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	LastLogin *time.Time `json:"lastLogin,omitempty" db:"last_login"` // nullable
}
