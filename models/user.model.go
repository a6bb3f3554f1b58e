package models

import (
	"gorm.io/gorm"
)

// User is a dashboard account. The password column only ever holds a bcrypt
// hash, never the plain text.
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}
