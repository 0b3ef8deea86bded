package models

import "gorm.io/gorm"

// User is an account that can pin favorite locations. Accounts are created
// implicitly on first login, so there is no separate registration flow.
type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	gorm.Model
}

func (User) TableName() string {
	return "users"
}
