package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name           string            `json:"name" gorm:"column:name;size:100;not null"`
	Email          string            `json:"email" gorm:"column:email;size:100;unique;not null"`
	PasswordHash   string            `json:"-" gorm:"column:password_hash;not null"`
	Preferences    datatypes.JSONMap `json:"preferences" gorm:"column:preferences"`
	PaymentDetails datatypes.JSONMap `json:"payment_details" gorm:"column:payment_details"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
