package models

import "gorm.io/gorm"

// Notification is an in-app message shown on the notifications screen.
// Details carries the long-form text used for booking confirmations.
type Notification struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"column:user_id;not null"`
	User    *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Message string `json:"message" gorm:"column:message;not null"`
	Details string `json:"details,omitempty" gorm:"column:details"`
	IsRead  bool   `json:"isRead" gorm:"column:is_read;not null;default:false"`
}

// TableName specifies the table name
func (Notification) TableName() string {
	return "notifications"
}
