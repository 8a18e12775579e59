package models

import "time"

// User represents the canonical account identity.
type User struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email          string    `gorm:"column:email;type:text;not null;uniqueIndex" json:"email"`
	PasswordHash   string    `gorm:"column:password_hash;not null" json:"-"`
	FirstName      *string   `gorm:"column:first_name" json:"first_name,omitempty"`
	LastName       *string   `gorm:"column:last_name" json:"last_name,omitempty"`
	Phone          *string   `gorm:"column:phone" json:"phone,omitempty"`
	MarketingOptIn bool      `gorm:"column:marketing_opt_in;not null;default:true" json:"marketing_opt_in"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Addresses []Address  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CartItems []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
