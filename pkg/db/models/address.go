package models

import "time"

// Address stores a saved shipping address. At most one address per user
// carries IsDefault; the address service clears siblings inside the same
// transaction that inserts a new default.
type Address struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	IsDefault    bool      `gorm:"column:is_default;not null;default:false" json:"is_default"`
	FirstName    string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName     string    `gorm:"column:last_name;not null" json:"last_name"`
	AddressLine1 string    `gorm:"column:address_line1;not null" json:"address_line1"`
	AddressLine2 *string   `gorm:"column:address_line2" json:"address_line2,omitempty"`
	City         string    `gorm:"column:city;not null" json:"city"`
	State        string    `gorm:"column:state;not null" json:"state"`
	PostalCode   string    `gorm:"column:postal_code;not null" json:"postal_code"`
	Country      string    `gorm:"column:country;not null;default:'US'" json:"country"`
	Phone        *string   `gorm:"column:phone" json:"phone,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
