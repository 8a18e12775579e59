package models

import "time"

// CartItem is a product snapshot owned either by a user (UserID set) or by an
// anonymous browsing session (SessionID set). Login transfers session rows to
// the user without consolidating duplicate product/size lines.
type CartItem struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      *int64    `gorm:"column:user_id;index" json:"user_id,omitempty"`
	SessionID   *string   `gorm:"column:session_id;index" json:"session_id,omitempty"`
	ProductID   int64     `gorm:"column:product_id;not null" json:"product_id"`
	ProductName string    `gorm:"column:product_name;not null" json:"product_name"`
	Size        string    `gorm:"column:size;not null" json:"size"`
	Quantity    int       `gorm:"column:quantity;not null;default:1" json:"quantity"`
	UnitPrice   float64   `gorm:"column:unit_price;not null" json:"unit_price"`
	ImageURL    *string   `gorm:"column:image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
