package models

import "time"

// Order is the persisted checkout result. UserID is nil for guest checkouts;
// OrderNumber is the public identifier and never changes after creation.
type Order struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID             *int64    `gorm:"column:user_id;index" json:"user_id,omitempty"`
	OrderNumber        string    `gorm:"column:order_number;not null;uniqueIndex" json:"order_number"`
	Status             string    `gorm:"column:status;not null;default:'pending'" json:"status"`
	Subtotal           float64   `gorm:"column:subtotal;not null" json:"subtotal"`
	TaxAmount          float64   `gorm:"column:tax_amount;not null;default:0" json:"tax_amount"`
	ShippingAmount     float64   `gorm:"column:shipping_amount;not null;default:0" json:"shipping_amount"`
	TotalAmount        float64   `gorm:"column:total_amount;not null" json:"total_amount"`
	ShippingFirstName  *string   `gorm:"column:shipping_first_name" json:"shipping_first_name,omitempty"`
	ShippingLastName   *string   `gorm:"column:shipping_last_name" json:"shipping_last_name,omitempty"`
	ShippingAddress1   *string   `gorm:"column:shipping_address1" json:"shipping_address1,omitempty"`
	ShippingAddress2   *string   `gorm:"column:shipping_address2" json:"shipping_address2,omitempty"`
	ShippingCity       *string   `gorm:"column:shipping_city" json:"shipping_city,omitempty"`
	ShippingState      *string   `gorm:"column:shipping_state" json:"shipping_state,omitempty"`
	ShippingPostalCode *string   `gorm:"column:shipping_postal_code" json:"shipping_postal_code,omitempty"`
	ShippingCountry    *string   `gorm:"column:shipping_country" json:"shipping_country,omitempty"`
	ShippingEmail      *string   `gorm:"column:shipping_email" json:"shipping_email,omitempty"`
	StripePaymentID    *string   `gorm:"column:stripe_payment_intent_id" json:"stripe_payment_intent_id,omitempty"`
	PrintifyOrderID    *string   `gorm:"column:printify_order_id" json:"printify_order_id,omitempty"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}
