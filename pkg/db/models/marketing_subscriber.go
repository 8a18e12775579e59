package models

import "time"

// MarketingSubscriber tracks newsletter opt-ins. Unsubscribing flips
// Subscribed to false; rows are never hard-deleted.
type MarketingSubscriber struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	UserID       *int64    `gorm:"column:user_id" json:"user_id,omitempty"`
	Subscribed   bool      `gorm:"column:subscribed;not null;default:true" json:"subscribed"`
	SubscribedAt time.Time `gorm:"column:subscribed_at;autoCreateTime" json:"subscribed_at"`
}
