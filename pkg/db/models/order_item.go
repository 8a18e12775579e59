package models

// OrderItem snapshots a purchased product line. Rows belong to exactly one
// order and are removed by the order cascade.
type OrderItem struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID     int64   `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID   int64   `gorm:"column:product_id;not null" json:"product_id"`
	ProductName string  `gorm:"column:product_name;not null" json:"product_name"`
	Size        *string `gorm:"column:size" json:"size,omitempty"`
	Quantity    int     `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice   float64 `gorm:"column:unit_price;not null" json:"unit_price"`
	TotalPrice  float64 `gorm:"column:total_price;not null" json:"total_price"`
	ImageURL    *string `gorm:"column:image_url" json:"image_url,omitempty"`
}
