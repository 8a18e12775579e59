package models

// Product is the local cache of the provider catalog. Rows are seeded by
// migrations and read-only at runtime; the live provider feed is authoritative
// whenever it is reachable.
type Product struct {
	ID          int64   `gorm:"column:id;primaryKey" json:"id"`
	Name        string  `gorm:"column:name;not null" json:"name"`
	Price       float64 `gorm:"column:price;not null" json:"price"`
	Category    *string `gorm:"column:category" json:"category,omitempty"`
	Tag         *string `gorm:"column:tag" json:"tag,omitempty"`
	Description *string `gorm:"column:description" json:"description,omitempty"`
	ImageURL    *string `gorm:"column:image_url" json:"image_url,omitempty"`
	Sizes       *string `gorm:"column:sizes" json:"-"`
	PrintifyID  *string `gorm:"column:printify_id" json:"printify_id,omitempty"`
}
