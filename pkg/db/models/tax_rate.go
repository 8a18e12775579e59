package models

// TaxRate is static per-state reference data seeded by migrations.
type TaxRate struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StateCode string  `gorm:"column:state_code;not null;uniqueIndex" json:"state_code"`
	StateName string  `gorm:"column:state_name;not null" json:"state_name"`
	Rate      float64 `gorm:"column:rate;not null" json:"rate"`
}
