package models

// QuotationItem is one priced line owned by exactly one quotation. ItemOrder
// is the zero-based display position, kept dense on every write; the row id
// is storage identity only.
type QuotationItem struct {
	ID          uint `gorm:"column:id;primaryKey;autoIncrement"`
	QuotationID uint `gorm:"column:quotation_id;not null;index"`

	Description string  `gorm:"column:description;type:text;not null"`
	Quantity    int     `gorm:"column:quantity;not null;default:1"`
	Rate        float64 `gorm:"column:rate;not null;default:0"`
	Amount      float64 `gorm:"column:amount;not null;default:0"`
	ItemOrder   int     `gorm:"column:item_order;not null;default:0"`
}

func (QuotationItem) TableName() string {
	return "quotation_items"
}
