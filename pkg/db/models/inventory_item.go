package models

import "time"

// InventoryItem is a count/price row keyed by its trimmed item name.
type InventoryItem struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	ItemName  string    `gorm:"column:item_name;size:150;not null;uniqueIndex"`
	Qty       int       `gorm:"column:qty;not null;default:0"`
	MRP       float64   `gorm:"column:mrp;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}
