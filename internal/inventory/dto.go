package inventory

import "github.com/srmns/quotation-backend/pkg/db/models"

// SaveItemRequest upserts a single item by name. Qty and MRP are pointers so
// an omitted field keeps the stored value on an existing row.
type SaveItemRequest struct {
	ItemName string   `json:"item_name"`
	Qty      *int     `json:"qty"`
	MRP      *float64 `json:"mrp"`
}

// BulkSaveRequest applies many upserts in one atomic batch.
type BulkSaveRequest struct {
	Items []SaveItemRequest `json:"items"`
}

// UpdateItemRequest partially updates an item by id.
type UpdateItemRequest struct {
	ItemName *string  `json:"item_name"`
	Qty      *int     `json:"qty"`
	MRP      *float64 `json:"mrp"`
}

// ItemDTO is the boundary shape for an inventory row.
type ItemDTO struct {
	ID       uint    `json:"id"`
	ItemName string  `json:"item_name"`
	Qty      int     `json:"qty"`
	MRP      float64 `json:"mrp"`
}

func fromModel(item *models.InventoryItem) *ItemDTO {
	if item == nil {
		return nil
	}
	return &ItemDTO{
		ID:       item.ID,
		ItemName: item.ItemName,
		Qty:      item.Qty,
		MRP:      item.MRP,
	}
}
