package inventory

import (
	"context"
	"fmt"

	"github.com/srmns/quotation-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles inventory persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to inventory operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every inventory row ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).Order("item_name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByName loads an item by its exact name.
func (r *Repository) FindByName(ctx context.Context, name string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).Where("item_name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByID loads an item by id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new row.
func (r *Repository) Create(ctx context.Context, item *models.InventoryItem) error {
	if item == nil {
		return fmt.Errorf("item is required")
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// Save persists the provided item.
func (r *Repository) Save(ctx context.Context, item *models.InventoryItem) error {
	if item == nil {
		return fmt.Errorf("item is required")
	}
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an item by id.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id).Error
}

// BulkEntry is one normalized bulk upsert instruction.
type BulkEntry struct {
	ItemName string
	Qty      int
	MRP      *float64
}

// BulkUpsert applies the batch in a single transaction: existing rows add
// quantity and take a provided MRP; unknown names insert fresh rows.
func (r *Repository) BulkUpsert(ctx context.Context, entries []BulkEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			var existing models.InventoryItem
			err := tx.Where("item_name = ?", entry.ItemName).First(&existing).Error
			switch {
			case err == nil:
				existing.Qty += entry.Qty
				if entry.MRP != nil {
					existing.MRP = *entry.MRP
				}
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			case err == gorm.ErrRecordNotFound:
				item := models.InventoryItem{ItemName: entry.ItemName, Qty: entry.Qty}
				if entry.MRP != nil {
					item.MRP = *entry.MRP
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}
