package quotations

import (
	"context"
	"fmt"
	"time"

	"github.com/srmns/quotation-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository handles quotation persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to quotation operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LastNumberForYear returns the most recently issued quotation number for the
// year, or "" when none exists.
func (r *Repository) LastNumberForYear(ctx context.Context, year int) (string, error) {
	var q models.Quotation
	err := r.db.WithContext(ctx).
		Select("quotation_no").
		Where("quotation_no LIKE ?", fmt.Sprintf("QT-%d-%%", year)).
		Order("id DESC").
		First(&q).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return q.QuotationNo, nil
}

// Create persists the quotation header and its items as one transaction.
// The caller assigns item_order before handing the model over.
func (r *Repository) Create(ctx context.Context, q *models.Quotation) error {
	if q == nil {
		return fmt.Errorf("quotation is required")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(q).Error
	})
}

// Update saves the header fields and replaces the entire item collection.
// Delete + reinsert and the header write commit together or not at all.
func (r *Repository) Update(ctx context.Context, q *models.Quotation, items []models.QuotationItem) error {
	if q == nil {
		return fmt.Errorf("quotation is required")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(q).Error; err != nil {
			return err
		}
		if err := tx.Where("quotation_id = ?", q.ID).Delete(&models.QuotationItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ID = 0
			items[i].QuotationID = q.ID
		}
		return tx.Create(&items).Error
	})
}

// FindByID loads a quotation with its items in display order.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Quotation, error) {
	var q models.Quotation
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_order ASC")
		}).
		First(&q, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// FindByNumber loads a quotation by its human-readable number.
func (r *Repository) FindByNumber(ctx context.Context, quotationNo string) (*models.Quotation, error) {
	var q models.Quotation
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_order ASC")
		}).
		Where("quotation_no = ?", quotationNo).
		First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// List returns one page of quotations, newest first.
func (r *Repository) List(ctx context.Context, offset, limit int) ([]models.Quotation, error) {
	var qs []models.Quotation
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_order ASC")
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&qs).Error
	if err != nil {
		return nil, err
	}
	return qs, nil
}

// Count returns the total number of quotations.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Quotation{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// SumGrandTotal returns the sum of grand_total across every quotation.
func (r *Repository) SumGrandTotal(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&models.Quotation{}).
		Select("COALESCE(SUM(grand_total), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}

// CountCreatedBetween counts quotations created in the half-open window
// [from, to). The window is computed in Go so the query stays portable
// between Postgres and SQLite.
func (r *Repository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Quotation{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
