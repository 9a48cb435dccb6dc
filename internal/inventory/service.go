package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/srmns/quotation-backend/pkg/db/models"
	pkgerrors "github.com/srmns/quotation-backend/pkg/errors"
	"gorm.io/gorm"
)

type repository interface {
	List(ctx context.Context) ([]models.InventoryItem, error)
	FindByName(ctx context.Context, name string) (*models.InventoryItem, error)
	FindByID(ctx context.Context, id uint) (*models.InventoryItem, error)
	Create(ctx context.Context, item *models.InventoryItem) error
	Save(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id uint) error
	BulkUpsert(ctx context.Context, entries []BulkEntry) error
}

// Service exposes inventory operations.
type Service interface {
	List(ctx context.Context) ([]ItemDTO, error)
	Upsert(ctx context.Context, req SaveItemRequest) (*ItemDTO, error)
	BulkUpsert(ctx context.Context, req BulkSaveRequest) error
	Update(ctx context.Context, id uint, req UpdateItemRequest) (*ItemDTO, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo repository
}

// NewService builds an inventory service over the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ItemDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list inventory")
	}
	dtos := make([]ItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *fromModel(&items[i]))
	}
	return dtos, nil
}

// Upsert creates the named item or overwrites the fields the request carries.
func (s *service) Upsert(ctx context.Context, req SaveItemRequest) (*ItemDTO, error) {
	name := strings.TrimSpace(req.ItemName)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid payload")
	}

	existing, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		if req.Qty != nil {
			existing.Qty = *req.Qty
		}
		if req.MRP != nil {
			existing.MRP = *req.MRP
		}
		if err := s.repo.Save(ctx, existing); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save inventory item")
		}
		return fromModel(existing), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := &models.InventoryItem{ItemName: name}
		if req.Qty != nil {
			item.Qty = *req.Qty
		}
		if req.MRP != nil {
			item.MRP = *req.MRP
		}
		if err := s.repo.Create(ctx, item); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create inventory item")
		}
		return fromModel(item), nil
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load inventory item")
	}
}

// BulkUpsert normalizes the batch (dropping nameless entries, as the intake
// sheet import has always done) and applies it atomically.
func (s *service) BulkUpsert(ctx context.Context, req BulkSaveRequest) error {
	if len(req.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "No items to save")
	}

	entries := make([]BulkEntry, 0, len(req.Items))
	for _, item := range req.Items {
		name := strings.TrimSpace(item.ItemName)
		if name == "" {
			continue
		}
		entry := BulkEntry{ItemName: name, MRP: item.MRP}
		if item.Qty != nil {
			entry.Qty = *item.Qty
		}
		entries = append(entries, entry)
	}

	if err := s.repo.BulkUpsert(ctx, entries); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "bulk upsert inventory")
	}
	return nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateItemRequest) (*ItemDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load inventory item")
	}

	if req.ItemName != nil {
		if name := strings.TrimSpace(*req.ItemName); name != "" {
			item.ItemName = name
		}
	}
	if req.Qty != nil {
		item.Qty = *req.Qty
	}
	if req.MRP != nil {
		item.MRP = *req.MRP
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save inventory item")
	}
	return fromModel(item), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load inventory item")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete inventory item")
	}
	return nil
}
