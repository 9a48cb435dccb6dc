package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/srmns/quotation-backend/pkg/db/models"
	pkgerrors "github.com/srmns/quotation-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubRepo struct {
	items      []models.InventoryItem
	byName     *models.InventoryItem
	byNameErr  error
	byID       *models.InventoryItem
	byIDErr    error
	created    *models.InventoryItem
	saved      *models.InventoryItem
	deletedID  uint
	bulk       []BulkEntry
	bulkErr    error
	storageErr error
}

func (s *stubRepo) List(_ context.Context) ([]models.InventoryItem, error) {
	return s.items, s.storageErr
}

func (s *stubRepo) FindByName(_ context.Context, _ string) (*models.InventoryItem, error) {
	return s.byName, s.byNameErr
}

func (s *stubRepo) FindByID(_ context.Context, _ uint) (*models.InventoryItem, error) {
	return s.byID, s.byIDErr
}

func (s *stubRepo) Create(_ context.Context, item *models.InventoryItem) error {
	if s.storageErr != nil {
		return s.storageErr
	}
	item.ID = 1
	s.created = item
	return nil
}

func (s *stubRepo) Save(_ context.Context, item *models.InventoryItem) error {
	if s.storageErr != nil {
		return s.storageErr
	}
	s.saved = item
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id uint) error {
	s.deletedID = id
	return s.storageErr
}

func (s *stubRepo) BulkUpsert(_ context.Context, entries []BulkEntry) error {
	s.bulk = entries
	return s.bulkErr
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func newTestService(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestUpsertRejectsBlankName(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	_, err := svc.Upsert(context.Background(), SaveItemRequest{ItemName: "   "})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpsertCreatesWhenNameUnknown(t *testing.T) {
	repo := &stubRepo{byNameErr: gorm.ErrRecordNotFound}
	svc := newTestService(t, repo)

	dto, err := svc.Upsert(context.Background(), SaveItemRequest{
		ItemName: "  Netlon Mesh  ",
		Qty:      intPtr(5),
		MRP:      floatPtr(120),
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if repo.created == nil {
		t.Fatal("expected create")
	}
	if dto.ItemName != "Netlon Mesh" {
		t.Fatalf("expected trimmed name, got %q", dto.ItemName)
	}
	if dto.Qty != 5 || dto.MRP != 120 {
		t.Fatalf("unexpected dto %+v", dto)
	}
}

func TestUpsertOverwritesProvidedFieldsOnly(t *testing.T) {
	repo := &stubRepo{byName: &models.InventoryItem{ID: 3, ItemName: "Frame", Qty: 10, MRP: 80}}
	svc := newTestService(t, repo)

	dto, err := svc.Upsert(context.Background(), SaveItemRequest{
		ItemName: "Frame",
		Qty:      intPtr(4),
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if repo.saved == nil {
		t.Fatal("expected save of existing row")
	}
	if dto.Qty != 4 {
		t.Fatalf("expected qty overwritten to 4, got %d", dto.Qty)
	}
	if dto.MRP != 80 {
		t.Fatalf("expected mrp untouched, got %v", dto.MRP)
	}
}

func TestBulkUpsertRejectsEmptyBatch(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	err := svc.BulkUpsert(context.Background(), BulkSaveRequest{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBulkUpsertSkipsNamelessEntries(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo)

	err := svc.BulkUpsert(context.Background(), BulkSaveRequest{Items: []SaveItemRequest{
		{ItemName: "Mesh", Qty: intPtr(2)},
		{ItemName: "   "},
		{ItemName: "Frame", MRP: floatPtr(55)},
	}})
	if err != nil {
		t.Fatalf("bulk upsert: %v", err)
	}
	if len(repo.bulk) != 2 {
		t.Fatalf("expected 2 entries got %d", len(repo.bulk))
	}
	if repo.bulk[0].ItemName != "Mesh" || repo.bulk[0].Qty != 2 {
		t.Fatalf("unexpected first entry %+v", repo.bulk[0])
	}
	if repo.bulk[1].MRP == nil || *repo.bulk[1].MRP != 55 {
		t.Fatalf("unexpected second entry %+v", repo.bulk[1])
	}
}

func TestUpdateNotFound(t *testing.T) {
	repo := &stubRepo{byIDErr: gorm.ErrRecordNotFound}
	svc := newTestService(t, repo)

	_, err := svc.Update(context.Background(), 9, UpdateItemRequest{Qty: intPtr(1)})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateAppliesPartialFields(t *testing.T) {
	repo := &stubRepo{byID: &models.InventoryItem{ID: 2, ItemName: "Old", Qty: 1, MRP: 10}}
	svc := newTestService(t, repo)

	dto, err := svc.Update(context.Background(), 2, UpdateItemRequest{
		ItemName: strPtr("New"),
		MRP:      floatPtr(25),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.ItemName != "New" || dto.MRP != 25 {
		t.Fatalf("unexpected dto %+v", dto)
	}
	if dto.Qty != 1 {
		t.Fatalf("expected qty untouched, got %d", dto.Qty)
	}
}

func TestDeleteNotFound(t *testing.T) {
	repo := &stubRepo{byIDErr: gorm.ErrRecordNotFound}
	svc := newTestService(t, repo)

	err := svc.Delete(context.Background(), 11)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteRemovesExistingRow(t *testing.T) {
	repo := &stubRepo{byID: &models.InventoryItem{ID: 11}}
	svc := newTestService(t, repo)

	if err := svc.Delete(context.Background(), 11); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if repo.deletedID != 11 {
		t.Fatalf("expected delete of id 11, got %d", repo.deletedID)
	}
}

func TestListWrapsStoreErrors(t *testing.T) {
	repo := &stubRepo{storageErr: errors.New("boom")}
	svc := newTestService(t, repo)

	_, err := svc.List(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
