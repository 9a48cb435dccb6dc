package quotations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/srmns/quotation-backend/pkg/config"
	"github.com/srmns/quotation-backend/pkg/db"
	"github.com/srmns/quotation-backend/pkg/db/models"
	pkgerrors "github.com/srmns/quotation-backend/pkg/errors"
	"github.com/srmns/quotation-backend/pkg/pagination"
	"gorm.io/gorm"
)

type repository interface {
	lastNumberFinder
	Create(ctx context.Context, q *models.Quotation) error
	Update(ctx context.Context, q *models.Quotation, items []models.QuotationItem) error
	FindByID(ctx context.Context, id uint) (*models.Quotation, error)
	FindByNumber(ctx context.Context, quotationNo string) (*models.Quotation, error)
	List(ctx context.Context, offset, limit int) ([]models.Quotation, error)
	Count(ctx context.Context) (int64, error)
	SumGrandTotal(ctx context.Context) (float64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// Service exposes the quotation lifecycle.
type Service interface {
	Create(ctx context.Context, req SaveQuotationRequest) (*QuotationDTO, error)
	Update(ctx context.Context, id uint, req SaveQuotationRequest) (*QuotationDTO, error)
	GetByID(ctx context.Context, id uint) (*QuotationDTO, error)
	GetByNumber(ctx context.Context, quotationNo string) (*QuotationDTO, error)
	List(ctx context.Context, params pagination.Params) (*ListResult, error)
}

type service struct {
	repo      repository
	numbering *Numbering
	company   config.CompanyConfig
}

// NewService builds a quotation service over the provided repository.
func NewService(repo repository, company config.CompanyConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("quotation repository required")
	}
	return &service{
		repo:      repo,
		numbering: NewNumbering(repo),
		company:   company,
	}, nil
}

// validateSave collects every violation so the caller sees all of them at
// once, not just the first.
func validateSave(req SaveQuotationRequest) []string {
	var msgs []string
	if strings.TrimSpace(req.CustomerInfo.BillTo) == "" {
		msgs = append(msgs, "Customer name is required")
	}
	if strings.TrimSpace(req.CustomerInfo.ContactNo) == "" {
		msgs = append(msgs, "Contact number is required")
	}
	if len(req.Items) == 0 {
		msgs = append(msgs, "At least one item is required")
	}
	return msgs
}

// parseEstimateDate treats malformed input as "no date". Rejecting it
// instead would break clients that have always sent junk here, so the
// swallow stays.
func parseEstimateDate(value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &parsed
}

func buildItems(inputs []ItemInput) []models.QuotationItem {
	items := make([]models.QuotationItem, 0, len(inputs))
	for i, input := range inputs {
		items = append(items, models.QuotationItem{
			Description: input.Description,
			Quantity:    input.Qty,
			Rate:        input.Rate,
			Amount:      input.Amount,
			ItemOrder:   i,
		})
	}
	return items
}

func (s *service) Create(ctx context.Context, req SaveQuotationRequest) (*QuotationDTO, error) {
	if msgs := validateSave(req); len(msgs) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(msgs)
	}

	now := time.Now()
	number, err := s.numbering.NextNumber(ctx, now.Year())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "derive quotation number")
	}

	q := &models.Quotation{
		QuotationNo:   number,
		QuotationDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),

		BillTo:        req.CustomerInfo.BillTo,
		StateName:     req.CustomerInfo.StateName,
		ContactNo:     req.CustomerInfo.ContactNo,
		CustomerGSTIN: req.CustomerInfo.GSTIN,
		EstimateNo:    req.CustomerInfo.EstimateNo,
		EstimateDate:  parseEstimateDate(req.CustomerInfo.EstimateDate),

		CompanyName:        s.company.Name,
		CompanyDescription: s.company.Description,
		CompanyPhone:       s.company.Phone,
		CompanyGSTIN:       s.company.GSTIN,
		CompanyAddress:     s.company.Address,
		CompanyBranch:      s.company.Branch,

		TotalAmount: req.Totals.TotalAmount,
		CGST:        req.Totals.CGST,
		SGST:        req.Totals.SGST,
		GrandTotal:  req.Totals.GrandTotal,

		Items: buildItems(req.Items),
	}

	if err := s.repo.Create(ctx, q); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDuplicate, err, "quotation number already taken")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create quotation")
	}

	return FromModel(q), nil
}

func (s *service) Update(ctx context.Context, id uint, req SaveQuotationRequest) (*QuotationDTO, error) {
	if msgs := validateSave(req); len(msgs) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(msgs)
	}

	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Quotation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quotation")
	}

	// The number is immutable once assigned; everything else follows the
	// request, and items are replaced wholesale.
	q.BillTo = req.CustomerInfo.BillTo
	q.StateName = req.CustomerInfo.StateName
	q.ContactNo = req.CustomerInfo.ContactNo
	q.CustomerGSTIN = req.CustomerInfo.GSTIN
	q.EstimateNo = req.CustomerInfo.EstimateNo
	q.EstimateDate = parseEstimateDate(req.CustomerInfo.EstimateDate)
	q.TotalAmount = req.Totals.TotalAmount
	q.CGST = req.Totals.CGST
	q.SGST = req.Totals.SGST
	q.GrandTotal = req.Totals.GrandTotal

	items := buildItems(req.Items)
	if err := s.repo.Update(ctx, q, items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update quotation")
	}

	q.Items = items
	return FromModel(q), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*QuotationDTO, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Quotation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quotation")
	}
	return FromModel(q), nil
}

func (s *service) GetByNumber(ctx context.Context, quotationNo string) (*QuotationDTO, error) {
	q, err := s.repo.FindByNumber(ctx, quotationNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// the queried number is echoed back in the 404 body
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Quotation not found").
				WithDetails(map[string]any{"quotation_no": quotationNo})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quotation")
	}
	return FromModel(q), nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*ListResult, error) {
	normalized := params.Normalize()

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count quotations")
	}

	rows, err := s.repo.List(ctx, normalized.Offset(), normalized.PerPage)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list quotations")
	}

	totalValue, err := s.repo.SumGrandTotal(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum grand totals")
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth, err := s.repo.CountCreatedBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count this month")
	}

	dtos := make([]QuotationDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *FromModel(&rows[i]))
	}

	return &ListResult{
		Quotations: dtos,
		Pagination: pagination.MetaFor(normalized, total),
		Stats: Stats{
			TotalValue: totalValue,
			ThisMonth:  thisMonth,
		},
	}, nil
}
