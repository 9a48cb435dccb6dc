package quotations

import (
	"time"

	"github.com/srmns/quotation-backend/pkg/db/models"
	"github.com/srmns/quotation-backend/pkg/pagination"
)

// SaveQuotationRequest is the shared body for create and update. The boundary
// uses the camelCase keys the frontend has always sent; column naming is an
// internal concern.
type SaveQuotationRequest struct {
	CustomerInfo CustomerInfoInput `json:"customerInfo"`
	Totals       TotalsInput       `json:"totals"`
	Items        []ItemInput       `json:"items"`
}

type CustomerInfoInput struct {
	BillTo       string `json:"billTo"`
	StateName    string `json:"stateName"`
	ContactNo    string `json:"contactNo"`
	GSTIN        string `json:"gstin"`
	EstimateNo   string `json:"estimateNo"`
	EstimateDate string `json:"estimateDate"`
}

type TotalsInput struct {
	TotalAmount float64 `json:"totalAmount"`
	CGST        float64 `json:"cgst"`
	SGST        float64 `json:"sgst"`
	GrandTotal  float64 `json:"grandTotal"`
}

type ItemInput struct {
	Description string  `json:"description"`
	Qty         int     `json:"qty"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// QuotationDTO is the full response shape for a single quotation.
type QuotationDTO struct {
	ID            uint            `json:"id"`
	QuotationNo   string          `json:"quotation_no"`
	QuotationDate string          `json:"quotation_date"`
	CustomerInfo  CustomerInfoDTO `json:"customerInfo"`
	CompanyInfo   CompanyInfoDTO  `json:"companyInfo"`
	Items         []ItemDTO       `json:"items"`
	Totals        TotalsDTO       `json:"totals"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type CustomerInfoDTO struct {
	BillTo       string  `json:"billTo"`
	StateName    string  `json:"stateName"`
	ContactNo    string  `json:"contactNo"`
	GSTIN        string  `json:"gstin"`
	EstimateNo   string  `json:"estimateNo"`
	EstimateDate *string `json:"estimateDate"`
}

type CompanyInfoDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	GSTIN       string `json:"gstin"`
	Address     string `json:"address"`
	Branch      string `json:"branch"`
}

type ItemDTO struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	Qty         int     `json:"qty"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
	ItemOrder   int     `json:"item_order"`
}

type TotalsDTO struct {
	TotalAmount float64 `json:"totalAmount"`
	CGST        float64 `json:"cgst"`
	SGST        float64 `json:"sgst"`
	GrandTotal  float64 `json:"grandTotal"`
}

// Stats are global aggregates, independent of the requested page.
type Stats struct {
	TotalValue float64 `json:"total_value"`
	ThisMonth  int64   `json:"this_month"`
}

// ListResult is the paged listing envelope.
type ListResult struct {
	Quotations []QuotationDTO  `json:"quotations"`
	Pagination pagination.Meta `json:"pagination"`
	Stats      Stats           `json:"stats"`
}

const dateLayout = "2006-01-02"

// FromModel maps a persisted quotation (items preloaded in display order)
// into the response shape.
func FromModel(q *models.Quotation) *QuotationDTO {
	if q == nil {
		return nil
	}

	var estimateDate *string
	if q.EstimateDate != nil {
		formatted := q.EstimateDate.Format(dateLayout)
		estimateDate = &formatted
	}

	items := make([]ItemDTO, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, ItemDTO{
			ID:          item.ID,
			Description: item.Description,
			Qty:         item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
			ItemOrder:   item.ItemOrder,
		})
	}

	return &QuotationDTO{
		ID:            q.ID,
		QuotationNo:   q.QuotationNo,
		QuotationDate: q.QuotationDate.Format(dateLayout),
		CustomerInfo: CustomerInfoDTO{
			BillTo:       q.BillTo,
			StateName:    q.StateName,
			ContactNo:    q.ContactNo,
			GSTIN:        q.CustomerGSTIN,
			EstimateNo:   q.EstimateNo,
			EstimateDate: estimateDate,
		},
		CompanyInfo: CompanyInfoDTO{
			Name:        q.CompanyName,
			Description: q.CompanyDescription,
			Phone:       q.CompanyPhone,
			GSTIN:       q.CompanyGSTIN,
			Address:     q.CompanyAddress,
			Branch:      q.CompanyBranch,
		},
		Items: items,
		Totals: TotalsDTO{
			TotalAmount: q.TotalAmount,
			CGST:        q.CGST,
			SGST:        q.SGST,
			GrandTotal:  q.GrandTotal,
		},
		CreatedAt: q.CreatedAt.Format(time.RFC3339),
		UpdatedAt: q.UpdatedAt.Format(time.RFC3339),
	}
}
