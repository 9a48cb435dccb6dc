package models

import "time"

// Quotation is the document header. The company_* columns are a denormalized
// snapshot of the issuer identity taken at creation time, so historical
// quotations survive later changes to the configured company info.
type Quotation struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement"`
	QuotationNo   string    `gorm:"column:quotation_no;size:50;not null;uniqueIndex"`
	QuotationDate time.Time `gorm:"column:quotation_date;not null"`

	BillTo        string     `gorm:"column:bill_to;size:200;not null"`
	StateName     string     `gorm:"column:state_name;size:100"`
	ContactNo     string     `gorm:"column:contact_no;size:20"`
	CustomerGSTIN string     `gorm:"column:customer_gstin;size:20"`
	EstimateNo    string     `gorm:"column:estimate_no;size:50"`
	EstimateDate  *time.Time `gorm:"column:estimate_date"`

	CompanyName        string `gorm:"column:company_name;size:200"`
	CompanyDescription string `gorm:"column:company_description;type:text"`
	CompanyPhone       string `gorm:"column:company_phone;size:20"`
	CompanyGSTIN       string `gorm:"column:company_gstin;size:20"`
	CompanyAddress     string `gorm:"column:company_address;type:text"`
	CompanyBranch      string `gorm:"column:company_branch;size:100"`

	TotalAmount float64 `gorm:"column:total_amount;not null;default:0"`
	CGST        float64 `gorm:"column:cgst;not null;default:0"`
	SGST        float64 `gorm:"column:sgst;not null;default:0"`
	GrandTotal  float64 `gorm:"column:grand_total;not null;default:0"`

	Items []QuotationItem `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Quotation) TableName() string {
	return "quotations"
}
