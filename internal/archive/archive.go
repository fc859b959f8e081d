// Package archive persists executed orders and settled inquiries to a
// relational database. It is an optional sink: the desk wires it only
// when a DSN is configured, and the text reports stay authoritative.
package archive

import (
	"gorm.io/gorm"

	"main/internal/model"
)

// ExecutionRecord is the persisted form of an executed order.
type ExecutionRecord struct {
	ID         uint   `gorm:"primaryKey"`
	OrderID    string `gorm:"uniqueIndex;size:16"`
	Cusip      string `gorm:"index;size:9"`
	Side       string `gorm:"size:8"`
	OrderType  string `gorm:"size:8"`
	Price      string `gorm:"size:24"`
	VisibleQty int64
	HiddenQty  int64
}

// InquiryRecord is the persisted form of a settled inquiry.
type InquiryRecord struct {
	ID        uint   `gorm:"primaryKey"`
	InquiryID string `gorm:"uniqueIndex;size:16"`
	Cusip     string `gorm:"index;size:9"`
	Side      string `gorm:"size:8"`
	Quantity  int64
	Price     string `gorm:"size:24"`
	State     string `gorm:"size:20"`
}

// Archive writes pipeline output rows into the database.
type Archive struct {
	db *gorm.DB
}

// New migrates the archive tables and returns the archive.
func New(db *gorm.DB) (*Archive, error) {
	if err := db.AutoMigrate(&ExecutionRecord{}, &InquiryRecord{}); err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

// SaveExecution persists one executed order; it satisfies the
// execution stage's listener shape.
func (a *Archive) SaveExecution(order model.ExecutionOrder) error {
	rec := ExecutionRecord{
		OrderID:    order.OrderID,
		Cusip:      order.Product.ID,
		Side:       order.Side.String(),
		OrderType:  order.Type.String(),
		Price:      order.Price.String(),
		VisibleQty: int64(order.VisibleQty),
		HiddenQty:  int64(order.HiddenQty),
	}
	return a.db.Create(&rec).Error
}

// SaveInquiry persists one settled inquiry; it satisfies the inquiry
// stage's listener shape.
func (a *Archive) SaveInquiry(inq model.Inquiry) error {
	rec := InquiryRecord{
		InquiryID: inq.InquiryID,
		Cusip:     inq.Product.ID,
		Side:      inq.Side.String(),
		Quantity:  int64(inq.Quantity),
		Price:     inq.Price.String(),
		State:     inq.State.String(),
	}
	return a.db.Create(&rec).Error
}

// Executions returns the number of archived executions.
func (a *Archive) Executions() (int64, error) {
	var count int64
	err := a.db.Model(&ExecutionRecord{}).Count(&count).Error
	return count, err
}

// Inquiries returns the number of archived inquiries.
func (a *Archive) Inquiries() (int64, error) {
	var count int64
	err := a.db.Model(&InquiryRecord{}).Count(&count).Error
	return count, err
}
