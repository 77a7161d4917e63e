package deal

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("deal not found")
	ErrAlreadyFunded = errors.New("loan request already has a deal")
)

// Deal records a funded loan: which lender funded which request. Created
// only through deal formation; isComplete flips once when the collateral is
// finalized.
type Deal struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	DealID        string `gorm:"column:deal_id;type:char(32);not null;uniqueIndex:ux_deals_deal_id_active" json:"deal_id"`
	LenderID      uint64 `gorm:"column:lender_id;not null;index:idx_deals_lender" json:"-"`
	LoanRequestID uint64 `gorm:"column:loan_request_id;not null;uniqueIndex:ux_deals_loan_request" json:"-"`
	IsComplete    bool   `gorm:"column:is_complete;default:false" json:"is_complete"`
	// ExpectedCompletionDate = creation date + loan term in months.
	ExpectedCompletionDate time.Time      `gorm:"column:expected_completion_date;not null" json:"expected_completion_date"`
	CreatedAt              time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt              gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
	DeletedBy              *string        `gorm:"column:deleted_by;type:char(32)" json:"-"`
}

func (Deal) TableName() string { return "deals" }
