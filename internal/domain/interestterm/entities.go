package interestterm

import "errors"

var (
	ErrNotFound    = errors.New("interest term not found")
	ErrInvalidTerm = errors.New("loan length must be between 1 and 6 months")
	ErrInvalidRate = errors.New("interest rate must be between 0 and 100 percent")
)

const (
	MinLoanLengthMonths = 1
	MaxLoanLengthMonths = 6
)

// InterestTerm is an immutable rate/length pair referenced by loan requests.
type InterestTerm struct {
	ID                uint64  `gorm:"primaryKey;column:id" json:"-"`
	TermID            string  `gorm:"column:term_id;type:char(32);not null;uniqueIndex:ux_interest_terms_term_id" json:"term_id"`
	LoanLengthMonths  int     `gorm:"column:loan_length_months;not null" json:"loan_length_months"`
	AnnualRatePercent float64 `gorm:"column:annual_rate_percent;type:decimal(6,3);not null" json:"annual_rate_percent"`
}

func (InterestTerm) TableName() string { return "interest_terms" }

// Validate enforces the bounds new terms must satisfy. Existing rows are
// never edited.
func (t *InterestTerm) Validate() error {
	if t.LoanLengthMonths < MinLoanLengthMonths || t.LoanLengthMonths > MaxLoanLengthMonths {
		return ErrInvalidTerm
	}
	if t.AnnualRatePercent < 0 || t.AnnualRatePercent > 100 {
		return ErrInvalidRate
	}
	return nil
}
