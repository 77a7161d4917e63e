package collateral

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusLocked    Status = "locked"
	StatusReleased  Status = "released"
	StatusForfeited Status = "forfeited"
)

var (
	ErrNotFound         = errors.New("collateral not found")
	ErrAlreadyFinalized = errors.New("collateral has already been released or forfeited")
	ErrAlreadyPosted    = errors.New("deal already has collateral posted")
	ErrFutureCreated    = errors.New("collateral creation date cannot be in the future")
)

// Collateral is held against a deal for the life of the loan. Deal formation
// creates it locked; release and forfeit are terminal and fire exactly once.
type Collateral struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	CollateralID string          `gorm:"column:collateral_id;type:char(32);not null;uniqueIndex:ux_collaterals_collateral_id" json:"collateral_id"`
	DealID       uint64          `gorm:"column:deal_id;not null;uniqueIndex:ux_collaterals_deal" json:"-"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(30,8);not null" json:"amount"`
	Status       Status          `gorm:"column:status;type:enum('pending','locked','released','forfeited');default:'pending'" json:"status"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Collateral) TableName() string { return "collaterals" }

// Validate checks record-level consistency before persisting. The creation
// timestamp must not sit ahead of the caller's clock.
func (c *Collateral) Validate(now time.Time) error {
	if c.CreatedAt.After(now) {
		return ErrFutureCreated
	}
	return nil
}

// Finalized reports whether the collateral reached a terminal status.
func (c *Collateral) Finalized() bool {
	return c.Status == StatusReleased || c.Status == StatusForfeited
}

// MarkReleased finalizes the collateral as returned to the borrower.
func (c *Collateral) MarkReleased() error {
	if c.Finalized() {
		return ErrAlreadyFinalized
	}
	c.Status = StatusReleased
	return nil
}

// MarkForfeited finalizes the collateral as seized.
func (c *Collateral) MarkForfeited() error {
	if c.Finalized() {
		return ErrAlreadyFinalized
	}
	c.Status = StatusForfeited
	return nil
}
