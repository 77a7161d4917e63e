package currency

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("currency not found")

// Currency is a supported cryptocurrency. BTC is the only seeded row at
// launch; the table exists so wallets and loan requests stay
// per-currency-addressable.
type Currency struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	Symbol    string    `gorm:"column:symbol;type:char(5);not null;uniqueIndex:ux_currencies_symbol" json:"symbol"`
	Name      string    `gorm:"column:name;size:50;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Currency) TableName() string { return "currencies" }
