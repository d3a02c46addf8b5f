package market

import (
	"time"

	"github.com/undergrid/empire/pkg/formulas"
)

// Item is a tradeable commodity. Prices and trends are read-only inputs to
// valuation; the engine never debits or credits players from this module.
type Item struct {
	ID           string         `json:"id"`
	Symbol       string         `json:"symbol"`
	Name         string         `json:"name"`
	CurrentPrice float64        `json:"current_price"`
	Trend        formulas.Trend `json:"trend"`
	Demand       float64        `json:"demand"` // 0-100
	Supply       float64        `json:"supply"` // 0-100
	UpdatedDate  time.Time      `json:"updated_date"`
	CreatedDate  time.Time      `json:"created_date"`
}

// ItemDetail is an item plus its recent price history and momentum readout
type ItemDetail struct {
	Item    Item         `json:"item"`
	History []PricePoint `json:"history"`
	RSI     *float64     `json:"rsi,omitempty"`
}
