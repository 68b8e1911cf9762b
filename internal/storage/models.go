package storage

import "time"

const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

const (
	CloseTakeProfit = "TAKE_PROFIT"
	CloseStopLoss   = "STOP_LOSS"
	CloseManual     = "MANUAL"
)

// Signal is one detected dip opportunity, crypto and equity variants share the
// table with Market as the discriminant.
type Signal struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"detected_at"`

	Market        string  `gorm:"index;not null" json:"market"` // CRYPTO, USA, MERVAL
	Symbol        string  `gorm:"index;not null" json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	PercentChange float64 `json:"percent_change"`
	RSI           float64 `gorm:"column:rsi" json:"rsi"`

	TechnicalSignal string `json:"technical_signal"`
	AIScore         int    `gorm:"column:ai_score" json:"ai_score"`
	AIDecision      string `gorm:"column:ai_decision" json:"ai_decision"`
	AIReason        string `gorm:"column:ai_reason;type:text" json:"ai_reason"`
}

// Position is one simulated trade. Records are created OPEN, mutated exactly
// once by a close, and never deleted.
type Position struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Symbol         string  `gorm:"index;not null" json:"symbol"`
	EntryPrice     float64 `gorm:"not null" json:"entry_price"`
	Quantity       float64 `gorm:"not null" json:"quantity"`
	InvestedAmount float64 `gorm:"not null" json:"invested_amount"`
	Status         string  `gorm:"not null;default:'OPEN'" json:"status"`
	BoughtAt       time.Time `json:"bought_at"`

	ExitPrice   float64    `json:"exit_price"`
	CloseReason string     `json:"close_reason"` // TAKE_PROFIT, STOP_LOSS, MANUAL
	ClosedAt    *time.Time `json:"closed_at"`
	RealizedPnL float64    `gorm:"column:realized_pnl" json:"realized_pnl"`

	// Snapshot holds the indicators present at entry (RSI, change, AI score,
	// market) as JSON for later offline analysis.
	Snapshot string `gorm:"type:text" json:"snapshot"`
}
