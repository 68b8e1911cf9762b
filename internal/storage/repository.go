package storage

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Signals

func (r *Repository) SaveSignal(signal *Signal) error {
	return r.db.Create(signal).Error
}

func (r *Repository) RecentSignals(limit int) ([]Signal, error) {
	var signals []Signal
	err := r.db.Order("created_at DESC").Limit(limit).Find(&signals).Error
	return signals, err
}

// RecentSignalSymbols lists the distinct symbols flagged since the cutoff.
func (r *Repository) RecentSignalSymbols(since time.Time) ([]string, error) {
	var symbols []string
	err := r.db.Model(&Signal{}).
		Where("created_at >= ?", since).
		Distinct("symbol").
		Order("symbol").
		Pluck("symbol", &symbols).Error
	return symbols, err
}

// Positions

func (r *Repository) SavePosition(position *Position) error {
	return r.db.Create(position).Error
}

func (r *Repository) UpdatePosition(position *Position) error {
	return r.db.Save(position).Error
}

func (r *Repository) PositionByID(id uint) (*Position, error) {
	var position Position
	if err := r.db.First(&position, id).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *Repository) OpenPositions() ([]Position, error) {
	var positions []Position
	err := r.db.Where("status = ?", StatusOpen).Order("bought_at").Find(&positions).Error
	return positions, err
}

// OpenPositionBySymbol returns nil without error when no open position exists.
func (r *Repository) OpenPositionBySymbol(symbol string) (*Position, error) {
	var position Position
	err := r.db.Where("status = ? AND symbol = ?", StatusOpen, strings.ToUpper(symbol)).
		Order("bought_at DESC").First(&position).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *Repository) CountOpenPositions() (int, error) {
	var count int64
	err := r.db.Model(&Position{}).Where("status = ?", StatusOpen).Count(&count).Error
	return int(count), err
}

func (r *Repository) ClosedPositions(limit int) ([]Position, error) {
	var positions []Position
	err := r.db.Where("status = ?", StatusClosed).
		Order("closed_at DESC").Limit(limit).Find(&positions).Error
	return positions, err
}

func (r *Repository) TotalRealizedPnL() (float64, error) {
	var total float64
	err := r.db.Model(&Position{}).
		Where("status = ?", StatusClosed).
		Select("COALESCE(SUM(realized_pnl), 0)").Scan(&total).Error
	return total, err
}

func (r *Repository) TodayRealizedPnL() (float64, error) {
	today := time.Now().Truncate(24 * time.Hour)
	var total float64
	err := r.db.Model(&Position{}).
		Where("status = ? AND closed_at >= ?", StatusClosed, today).
		Select("COALESCE(SUM(realized_pnl), 0)").Scan(&total).Error
	return total, err
}
