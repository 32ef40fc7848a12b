package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroRevenue is returned when a margin is requested for a brand without revenue
var ErrZeroRevenue = errors.New("revenue must be greater than zero")

// BrandRecord represents one franchise row of the earnings board.
// Revenue and OperatingProfit are in 억 원 (hundred-million won).
type BrandRecord struct {
	Rank            int     `json:"rank"`
	Brand           string  `json:"brand"`
	Revenue         int64   `json:"revenue"`
	OperatingProfit int64   `json:"operating_profit"`
	FlagshipMenu    string  `json:"flagship_menu"`
	MarginPercent   float64 `json:"margin_percent"`
}

// NewBrandRecord builds a record and derives its margin
func NewBrandRecord(rank int, brand string, revenue, profit int64, flagship string) (BrandRecord, error) {
	margin, err := MarginPercent(profit, revenue)
	if err != nil {
		return BrandRecord{}, fmt.Errorf("brand %q: %w", brand, err)
	}

	return BrandRecord{
		Rank:            rank,
		Brand:           brand,
		Revenue:         revenue,
		OperatingProfit: profit,
		FlagshipMenu:    flagship,
		MarginPercent:   margin,
	}, nil
}

// MarginPercent returns profit/revenue as a percentage rounded to two decimals
func MarginPercent(profit, revenue int64) (float64, error) {
	if revenue == 0 {
		return 0, ErrZeroRevenue
	}
	return RoundTo(float64(profit)/float64(revenue)*100, 2), nil
}

// RoundTo rounds v to the given number of decimal places, half away from zero
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
