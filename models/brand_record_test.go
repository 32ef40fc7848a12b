package models

import (
	"errors"
	"testing"
)

func TestMarginPercent(t *testing.T) {
	tests := []struct {
		name    string
		profit  int64
		revenue int64
		want    float64
	}{
		{"교촌치킨", 89, 5176, 1.72},
		{"BHC", 1418, 5075, 27.94},
		{"BBQ", 641, 4188, 15.31},
		{"굽네치킨", 175, 2344, 7.47},
		{"푸라닭", 173, 1903, 9.09},
		{"loss", -50, 1000, -5},
		{"no profit", 0, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarginPercent(tt.profit, tt.revenue)
			if err != nil {
				t.Fatalf("MarginPercent() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MarginPercent(%d, %d) = %v, want %v", tt.profit, tt.revenue, got, tt.want)
			}
		})
	}
}

func TestMarginPercentZeroRevenue(t *testing.T) {
	_, err := MarginPercent(10, 0)
	if !errors.Is(err, ErrZeroRevenue) {
		t.Fatalf("MarginPercent() error = %v, want ErrZeroRevenue", err)
	}
}

func TestNewBrandRecord(t *testing.T) {
	rec, err := NewBrandRecord(2, "BHC", 5075, 1418, "뿌링클")
	if err != nil {
		t.Fatalf("NewBrandRecord() error = %v", err)
	}
	if rec.Rank != 2 || rec.Brand != "BHC" || rec.FlagshipMenu != "뿌링클" {
		t.Errorf("unexpected record %+v", rec)
	}
	if rec.MarginPercent != 27.94 {
		t.Errorf("MarginPercent = %v, want 27.94", rec.MarginPercent)
	}

	_, err = NewBrandRecord(6, "빈집", 0, 0, "")
	if !errors.Is(err, ErrZeroRevenue) {
		t.Errorf("NewBrandRecord() with zero revenue error = %v, want ErrZeroRevenue", err)
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(1.23456, 2); got != 1.23 {
		t.Errorf("RoundTo(1.23456, 2) = %v", got)
	}
	if got := RoundTo(2.5, 0); got != 3 {
		t.Errorf("RoundTo(2.5, 0) = %v", got)
	}
}
