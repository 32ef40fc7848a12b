package report

import (
	"fmt"

	"github.com/chickenboard/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ColumnKind selects how a table cell is presented
type ColumnKind string

const (
	KindOrdinal  ColumnKind = "ordinal"
	KindText     ColumnKind = "text"
	KindProgress ColumnKind = "progress"
	KindBarChart ColumnKind = "barchart"
	KindPercent  ColumnKind = "percent"
)

// Column describes one table header with its scale
type Column struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Help  string     `json:"help,omitempty"`
	Kind  ColumnKind `json:"kind"`
	Min   int64      `json:"min"`
	Max   int64      `json:"max"`
}

// Cell is a formatted value. Fill is the bar length in percent of the
// column scale and is only set for progress and bar chart columns.
type Cell struct {
	Kind ColumnKind `json:"kind"`
	Text string     `json:"text"`
	Fill float64    `json:"fill"`
}

// Row holds the cells of one brand in column order
type Row struct {
	Rank  int    `json:"rank"`
	Cells []Cell `json:"cells"`
}

// Table is the display model of the earnings board
type Table struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

var printer = message.NewPrinter(language.Korean)

// Columns returns the fixed column order with scales taken from records
func Columns(records []models.BrandRecord) []Column {
	return []Column{
		{Key: "rank", Label: "순위", Kind: KindOrdinal},
		{Key: "brand", Label: "브랜드", Kind: KindText},
		{Key: "revenue", Label: "매출액(억 원)", Help: "브랜드별 매출액입니다.", Kind: KindProgress, Max: MaxRevenue(records)},
		{Key: "profit", Label: "영업이익(억 원) 📊", Kind: KindBarChart, Max: MaxProfit(records)},
		{Key: "flagship", Label: "대표 메뉴", Kind: KindText},
		{Key: "margin", Label: "영업이익률(%)", Kind: KindPercent},
	}
}

// NewTable formats every record against the column scales
func NewTable(records []models.BrandRecord) Table {
	columns := Columns(records)
	revenueScale, profitScale := columns[2], columns[3]

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row{
			Rank: r.Rank,
			Cells: []Cell{
				{Kind: KindOrdinal, Text: FormatRank(r.Rank)},
				{Kind: KindText, Text: r.Brand},
				{Kind: KindProgress, Text: FormatEok(r.Revenue), Fill: Fill(r.Revenue, revenueScale.Min, revenueScale.Max)},
				{Kind: KindBarChart, Text: FormatEok(r.OperatingProfit), Fill: Fill(r.OperatingProfit, profitScale.Min, profitScale.Max)},
				{Kind: KindText, Text: r.FlagshipMenu},
				{Kind: KindPercent, Text: FormatPercent(r.MarginPercent)},
			},
		})
	}

	return Table{Columns: columns, Rows: rows}
}

// FormatRank renders a rank as a Korean ordinal, e.g. 1위
func FormatRank(rank int) string {
	return fmt.Sprintf("%d위", rank)
}

// FormatEok renders an amount in 억 원 with thousands grouping
func FormatEok(amount int64) string {
	return printer.Sprintf("%d억 원", amount)
}

// FormatPercent renders a margin with two fixed decimals
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f %%", v)
}

// Fill maps v onto [lo, hi] as a percentage clamped to 0..100
func Fill(v, lo, hi int64) float64 {
	if hi <= lo {
		return 0
	}
	pct := float64(v-lo) / float64(hi-lo) * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return models.RoundTo(pct, 2)
}
