package export

import (
	"fmt"
	"io"

	"github.com/chickenboard/report"
	"github.com/xuri/excelize/v2"
)

// SheetName is the only sheet of the exported workbook
const SheetName = "치킨 브랜드"

// ContentType of the xlsx download
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FileName suggested to the browser
const FileName = "chicken-brands-2022.xlsx"

var numFmts = map[string]string{
	"rank":    `0"위"`,
	"revenue": `#,##0"억 원"`,
	"profit":  `#,##0"억 원"`,
	"margin":  `0.00" %"`,
}

// Workbook builds the board table as a spreadsheet: header on row 1,
// one brand per row, champion note two rows below the table.
func Workbook(board report.Board) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := fill(f, board); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write streams the workbook for board to w
func Write(w io.Writer, board report.Board) error {
	f, err := Workbook(board)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func fill(f *excelize.File, board report.Board) error {
	columns := board.Table.Columns

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FFF3E0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, col.Label); err != nil {
			return fmt.Errorf("header %s: %w", col.Key, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for r, rec := range board.Records {
		row := r + 2
		values := []interface{}{rec.Rank, rec.Brand, rec.Revenue, rec.OperatingProfit, rec.FlagshipMenu, rec.MarginPercent}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
		}
	}

	lastRow := len(board.Records) + 1
	for i, col := range columns {
		format, ok := numFmts[col.Key]
		if !ok || lastRow < 2 {
			continue
		}
		style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
		if err != nil {
			return fmt.Errorf("number format %s: %w", col.Key, err)
		}
		top, _ := excelize.CoordinatesToCellName(i+1, 2)
		bottom, _ := excelize.CoordinatesToCellName(i+1, lastRow)
		if err := f.SetCellStyle(SheetName, top, bottom, style); err != nil {
			return fmt.Errorf("apply number format %s: %w", col.Key, err)
		}

		if col.Kind == report.KindProgress || col.Kind == report.KindBarChart {
			bar := []excelize.ConditionalFormatOptions{{
				Type:     "data_bar",
				Criteria: "=",
				MinType:  "num",
				MinValue: fmt.Sprint(col.Min),
				MaxType:  "num",
				MaxValue: fmt.Sprint(col.Max),
				BarColor: "#F4A259",
			}}
			if err := f.SetConditionalFormat(SheetName, top+":"+bottom, bar); err != nil {
				return fmt.Errorf("data bar %s: %w", col.Key, err)
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "F", 16); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if board.Champion != nil {
		note := fmt.Sprintf("영업이익률 챔피언: %s (%s)", board.Champion.Brand, board.ChampionMargin())
		cell, _ := excelize.CoordinatesToCellName(1, lastRow+2)
		if err := f.SetCellValue(SheetName, cell, note); err != nil {
			return fmt.Errorf("champion note: %w", err)
		}
	}
	return nil
}
