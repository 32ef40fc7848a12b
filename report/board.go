package report

import "github.com/chickenboard/models"

// Fixed page copy
const (
	TableHeading    = "📈 브랜드별 실적 비교표"
	InsightHeading  = "💡 재미로 보는 분석"
	CelebrateButton = "🎉 축하! 치킨 파티! 🎉"
	Caption         = "버튼을 눌러보세요!"
)

// Board is everything the page shows besides celebration effects
type Board struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Records     []models.BrandRecord `json:"records"`
	Table       Table                `json:"table"`
	Champion    *models.BrandRecord  `json:"champion,omitempty"`
}

// NewBoard derives the table and champion from records
func NewBoard(records []models.BrandRecord) Board {
	b := Board{
		Title:       Title,
		Description: Description,
		Records:     records,
		Table:       NewTable(records),
	}
	if champ, ok := Champion(records); ok {
		b.Champion = &champ
	}
	return b
}

// ChampionMargin formats the champion margin for the callout
func (b Board) ChampionMargin() string {
	if b.Champion == nil {
		return ""
	}
	return FormatMargin(b.Champion.MarginPercent)
}

// FormatMargin renders a margin the way the callout prints it, e.g. 27.94%
func FormatMargin(v float64) string {
	return printer.Sprintf("%.2f%%", v)
}
