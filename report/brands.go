package report

import (
	"fmt"

	"github.com/chickenboard/models"
)

// Title and Description head the board page
const (
	Title       = "🍗 대한민국 치킨 브랜드 매출 및 이익 분석"
	Description = "국내 주요 치킨 프랜차이즈의 2022년 기준 실적을 비교 분석합니다. (데이터: 공시자료 기반)"
)

type brandSeed struct {
	brand    string
	revenue  int64
	profit   int64
	flagship string
}

// 2022 disclosure figures, 억 원. Rank follows slice order.
var brandSeeds = []brandSeed{
	{"교촌치킨", 5176, 89, "허니콤보"},
	{"BHC", 5075, 1418, "뿌링클"},
	{"BBQ", 4188, 641, "황금올리브"},
	{"굽네치킨", 2344, 175, "고추바사삭"},
	{"푸라닭", 1903, 173, "블랙알리오"},
}

// Brands builds the ordered dataset with margins derived
func Brands() ([]models.BrandRecord, error) {
	records := make([]models.BrandRecord, 0, len(brandSeeds))
	for i, s := range brandSeeds {
		rec, err := models.NewBrandRecord(i+1, s.brand, s.revenue, s.profit, s.flagship)
		if err != nil {
			return nil, fmt.Errorf("build brand dataset: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// MustBrands is like Brands but panics on an invalid literal
func MustBrands() []models.BrandRecord {
	records, err := Brands()
	if err != nil {
		panic(err)
	}
	return records
}

// Champion returns the record with the highest margin. Ties keep the first
// occurrence. ok is false for an empty set.
func Champion(records []models.BrandRecord) (champ models.BrandRecord, ok bool) {
	for i, r := range records {
		if i == 0 || r.MarginPercent > champ.MarginPercent {
			champ = r
		}
	}
	return champ, len(records) > 0
}

// MaxRevenue returns the largest revenue in the set, zero when empty
func MaxRevenue(records []models.BrandRecord) int64 {
	var top int64
	for _, r := range records {
		if r.Revenue > top {
			top = r.Revenue
		}
	}
	return top
}

// MaxProfit returns the largest operating profit in the set, zero when empty
func MaxProfit(records []models.BrandRecord) int64 {
	var top int64
	for _, r := range records {
		if r.OperatingProfit > top {
			top = r.OperatingProfit
		}
	}
	return top
}
