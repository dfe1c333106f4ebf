package usecase

import (
	"sort"

	"github.com/nicexwisly/Linebot-Jonggajang/internal/domain"
)

// RankByStock orders matches by parsed numeric stock descending, in place.
// The sort is stable: ties keep their catalog scan order.
func RankByStock(matches []domain.MatchResult) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].NumericStock > matches[j].NumericStock
	})
}
