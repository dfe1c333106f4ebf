package usecase

import (
	"strings"

	"github.com/nicexwisly/Linebot-Jonggajang/internal/domain"
)

// Query markers recognized at the start of a normalized keyword.
const (
	itemDetailMarker = "mm"
	pluMarker        = "plu"
)

// QueryNormalizer cleans a raw keyword and classifies it into a query kind.
type QueryNormalizer struct{}

// NewQueryNormalizer creates a new query normalizer
func NewQueryNormalizer() *QueryNormalizer {
	return &QueryNormalizer{}
}

// Normalize trims, lowercases and strips internal whitespace from the raw
// keyword, then classifies it by marker prefix. There are no error cases; an
// empty key is valid and simply matches broadly or narrowly per kind.
func (n *QueryNormalizer) Normalize(raw string) (domain.QueryKind, string) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.Join(strings.Fields(key), "")

	switch {
	case strings.HasPrefix(key, itemDetailMarker):
		return domain.QueryItemDetail, strings.TrimSpace(strings.TrimPrefix(key, itemDetailMarker))
	case strings.HasPrefix(key, pluMarker):
		return domain.QueryPLUExact, strings.TrimSpace(strings.TrimPrefix(key, pluMarker))
	default:
		return domain.QueryFuzzy, key
	}
}
