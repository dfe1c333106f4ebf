package usecase

import (
	"log"
	"regexp"
	"strings"

	"github.com/nicexwisly/Linebot-Jonggajang/internal/domain"
)

// codeSuffixRegex matches the trailing fractional suffix spreadsheet exports
// append to item codes (e.g. "1023.0").
var codeSuffixRegex = regexp.MustCompile(`\.\d+$`)

// approxMarker prefixes stock figures that are estimates. It is display-only
// and stripped before any numeric use.
const approxMarker = "~"

// Matcher scans a catalog snapshot for records matching a normalized keyword.
// It never mutates the snapshot.
type Matcher struct {
	enableDebugLogging bool
}

// NewMatcher creates a new matcher
func NewMatcher(enableDebugLogging bool) *Matcher {
	return &Matcher{enableDebugLogging: enableDebugLogging}
}

// Match dispatches on the query kind and returns the matching records.
// ItemDetail yields at most one result and domain.ErrItemNotFound when the
// code is unknown; the list kinds return an empty slice for no matches.
func (m *Matcher) Match(records []domain.ProductRecord, kind domain.QueryKind, key string) ([]domain.MatchResult, error) {
	switch kind {
	case domain.QueryItemDetail:
		return m.matchItemCode(records, key)
	case domain.QueryPLUExact:
		return m.matchPLU(records, key), nil
	default:
		return m.matchFuzzy(records, key), nil
	}
}

// matchItemCode finds the first record whose item code equals key exactly.
// Duplicate codes are a data-quality problem in the export; the first record
// wins deterministically and the duplicates are logged.
func (m *Matcher) matchItemCode(records []domain.ProductRecord, key string) ([]domain.MatchResult, error) {
	var found *domain.ProductRecord
	dupes := 0
	for i := range records {
		if records[i].ItemCode.String() != key {
			continue
		}
		if found == nil {
			found = &records[i]
			continue
		}
		dupes++
	}
	if found == nil {
		return nil, domain.ErrItemNotFound
	}
	if dupes > 0 {
		log.Printf("[MATCH] item code %q appears %d times in catalog, using first occurrence", key, dupes+1)
	}
	stock, _ := ParseStock(found.Stock.String())
	return []domain.MatchResult{{Record: found, NumericStock: stock}}, nil
}

// matchPLU collects every record whose trimmed PLU equals key.
func (m *Matcher) matchPLU(records []domain.ProductRecord, key string) []domain.MatchResult {
	var results []domain.MatchResult
	for i := range records {
		if strings.TrimSpace(records[i].PLU.String()) != key {
			continue
		}
		stock, _ := ParseStock(records[i].Stock.String())
		results = append(results, domain.MatchResult{Record: &records[i], NumericStock: stock})
	}
	if m.enableDebugLogging {
		log.Printf("[MATCH] plu %q matched %d records", key, len(results))
	}
	return results
}

// matchFuzzy includes a record when the key is a substring of its normalized
// name, equals its suffix-stripped item code, or appears among its normalized
// barcodes. Records whose stock cannot be parsed are skipped entirely; one bad
// record must never hide the rest.
func (m *Matcher) matchFuzzy(records []domain.ProductRecord, key string) []domain.MatchResult {
	var results []domain.MatchResult
	for i := range records {
		rec := &records[i]

		stock, ok := ParseStock(rec.Stock.String())
		if !ok {
			continue
		}

		if !fuzzyHit(rec, key) {
			continue
		}
		results = append(results, domain.MatchResult{Record: rec, NumericStock: stock})
	}
	if m.enableDebugLogging {
		log.Printf("[MATCH] keyword %q matched %d records", key, len(results))
	}
	return results
}

func fuzzyHit(rec *domain.ProductRecord, key string) bool {
	name := normalizeText(rec.Name.String())
	if strings.Contains(name, key) {
		return true
	}
	if StripCodeSuffix(strings.ToLower(rec.ItemCode.String())) == key {
		return true
	}
	for _, barcode := range rec.Barcodes {
		if normalizeText(barcode) == key {
			return true
		}
	}
	return false
}

// normalizeText lowercases a value and removes all whitespace, mirroring what
// the normalizer does to the keyword.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

// StripCodeSuffix removes a trailing ".<digits>" fraction from an item code.
func StripCodeSuffix(code string) string {
	return codeSuffixRegex.ReplaceAllString(strings.TrimSpace(code), "")
}

// ParseStock parses a stock figure, stripping the approximate marker first.
// The second return is false when the value is not numeric.
func ParseStock(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), approxMarker))
	n := domain.ParseFlexNumber(s)
	return n.Float(), n.Valid
}

// DisplayStock returns the stock figure as shown to users: the approximate
// marker stripped, the rest untouched.
func DisplayStock(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), approxMarker))
}
