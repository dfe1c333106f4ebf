package usecase

import (
	"errors"
	"log"

	"github.com/nicexwisly/Linebot-Jonggajang/internal/domain"
	"github.com/nicexwisly/Linebot-Jonggajang/internal/metrics"
)

// SearchServiceConfig holds configuration for the search engine.
type SearchServiceConfig struct {
	HistoryDays        int
	CharBudget         int
	MaxCards           int
	EnableDebugLogging bool
}

// SearchService answers keyword queries against the current catalog snapshot.
// Its contract is total: for any keyword and any catalog state it returns a
// renderable result, never an error. Sentinel conditions become sentinel text.
type SearchService struct {
	catalog    domain.CatalogRepository
	normalizer *QueryNormalizer
	matcher    *Matcher
	assembler  *MovementAssembler
	formatter  *ReportFormatter
	collector  *metrics.Collector
}

// NewSearchService creates a search engine over the given catalog store.
// The collector may be nil.
func NewSearchService(catalog domain.CatalogRepository, collector *metrics.Collector, config SearchServiceConfig) *SearchService {
	return &SearchService{
		catalog:    catalog,
		normalizer: NewQueryNormalizer(),
		matcher:    NewMatcher(config.EnableDebugLogging),
		assembler:  NewMovementAssembler(config.HistoryDays),
		formatter:  NewReportFormatter(config.CharBudget, config.MaxCards),
		collector:  collector,
	}
}

// Search answers one raw keyword. Matching and ranking are pure, synchronous
// computations over the snapshot the query started with; a concurrent catalog
// replacement never affects an in-flight query.
func (s *SearchService) Search(keyword string) domain.EngineResult {
	kind, key := s.normalizer.Normalize(keyword)

	if !s.catalog.Populated() {
		s.collector.ObserveQuery(kind.String(), metrics.OutcomeEmptyCatalog)
		return domain.EngineResult{Kind: kind, Text: MsgNoCatalog}
	}

	snapshot := s.catalog.Snapshot()
	matches, err := s.matcher.Match(snapshot, kind, key)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			s.collector.ObserveQuery(kind.String(), metrics.OutcomeNotFound)
			return domain.EngineResult{Kind: kind, Text: MsgItemNotFound(key)}
		}
		// The matcher has no other failure modes; degrade to the no-match
		// sentinel rather than surfacing an error to the chat.
		log.Printf("[ENGINE] unexpected match error for %q: %v", key, err)
		s.collector.ObserveQuery(kind.String(), metrics.OutcomeNoMatches)
		return domain.EngineResult{Kind: kind, Text: MsgNoMatches(key)}
	}

	if kind == domain.QueryItemDetail {
		rec := matches[0].Record
		rows := s.assembler.Assemble(rec)
		s.collector.ObserveQuery(kind.String(), metrics.OutcomeOK)
		return s.formatter.FormatDetail(rec, rows)
	}

	if len(matches) == 0 {
		s.collector.ObserveQuery(kind.String(), metrics.OutcomeNoMatches)
		return domain.EngineResult{Kind: kind, Text: MsgNoMatches(key)}
	}

	RankByStock(matches)
	s.collector.ObserveQuery(kind.String(), metrics.OutcomeOK)
	return s.formatter.FormatList(kind, matches)
}

// LookupDetail answers a movement report for one item code directly,
// bypassing keyword classification.
func (s *SearchService) LookupDetail(itemCode string) domain.EngineResult {
	return s.Search(itemDetailMarker + itemCode)
}

// ReplaceCatalog swaps in a new snapshot wholesale. In-flight queries finish
// against the snapshot they started with.
func (s *SearchService) ReplaceCatalog(records []domain.ProductRecord) {
	s.catalog.Replace(records)
	s.collector.ObserveReload(len(records))
	log.Printf("[ENGINE] catalog replaced: %d products", len(records))
}
