package usecase

import (
	"errors"
	"testing"

	"github.com/nicexwisly/Linebot-Jonggajang/internal/domain"
)

func testCatalog() []domain.ProductRecord {
	return []domain.ProductRecord{
		{
			Name:     "Widget A",
			ItemCode: "100",
			PLU:      " 55 ",
			Barcodes: domain.StringList{"885001"},
			Stock:    "5",
		},
		{
			Name:     "Widget B",
			ItemCode: "200.0",
			Stock:    "~12",
		},
		{
			Name:     "Broken Widget",
			ItemCode: "300",
			Stock:    "unknown",
		},
		{
			Name:     "Gadget",
			ItemCode: "400",
			PLU:      "55",
			Stock:    "7",
		},
	}
}

func TestMatch_ItemDetail(t *testing.T) {
	m := NewMatcher(false)

	t.Run("exact item code match", func(t *testing.T) {
		results, err := m.Match(testCatalog(), domain.QueryItemDetail, "100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("len(results) = %d, want 1", len(results))
		}
		if results[0].Record.Name.String() != "Widget A" {
			t.Errorf("Name = %q, want Widget A", results[0].Record.Name)
		}
	})

	t.Run("no suffix stripping on detail path", func(t *testing.T) {
		_, err := m.Match(testCatalog(), domain.QueryItemDetail, "200")
		if !errors.Is(err, domain.ErrItemNotFound) {
			t.Errorf("error = %v, want ErrItemNotFound (code is stored as 200.0)", err)
		}
	})

	t.Run("first of duplicate codes wins", func(t *testing.T) {
		catalog := append(testCatalog(), domain.ProductRecord{Name: "Widget A clone", ItemCode: "100", Stock: "99"})
		results, err := m.Match(catalog, domain.QueryItemDetail, "100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if results[0].Record.Name.String() != "Widget A" {
			t.Errorf("Name = %q, want first occurrence Widget A", results[0].Record.Name)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := m.Match(testCatalog(), domain.QueryItemDetail, "999")
		if !errors.Is(err, domain.ErrItemNotFound) {
			t.Errorf("error = %v, want ErrItemNotFound", err)
		}
	})
}

func TestMatch_PLUExact(t *testing.T) {
	m := NewMatcher(false)

	t.Run("collects every record with the PLU", func(t *testing.T) {
		results, err := m.Match(testCatalog(), domain.QueryPLUExact, "55")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("len(results) = %d, want 2 (PLU is trimmed before comparison)", len(results))
		}
	})

	t.Run("never matches by name or barcode", func(t *testing.T) {
		results, err := m.Match(testCatalog(), domain.QueryPLUExact, "885001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("len(results) = %d, want 0", len(results))
		}
	})
}

func TestMatch_Fuzzy(t *testing.T) {
	m := NewMatcher(false)

	t.Run("substring of normalized name", func(t *testing.T) {
		results, err := m.Match(testCatalog(), domain.QueryFuzzy, "widget")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Broken Widget has unparseable stock and is skipped.
		if len(results) != 2 {
			t.Fatalf("len(results) = %d, want 2", len(results))
		}
	})

	t.Run("reflexive on full normalized name", func(t *testing.T) {
		results, err := m.Match(testCatalog(), domain.QueryFuzzy, "widgeta")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].Record.ItemCode.String() != "100" {
			t.Errorf("searching the exact normalized name must include the record, got %d results", len(results))
		}
	})

	t.Run("suffix-stripped item code equality", func(t *testing.T) {
		results, err := m.Match(testCatalog(), domain.QueryFuzzy, "200")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].Record.Name.String() != "Widget B" {
			t.Fatalf("code 200 should match record stored as 200.0, got %d results", len(results))
		}
	})

	t.Run("barcode membership", func(t *testing.T) {
		results, err := m.Match(testCatalog(), domain.QueryFuzzy, "885001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].Record.ItemCode.String() != "100" {
			t.Fatalf("barcode lookup failed, got %d results", len(results))
		}
	})

	t.Run("approximate marker stripped for ranking value", func(t *testing.T) {
		results, err := m.Match(testCatalog(), domain.QueryFuzzy, "widgetb")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].NumericStock != 12 {
			t.Errorf("NumericStock = %v, want 12", results[0].NumericStock)
		}
	})

	t.Run("unparseable stock excluded silently", func(t *testing.T) {
		results, err := m.Match(testCatalog(), domain.QueryFuzzy, "broken")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("len(results) = %d, want 0", len(results))
		}
	})
}

func TestRankByStock(t *testing.T) {
	t.Run("descending by numeric stock", func(t *testing.T) {
		matches := []domain.MatchResult{
			{Record: &domain.ProductRecord{ItemCode: "100"}, NumericStock: 5},
			{Record: &domain.ProductRecord{ItemCode: "200"}, NumericStock: 12},
			{Record: &domain.ProductRecord{ItemCode: "300"}, NumericStock: 7},
		}
		RankByStock(matches)

		got := []string{
			matches[0].Record.ItemCode.String(),
			matches[1].Record.ItemCode.String(),
			matches[2].Record.ItemCode.String(),
		}
		want := []string{"200", "300", "100"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order = %v, want %v", got, want)
			}
		}
	})

	t.Run("ties keep scan order", func(t *testing.T) {
		matches := []domain.MatchResult{
			{Record: &domain.ProductRecord{ItemCode: "a"}, NumericStock: 3},
			{Record: &domain.ProductRecord{ItemCode: "b"}, NumericStock: 3},
			{Record: &domain.ProductRecord{ItemCode: "c"}, NumericStock: 3},
		}
		RankByStock(matches)
		if matches[0].Record.ItemCode != "a" || matches[1].Record.ItemCode != "b" || matches[2].Record.ItemCode != "c" {
			t.Errorf("stable sort must keep tie order")
		}
	})
}

func TestStripCodeSuffix(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1023.0", "1023"},
		{"1023.00", "1023"},
		{"1023", "1023"},
		{"10.2.3", "10.2"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		if got := StripCodeSuffix(tt.in); got != tt.want {
			t.Errorf("StripCodeSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseStock(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"5", 5, true},
		{"~12", 12, true},
		{" ~ 1,250 ", 1250, true},
		{"unknown", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseStock(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseStock(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
