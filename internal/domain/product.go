package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// QueryKind classifies a normalized keyword into one of the three search paths.
type QueryKind int

const (
	// QueryFuzzy matches the keyword against product names, item codes and barcodes.
	QueryFuzzy QueryKind = iota
	// QueryPLUExact matches the keyword against PLU codes only.
	QueryPLUExact
	// QueryItemDetail looks up a single item code and reports its daily movement.
	QueryItemDetail
)

// String returns a label suitable for logging and metrics.
func (k QueryKind) String() string {
	switch k {
	case QueryPLUExact:
		return "plu"
	case QueryItemDetail:
		return "detail"
	default:
		return "fuzzy"
	}
}

// FlexString is a string field that tolerates numeric JSON values.
// Spreadsheet exports deliver item codes as numbers (1023.0) as often as strings.
type FlexString string

// UnmarshalJSON accepts a JSON string, number or null.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	// Numeric token: keep the raw text so "1023.0" survives as written.
	*s = FlexString(data)
	return nil
}

// String returns the underlying value.
func (s FlexString) String() string { return string(s) }

// StringList is a barcode-style field that may arrive absent, as a single
// string, or as an array. All three shapes normalize to a slice.
type StringList []string

// UnmarshalJSON accepts null, a scalar, or an array of scalars.
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var items []FlexString
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make(StringList, 0, len(items))
		for _, item := range items {
			out = append(out, item.String())
		}
		*l = out
		return nil
	}
	var single FlexString
	if err := single.UnmarshalJSON(data); err != nil {
		return err
	}
	*l = StringList{single.String()}
	return nil
}

// FlexNumber is a numeric field that tolerates the shapes real exports
// produce: a number, a string with thousands separators, null, or a
// one-element array. Valid is false for null/absent/unparseable values.
type FlexNumber struct {
	Value float64
	Valid bool
}

// UnmarshalJSON coerces the supported shapes into a single number.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = FlexNumber{}
		return nil
	}
	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		if len(items) == 0 {
			*n = FlexNumber{}
			return nil
		}
		return n.UnmarshalJSON(items[0])
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*n = ParseFlexNumber(str)
		return nil
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			// Malformed numeric token degrades to invalid, not an ingest error.
			*n = FlexNumber{}
			return nil
		}
		*n = FlexNumber{Value: f, Valid: true}
		return nil
	}
}

// MarshalJSON renders the number, or null when invalid.
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Float returns the value, or zero when invalid (the zero-fill policy).
func (n FlexNumber) Float() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

// ParseFlexNumber parses a numeric string, tolerating thousands separators
// and surrounding whitespace.
func ParseFlexNumber(s string) FlexNumber {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return FlexNumber{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return FlexNumber{}
	}
	return FlexNumber{Value: f, Valid: true}
}

// ProductRecord is one catalog entry as delivered by the store's stock export.
// The daily series are parallel arrays indexed by the same position; siblings
// are assumed equal length but readers must treat out-of-range entries as zero.
type ProductRecord struct {
	Name       FlexString `json:"Item Name"`
	ItemCode   FlexString `json:"Item Number"`
	PLU        FlexString `json:"PLU"`
	Barcodes   StringList `json:"Barcode"`
	Price      FlexString `json:"Price"`
	Stock      FlexString `json:"SOH Qty"`
	OnOrder    FlexString `json:"On Order Qty"`
	Department FlexString `json:"Dept"`
	Class      FlexString `json:"Class"`

	Dates                []FlexString `json:"Date"`
	Receipts             []FlexNumber `json:"Receipts Qty"`
	DistributionReceipts []FlexNumber `json:"DC Receipts Qty"`
	InventoryAdjust      []FlexNumber `json:"Inv Adjust Qty"`
	EndOfPeriodStock     []FlexNumber `json:"EOY SOH Qty"`
	NetSales             []FlexNumber `json:"Net Sales Qty"`

	RealtimeSalesToday FlexNumber `json:"Sales Today"`
	RealtimeStockNow   FlexNumber `json:"Stock Now"`
	GoodsReceivedToday FlexNumber `json:"GR Today"`
}

// HasRealtime reports whether the record carries any of the real-time fields
// used to synthesize the "today" movement row.
func (r *ProductRecord) HasRealtime() bool {
	return r.RealtimeSalesToday.Valid || r.RealtimeStockNow.Valid || r.GoodsReceivedToday.Valid
}

// MatchResult pairs a matched record with its parsed stock value for ranking.
type MatchResult struct {
	Record       *ProductRecord
	NumericStock float64
}

// MovementRow is one rendering-ready day of an item's movement report.
// All figures are rounded to the nearest integer for display.
type MovementRow struct {
	Label           string `json:"label"`
	Sales           int64  `json:"sales"`
	ReceiptsTotal   int64  `json:"receiptsTotal"`
	InventoryAdjust int64  `json:"inventoryAdjust"`
	StockOnHand     int64  `json:"stockOnHand"`
}
