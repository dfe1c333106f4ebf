package domain

import (
	"encoding/json"
	"testing"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain string", in: `"1023"`, want: "1023"},
		{name: "numeric with fraction suffix", in: `1023.0`, want: "1023.0"},
		{name: "integer", in: `42`, want: "42"},
		{name: "null", in: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s FlexString
			if err := json.Unmarshal([]byte(tt.in), &s); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
			}
			if s.String() != tt.want {
				t.Errorf("FlexString = %q, want %q", s, tt.want)
			}
		})
	}
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "absent", in: `null`, want: nil},
		{name: "single string", in: `"885001"`, want: []string{"885001"}},
		{name: "list", in: `["885001","885002"]`, want: []string{"885001", "885002"}},
		{name: "numeric scalar", in: `885001`, want: []string{"885001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			if err := json.Unmarshal([]byte(tt.in), &l); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
			}
			if len(l) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(l), len(tt.want))
			}
			for i := range l {
				if l[i] != tt.want[i] {
					t.Errorf("item %d = %q, want %q", i, l[i], tt.want[i])
				}
			}
		})
	}
}

func TestFlexNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantValue float64
		wantValid bool
	}{
		{name: "number", in: `12.5`, wantValue: 12.5, wantValid: true},
		{name: "string with thousands separators", in: `"1,234"`, wantValue: 1234, wantValid: true},
		{name: "one-element array", in: `[7]`, wantValue: 7, wantValid: true},
		{name: "empty array", in: `[]`, wantValue: 0, wantValid: false},
		{name: "null", in: `null`, wantValue: 0, wantValid: false},
		{name: "garbage string", in: `"n/a"`, wantValue: 0, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n FlexNumber
			if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
			}
			if n.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", n.Valid, tt.wantValid)
			}
			if n.Float() != tt.wantValue {
				t.Errorf("Float() = %v, want %v", n.Float(), tt.wantValue)
			}
		})
	}
}

func TestProductRecord_UnmarshalJSON(t *testing.T) {
	raw := `{
		"Item Name": "Widget A",
		"Item Number": 1023.0,
		"PLU": "55",
		"Barcode": "885001",
		"Price": 12.50,
		"SOH Qty": "~120",
		"Dept": "Grocery",
		"Date": ["2026-08-28", "2026-08-29"],
		"Receipts Qty": [5, null],
		"Net Sales Qty": ["1,200", 3],
		"Stock Now": [118]
	}`

	var rec ProductRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if rec.ItemCode.String() != "1023.0" {
		t.Errorf("ItemCode = %q, want 1023.0", rec.ItemCode)
	}
	if len(rec.Barcodes) != 1 || rec.Barcodes[0] != "885001" {
		t.Errorf("Barcodes = %v, want [885001]", rec.Barcodes)
	}
	if rec.Stock.String() != "~120" {
		t.Errorf("Stock = %q, want ~120", rec.Stock)
	}
	if rec.Receipts[1].Valid {
		t.Errorf("null series entry should be invalid")
	}
	if rec.NetSales[0].Float() != 1200 {
		t.Errorf("NetSales[0] = %v, want 1200", rec.NetSales[0].Float())
	}
	if !rec.HasRealtime() {
		t.Errorf("HasRealtime() = false, want true (Stock Now present)")
	}
}

func TestQueryKind_String(t *testing.T) {
	if QueryFuzzy.String() != "fuzzy" || QueryPLUExact.String() != "plu" || QueryItemDetail.String() != "detail" {
		t.Errorf("QueryKind labels = %s/%s/%s", QueryFuzzy, QueryPLUExact, QueryItemDetail)
	}
}
