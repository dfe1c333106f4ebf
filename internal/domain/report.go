package domain

// RecordSummary is one ranked line of a list report, ready for a text line or
// a structured card.
type RecordSummary struct {
	ItemCode string `json:"itemCode"`
	PLU      string `json:"plu,omitempty"`
	Name     string `json:"name"`
	Price    string `json:"price,omitempty"`
	Stock    string `json:"stock"`
	OnOrder  string `json:"onOrder,omitempty"`
}

// DetailHeader is the decorative header block of a movement report.
type DetailHeader struct {
	ItemCode   string `json:"itemCode"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Class      string `json:"class,omitempty"`
}

// EngineResult is the engine's renderable answer to one keyword. Text is
// always set (sentinel messages included); the structured payloads are filled
// per query kind so a card-capable renderer can consume the same result.
type EngineResult struct {
	Kind     QueryKind       `json:"kind"`
	Text     string          `json:"text"`
	Records  []RecordSummary `json:"records,omitempty"`
	Header   *DetailHeader   `json:"header,omitempty"`
	Movement []MovementRow   `json:"movement,omitempty"`
}
