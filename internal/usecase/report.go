package usecase

import (
	"fmt"
	"strings"

	"github.com/nicexwisly/Linebot-Jonggajang/internal/domain"
)

// Fallback size when a list report overruns the character budget.
const fallbackTopN = 10

// MsgNoCatalog is the sentinel shown while no catalog has been uploaded yet.
const MsgNoCatalog = "❌ ยังไม่มีข้อมูลสินค้า กรุณาอัปโหลดไฟล์สต็อกก่อน"

// MsgItemNotFound is the sentinel for an item-detail lookup with no match.
func MsgItemNotFound(key string) string {
	return fmt.Sprintf("❌ ไม่พบข้อมูลสำหรับรหัสสินค้า: %s", key)
}

// MsgNoMatches is the sentinel for a keyword or PLU search with no match.
func MsgNoMatches(key string) string {
	return fmt.Sprintf("❌ ไม่พบสินค้า: %s", key)
}

// ReportFormatter renders ranked match lists and movement tables into
// size-budgeted output.
type ReportFormatter struct {
	charBudget int
	maxCards   int
}

// NewReportFormatter creates a formatter with the given character budget and
// structured-card cap (4500 / 10 when zero or negative).
func NewReportFormatter(charBudget, maxCards int) *ReportFormatter {
	if charBudget <= 0 {
		charBudget = 4500
	}
	if maxCards <= 0 {
		maxCards = 10
	}
	return &ReportFormatter{charBudget: charBudget, maxCards: maxCards}
}

// FormatList renders ranked matches as one summary line per record. When the
// text overruns the character budget it falls back to the top records by rank.
func (f *ReportFormatter) FormatList(kind domain.QueryKind, ranked []domain.MatchResult) domain.EngineResult {
	text := f.renderListText(ranked)
	if len(text) > f.charBudget && len(ranked) > fallbackTopN {
		text = f.renderListText(ranked[:fallbackTopN])
	}

	cards := ranked
	if len(cards) > f.maxCards {
		cards = cards[:f.maxCards]
	}
	records := make([]domain.RecordSummary, 0, len(cards))
	for _, m := range cards {
		records = append(records, summarize(m.Record))
	}

	return domain.EngineResult{
		Kind:    kind,
		Text:    text,
		Records: records,
	}
}

func (f *ReportFormatter) renderListText(ranked []domain.MatchResult) string {
	lines := make([]string, 0, len(ranked))
	for _, m := range ranked {
		rec := m.Record
		lines = append(lines, fmt.Sprintf("- %s | PLU %s | %s | ราคา %s | คงเหลือ %s | ค้างรับ %s",
			rec.ItemCode, rec.PLU, rec.Name, rec.Price,
			DisplayStock(rec.Stock.String()), rec.OnOrder))
	}
	return strings.Join(lines, "\n")
}

// FormatDetail renders an item header block plus a fixed-width movement table,
// today row first when present.
func (f *ReportFormatter) FormatDetail(rec *domain.ProductRecord, rows []domain.MovementRow) domain.EngineResult {
	header := &domain.DetailHeader{
		ItemCode:   rec.ItemCode.String(),
		Name:       rec.Name.String(),
		Department: rec.Department.String(),
		Class:      rec.Class.String(),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📦 %s | %s/%s\n%s\n", header.ItemCode, header.Department, header.Class, header.Name)
	fmt.Fprintf(&b, "%-10s %6s %6s %6s %7s", "Date", "Sale", "Rcv", "Adj", "SOH")
	for _, row := range rows {
		fmt.Fprintf(&b, "\n%-10s %6d %6d %6d %7d",
			row.Label, row.Sales, row.ReceiptsTotal, row.InventoryAdjust, row.StockOnHand)
	}

	return domain.EngineResult{
		Kind:     domain.QueryItemDetail,
		Text:     b.String(),
		Header:   header,
		Movement: rows,
	}
}

func summarize(rec *domain.ProductRecord) domain.RecordSummary {
	return domain.RecordSummary{
		ItemCode: rec.ItemCode.String(),
		PLU:      rec.PLU.String(),
		Name:     rec.Name.String(),
		Price:    rec.Price.String(),
		Stock:    DisplayStock(rec.Stock.String()),
		OnOrder:  rec.OnOrder.String(),
	}
}
