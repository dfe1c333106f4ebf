package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/nicexwisly/Linebot-Jonggajang/internal/domain"
)

// dateLayout is the ISO day format the stock export writes.
const dateLayout = "2006-01-02"

// labelLayout is the weekday + day/month label shown in movement tables.
const labelLayout = "Mon 02/01"

// MovementAssembler builds the ordered daily rows of an item's movement
// report from its parallel time series.
type MovementAssembler struct {
	historyDays int
	now         func() time.Time
}

// NewMovementAssembler creates an assembler keeping the given number of
// historical days (7 when zero or negative).
func NewMovementAssembler(historyDays int) *MovementAssembler {
	if historyDays <= 0 {
		historyDays = 7
	}
	return &MovementAssembler{
		historyDays: historyDays,
		now:         time.Now,
	}
}

// Assemble returns the item's movement rows, newest first. Missing series
// entries read as zero and a bad date never drops its row; the raw string
// becomes the label and the row sorts after the parseable dates in source
// order. When real-time fields are present a synthetic "today" row is
// prepended, in addition to any historical row for the same date.
func (a *MovementAssembler) Assemble(rec *domain.ProductRecord) []domain.MovementRow {
	type dayIndex struct {
		src    int
		date   time.Time
		parsed bool
		raw    string
	}

	days := make([]dayIndex, 0, len(rec.Dates))
	for i, raw := range rec.Dates {
		d := dayIndex{src: i, raw: raw.String()}
		if t, err := time.Parse(dateLayout, d.raw); err == nil {
			d.date = t
			d.parsed = true
		}
		days = append(days, d)
	}

	// Newest first; unparseable dates follow the parsed ones, keeping their
	// source order via sort stability.
	sort.SliceStable(days, func(i, j int) bool {
		x, y := days[i], days[j]
		switch {
		case x.parsed && y.parsed:
			return x.date.After(y.date)
		case x.parsed:
			return true
		default:
			return false
		}
	})

	if len(days) > a.historyDays {
		days = days[:a.historyDays]
	}

	rows := make([]domain.MovementRow, 0, len(days)+1)

	if rec.HasRealtime() {
		rows = append(rows, domain.MovementRow{
			Label:           a.now().Format(labelLayout),
			Sales:           roundQty(rec.RealtimeSalesToday.Float()),
			ReceiptsTotal:   roundQty(rec.GoodsReceivedToday.Float()),
			InventoryAdjust: 0,
			StockOnHand:     roundQty(rec.RealtimeStockNow.Float()),
		})
	}

	for _, d := range days {
		label := d.raw
		if d.parsed {
			label = d.date.Format(labelLayout)
		}
		rows = append(rows, domain.MovementRow{
			Label:           label,
			Sales:           roundQty(seriesAt(rec.NetSales, d.src)),
			ReceiptsTotal:   roundQty(seriesAt(rec.Receipts, d.src) + seriesAt(rec.DistributionReceipts, d.src)),
			InventoryAdjust: roundQty(seriesAt(rec.InventoryAdjust, d.src)),
			StockOnHand:     roundQty(seriesAt(rec.EndOfPeriodStock, d.src)),
		})
	}

	return rows
}

// seriesAt reads one series entry, treating null and out-of-range as zero.
// Sibling arrays are assumed equal length but a short one must not panic.
func seriesAt(series []domain.FlexNumber, i int) float64 {
	if i < 0 || i >= len(series) {
		return 0
	}
	return series[i].Float()
}

func roundQty(v float64) int64 {
	return int64(math.Round(v))
}
