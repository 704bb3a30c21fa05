// Package xlsx renders scrap and production reports as Excel workbooks.
package xlsx

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// ContentType is the MIME type of the produced workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	scrapSheet      = "Scrap"
	productionSheet = "Production"
	timestampLayout = "2006-01-02 15:04"
)

var scrapHeader = []any{
	"Registered at", "Order", "Item", "Scrap type", "Quantity",
	"Material waste", "Waste %", "Reason", "Notes", "Worker", "Personal ID",
}

var productionHeader = []any{
	"Area", "Cards", "Good parts", "Scrap parts", "Material usage", "Avg good parts",
}

// ScrapEntries writes the ledger extract to w: a title row, a header, one
// row per entry, and a totals row.
func ScrapEntries(w io.Writer, title string, entries []domain.ScrapEntry, summary domain.ScrapSummary, loc *time.Location) error {
	return write(w, scrapSheet, func(b *book) error {
		if err := b.title(title); err != nil {
			return err
		}
		if err := b.header(scrapHeader); err != nil {
			return err
		}
		for _, e := range entries {
			row := []any{
				e.RegisteredAt.In(loc).Format(timestampLayout),
				e.OrderNumber,
				deref(e.ItemNumber),
				e.ScrapTypeCode + " " + e.ScrapTypeName,
				e.Quantity,
				e.MaterialWaste.InexactFloat64(),
				e.WastePercentage().InexactFloat64(),
				deref(e.Reason),
				deref(e.Notes),
				e.WorkerName,
				e.WorkerPersonalID,
			}
			if err := b.row(row); err != nil {
				return err
			}
		}
		return b.totals([]any{
			"Total", fmt.Sprintf("%d entries", summary.Entries), "", "",
			summary.TotalQuantity,
			summary.TotalWaste.InexactFloat64(),
			summary.WastePercentage.InexactFloat64(),
		})
	})
}

// ProductionStats writes per-area production totals to w.
func ProductionStats(w io.Writer, title string, stats []domain.AreaProductionStats) error {
	return write(w, productionSheet, func(b *book) error {
		if err := b.title(title); err != nil {
			return err
		}
		if err := b.header(productionHeader); err != nil {
			return err
		}

		var cards, good, scrap int
		for _, s := range stats {
			cards += s.TotalCards
			good += s.TotalGoodParts
			scrap += s.TotalScrapParts

			row := []any{
				s.AreaName,
				s.TotalCards,
				s.TotalGoodParts,
				s.TotalScrapParts,
				s.TotalMaterialUsage.InexactFloat64(),
				s.AvgGoodParts.InexactFloat64(),
			}
			if err := b.row(row); err != nil {
				return err
			}
		}
		return b.totals([]any{"Total", cards, good, scrap})
	})
}

// book tracks the cursor of a single-sheet workbook.
type book struct {
	f           *excelize.File
	sheet       string
	next        int
	boldStyle   int
	headerStyle int
}

func write(w io.Writer, sheet string, fill func(b *book) error) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}})
	if err != nil {
		return fmt.Errorf("xlsx: title style: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "808080", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}

	b := &book{f: f, sheet: sheet, next: 1, boldStyle: bold, headerStyle: header}
	if err := fill(b); err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "A", "K", 16); err != nil {
		return fmt.Errorf("xlsx: column width: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}

func (b *book) title(title string) error {
	cell, err := b.put([]any{title})
	if err != nil {
		return err
	}
	return b.style(cell, cell, b.boldStyle)
}

func (b *book) header(cols []any) error {
	first, err := b.put(cols)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(cols), b.next-1)
	if err != nil {
		return fmt.Errorf("xlsx: cell name: %w", err)
	}
	return b.style(first, last, b.headerStyle)
}

func (b *book) row(values []any) error {
	_, err := b.put(values)
	return err
}

func (b *book) totals(values []any) error {
	first, err := b.put(values)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), b.next-1)
	if err != nil {
		return fmt.Errorf("xlsx: cell name: %w", err)
	}
	return b.style(first, last, b.boldStyle)
}

// put writes values at the cursor and returns the first cell's name.
func (b *book) put(values []any) (string, error) {
	cell, err := excelize.CoordinatesToCellName(1, b.next)
	if err != nil {
		return "", fmt.Errorf("xlsx: cell name: %w", err)
	}
	if err := b.f.SetSheetRow(b.sheet, cell, &values); err != nil {
		return "", fmt.Errorf("xlsx: row %d: %w", b.next, err)
	}
	b.next++
	return cell, nil
}

func (b *book) style(from, to string, style int) error {
	if err := b.f.SetCellStyle(b.sheet, from, to, style); err != nil {
		return fmt.Errorf("xlsx: style %s:%s: %w", from, to, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
