package ledger

import (
	"fmt"
	"strings"
	"time"

	"tablesync/lib/timezone"

	"github.com/xuri/excelize/v2"
)

var header = []string{"Timestamp", "Col2", "Col3", "Col4"}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// LoadFile reads a ledger workbook from disk. The first sheet is used,
// the first row is assumed to be the header. Cells that do not parse
// as a stamp load as zero stamps so placeholder rows survive a round
// trip.
func LoadFile(path string) (*Ledger, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read ledger sheet %s: %w", sheet, err)
	}

	led := &Ledger{}
	for i, row := range rows {
		if i == 0 {
			continue
		}

		var stamp time.Time
		if raw := cellAt(row, 0); raw != "" {
			stamp, err = time.ParseInLocation(StampLayout, raw, timezone.Location)
			if err != nil {
				stamp = time.Time{}
			}
		}
		led.Rows = append(led.Rows, Record{
			Stamp: stamp,
			Col2:  cellAt(row, 1),
			Col3:  cellAt(row, 2),
			Col4:  cellAt(row, 3),
		})
	}

	// GetRows stops at the last row holding a cell, which would drop
	// trailing placeholder slots. The sheet dimension preserves the
	// true grid height, pad back up to it.
	if dim, err := f.GetSheetDimension(sheet); err == nil {
		parts := strings.Split(dim, ":")
		if len(parts) == 2 {
			_, lastRow, err := excelize.CellNameToCoordinates(parts[1])
			if err == nil {
				for len(led.Rows) < lastRow-1 {
					led.Rows = append(led.Rows, Record{})
				}
			}
		}
	}

	return led, nil
}

// SaveFile writes the full ledger to a workbook at path, header row
// included, no index column. A destination held open exclusively by
// another process fails the save and leaves the on-disk file as it
// was; the caller reports that instead of retrying.
func (l *Ledger) SaveFile(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for i, r := range l.Rows {
		stamp := ""
		if !r.Stamp.IsZero() {
			stamp = r.Stamp.Format(StampLayout)
		}
		for col, value := range []string{stamp, r.Col2, r.Col3, r.Col4} {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	dim := fmt.Sprintf("A1:D%d", len(l.Rows)+1)
	if err := f.SetSheetDimension(sheet, dim); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write ledger %s (is it open in another program?): %w", path, err)
	}
	return nil
}
