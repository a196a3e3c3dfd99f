package reader

import (
	"bytes"
	"fmt"

	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/extrame/xls"
)

const xlsCharset = "utf-8"

// xlsMaxCols is the BIFF8 column limit. Rows written without a ROW record
// report no last column and are scanned up to it.
const xlsMaxCols = 256

func readXLS(data []byte) (sheets []models.RawSheet, err error) {
	// The BIFF decoder panics on some truncated streams.
	defer func() {
		if r := recover(); r != nil {
			sheets, err = nil, fmt.Errorf("open xls: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if wb == nil {
		return nil, fmt.Errorf("open xls: no Workbook stream")
	}
	if wb.NumSheets() == 0 {
		return nil, fmt.Errorf("open xls: workbook has no sheets")
	}

	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := xlsRow(sheet, r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			width := row.LastCol()
			if width <= 0 {
				width = xlsMaxCols
			}
			cols := make([]string, width)
			for c := row.FirstCol(); c < width; c++ {
				cols[c] = row.Col(c)
			}
			rows = append(rows, cols)
		}
		sheets = append(sheets, toRawSheet(sheet.Name, rows))
	}
	return sheets, nil
}

// xlsRow returns row i of sheet, or nil when the sheet has no such row.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	// WorkSheet.Row dereferences the missing row before returning it.
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}
