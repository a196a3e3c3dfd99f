// Package reader decodes workbook bytes into raw sheets.
package reader

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/xuri/excelize/v2"
)

// Format names a spreadsheet container format.
type Format string

const (
	// FormatXLSX is the Office Open XML workbook (zip) container.
	FormatXLSX Format = "xlsx"
	// FormatXLS is the legacy BIFF workbook in an OLE2 compound file.
	FormatXLS Format = "xls"
	// FormatUnknown is anything else.
	FormatUnknown Format = "unknown"
)

// ErrUnrecognizedFormat indicates the bytes are neither an xlsx nor an xls container.
var ErrUnrecognizedFormat = errors.New("unrecognized spreadsheet container")

var (
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Detect sniffs the container format from the leading bytes.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX
	case bytes.HasPrefix(data, oleMagic):
		return FormatXLS
	default:
		return FormatUnknown
	}
}

// Read decodes data into sheets in workbook order.
// The returned format is set even when decoding fails.
func Read(data []byte) ([]models.RawSheet, Format, error) {
	format := Detect(data)
	switch format {
	case FormatXLSX:
		sheets, err := readXLSX(data)
		return sheets, format, err
	case FormatXLS:
		sheets, err := readXLS(data)
		return sheets, format, err
	default:
		return nil, format, ErrUnrecognizedFormat
	}
}

func readXLSX(data []byte) ([]models.RawSheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("open xlsx: workbook has no sheets")
	}

	sheets := make([]models.RawSheet, 0, len(sheetList))
	for _, sheetName := range sheetList {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			// Unreadable sheets are kept as empty so sheet order is preserved.
			rows = nil
		}
		sheets = append(sheets, toRawSheet(sheetName, rows))
	}
	return sheets, nil
}

func toRawSheet(name string, rows [][]string) models.RawSheet {
	sheet := models.RawSheet{Name: name, Rows: make([][]models.Cell, len(rows))}
	for i, row := range rows {
		sheet.Rows[i] = toCells(row)
	}
	return sheet
}
