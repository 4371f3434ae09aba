package renderer

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// Column titles of tabular exports.
const (
	ColumnTicker       = "Ações"
	ColumnQuantity     = "Quantidade"
	ColumnPriceFormula = "Fórmula Preço Médio"
)

// XLSXSheet is the name of the sheet written by WriteXLSX.
const XLSXSheet = "Notas"

// tableRow is one group in tabular exports.
type tableRow struct {
	Ticker       string `csv:"Ações"`
	Quantity     string `csv:"Quantidade"`
	PriceFormula string `csv:"Fórmula Preço Médio"`
}

func tableRows(r *Report) []*tableRow {
	rows := make([]*tableRow, 0, len(r.Groups))
	for _, g := range r.Groups {
		rows = append(rows, &tableRow{Ticker: g.Ticker, Quantity: g.Quantity, PriceFormula: g.PriceFormula})
	}
	return rows
}

// WriteCSV writes the report as CSV: a header row, then one row per group.
func WriteCSV(w io.Writer, r *Report) error {
	if err := gocsv.Marshal(tableRows(r), w); err != nil {
		return fmt.Errorf("cannot write CSV: %w", err)
	}
	return nil
}

// WriteXLSX writes the report as an Excel workbook with a single sheet
// holding the same rows as WriteCSV.
func WriteXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", XLSXSheet); err != nil {
		return fmt.Errorf("cannot create sheet: %w", err)
	}
	header := []any{ColumnTicker, ColumnQuantity, ColumnPriceFormula}
	if err := f.SetSheetRow(XLSXSheet, "A1", &header); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for i, row := range tableRows(r) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{row.Ticker, row.Quantity, row.PriceFormula}
		if err := f.SetSheetRow(XLSXSheet, cell, &values); err != nil {
			return fmt.Errorf("cannot write row %d: %w", i+2, err)
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write XLSX: %w", err)
	}
	return nil
}
