// Package export genera planillas con los resultados del matching.
package export

import (
	"fmt"
	"io"
	"strconv"

	"pet-adoption/internal/domain/matching"

	"github.com/xuri/excelize/v2"
)

const matchesSheet = "Matches"

var matchesHeader = []string{
	"Rank",
	"Score",
	"Name",
	"Species",
	"Breed",
	"Age (months)",
	"Gender",
	"Size",
	"Energy",
}

var matchesColWidths = []float64{6, 8, 18, 10, 22, 14, 10, 10, 10}

// WriteMatchesXLSX escribe los matches en orden, una fila por mascota.
func WriteMatchesXLSX(w io.Writer, matches []matching.Match) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", matchesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for col, h := range matchesHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(matchesSheet, cell, h); err != nil {
			return fmt.Errorf("set header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(matchesSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("set header style: %w", err)
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(matchesSheet, name, name, matchesColWidths[col]); err != nil {
			return fmt.Errorf("set col width: %w", err)
		}
	}

	for i, m := range matches {
		row := []any{
			i + 1,
			m.Score,
			m.Pet.Name,
			string(m.Pet.Species),
			m.Pet.Breed,
			ageCell(m.Pet.AgeMonths),
			string(m.Pet.Gender),
			string(m.Pet.Size),
			string(m.Pet.EnergyLevel),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(matchesSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// Edad desconocida => celda vacía.
func ageCell(age *int) string {
	if age == nil {
		return ""
	}
	return strconv.Itoa(*age)
}
