package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid is a bounded 2-D view of sheet cell values.
type Grid interface {
	// Cell returns the value at a 1-based row and column, or "" when the
	// cell is empty or outside the grid.
	Cell(row, col int) string
	// MaxRow returns the last row that holds data.
	MaxRow() int
}

// RowsGrid is a Grid backed by rows of strings, as returned by
// excelize.File.GetRows.
type RowsGrid [][]string

// Cell implements Grid.
func (g RowsGrid) Cell(row, col int) string {
	if row < 1 || row > len(g) {
		return ""
	}
	r := g[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return strings.TrimSpace(r[col-1])
}

// MaxRow implements Grid.
func (g RowsGrid) MaxRow() int {
	return len(g)
}

// LoadActiveSheet reads the active sheet of f into a RowsGrid and returns it
// along with the sheet name. Values are read unformatted so that number
// formats do not leak into the figures.
func LoadActiveSheet(f *excelize.File) (RowsGrid, string, error) {
	sheetName := f.GetSheetName(f.GetActiveSheetIndex())
	if sheetName == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, "", fmt.Errorf("workbook has no sheets")
		}
		sheetName = list[0]
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, sheetName, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	return RowsGrid(rows), sheetName, nil
}
