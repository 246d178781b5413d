package parser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrStructuralMismatch indicates the sheet does not follow the block layout.
var ErrStructuralMismatch = errors.New("sheet does not match block layout")

// LayoutError locates a structural mismatch in the sheet.
type LayoutError struct {
	Row   int
	Col   int
	Value string
	Err   error
}

func (e *LayoutError) Error() string {
	cell, err := excelize.CoordinatesToCellName(e.Col, e.Row)
	if err != nil {
		cell = fmt.Sprintf("R%dC%d", e.Row, e.Col)
	}
	if e.Value != "" {
		return fmt.Sprintf("cell %s (row %d): %v: %q", cell, e.Row, e.Err, e.Value)
	}
	return fmt.Sprintf("cell %s (row %d): %v", cell, e.Row, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}
