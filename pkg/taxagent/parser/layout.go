// Package parser reads person records out of a payroll spreadsheet.
package parser

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/taxagent-go/pkg/taxagent/models"
)

// categoryFields maps the category rows of a block, in order, to the
// MonthlyFigures field they fill.
var categoryFields = []func(*models.MonthlyFigures) *decimal.Decimal{
	func(m *models.MonthlyFigures) *decimal.Decimal { return &m.Income },
	func(m *models.MonthlyFigures) *decimal.Decimal { return &m.Tax },
	func(m *models.MonthlyFigures) *decimal.Decimal { return &m.Benefit610 },
	func(m *models.MonthlyFigures) *decimal.Decimal { return &m.Deduction600 },
	func(m *models.MonthlyFigures) *decimal.Decimal { return &m.Deduction620 },
	func(m *models.MonthlyFigures) *decimal.Decimal { return &m.Deduction650 },
	func(m *models.MonthlyFigures) *decimal.Decimal { return &m.Deduction660 },
	func(m *models.MonthlyFigures) *decimal.Decimal { return &m.MaterialAid },
}

// CategoryRows is the number of tax category rows following a block header.
var CategoryRows = len(categoryFields)

// Layout describes the block geometry of a payroll sheet.
// Rows and columns are 1-based.
type Layout struct {
	// FirstRow is the header row of the first block.
	FirstRow int `toml:"first_row"`
	// BlockHeight is the row distance between consecutive block headers.
	BlockHeight int `toml:"block_height"`

	NumberCol         int `toml:"number_col"`
	NameCol           int `toml:"name_col"`
	PassportCol       int `toml:"passport_col"`
	PersonalNumberCol int `toml:"personal_number_col"`
	AddressCol        int `toml:"address_col"`

	// FirstMonthCol is January's column; the other months follow it.
	FirstMonthCol int `toml:"first_month_col"`
}

// DefaultLayout returns the layout of the reference income workbook.
func DefaultLayout() Layout {
	return Layout{
		FirstRow:          5,
		BlockHeight:       9,
		NumberCol:         1,
		NameCol:           2,
		PassportCol:       6,
		PersonalNumberCol: 8,
		AddressCol:        10,
		FirstMonthCol:     2,
	}
}

// Validate reports whether the layout can hold a header row plus every
// category row.
func (l Layout) Validate() error {
	if l.FirstRow < 1 {
		return fmt.Errorf("invalid layout: first row %d", l.FirstRow)
	}
	if l.BlockHeight < 1+CategoryRows {
		return fmt.Errorf("invalid layout: block height %d is below %d", l.BlockHeight, 1+CategoryRows)
	}
	cols := map[string]int{
		"number":          l.NumberCol,
		"name":            l.NameCol,
		"passport":        l.PassportCol,
		"personal number": l.PersonalNumberCol,
		"address":         l.AddressCol,
		"first month":     l.FirstMonthCol,
	}
	for name, col := range cols {
		if col < 1 {
			return fmt.Errorf("invalid layout: %s column %d", name, col)
		}
	}
	return nil
}
