package parser

import (
	"fmt"

	"github.com/ukaji3/taxagent-go/pkg/taxagent/models"
)

// rowBlock is the raw text of one person's block.
type rowBlock struct {
	row            int
	number         string
	fullName       string
	passportNumber string
	personalNumber string
	address        string
	// figures[category][month]
	figures [][models.MonthsPerYear]string
	// nameCol and firstMonthCol locate cells for error reporting.
	nameCol       int
	firstMonthCol int
}

// ParsePersons walks g block by block and returns one Person per block,
// in sheet order.
func ParsePersons(g Grid, layout Layout) ([]models.Person, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	var persons []models.Person
	for row := layout.FirstRow; row <= g.MaxRow(); row += layout.BlockHeight {
		p, err := readBlock(g, layout, row).person()
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	return persons, nil
}

// readBlock copies the cells of the block whose header is at row.
func readBlock(g Grid, l Layout, row int) rowBlock {
	b := rowBlock{
		row:            row,
		number:         g.Cell(row, l.NumberCol),
		fullName:       g.Cell(row, l.NameCol),
		passportNumber: g.Cell(row, l.PassportCol),
		personalNumber: g.Cell(row, l.PersonalNumberCol),
		address:        g.Cell(row, l.AddressCol),
		figures:        make([][models.MonthsPerYear]string, CategoryRows),
		nameCol:        l.NameCol,
		firstMonthCol:  l.FirstMonthCol,
	}
	for c := range b.figures {
		for m := 0; m < models.MonthsPerYear; m++ {
			b.figures[c][m] = g.Cell(row+1+c, l.FirstMonthCol+m)
		}
	}
	return b
}

// person converts the raw block. A header row without any identity data
// means the blocks are misaligned; a non-numeric figure likewise.
func (b rowBlock) person() (models.Person, error) {
	if b.number == "" && b.fullName == "" && b.passportNumber == "" &&
		b.personalNumber == "" && b.address == "" {
		return models.Person{}, &LayoutError{
			Row: b.row,
			Col: b.nameCol,
			Err: fmt.Errorf("%w: block header row is empty", ErrStructuralMismatch),
		}
	}

	p := models.Person{
		Row:            b.row,
		Number:         b.number,
		FullName:       b.fullName,
		PassportNumber: b.passportNumber,
		PersonalNumber: b.personalNumber,
		Address:        b.address,
	}
	for c, field := range categoryFields {
		for m := 0; m < models.MonthsPerYear; m++ {
			raw := b.figures[c][m]
			v, err := parseAmount(raw)
			if err != nil {
				return models.Person{}, &LayoutError{
					Row:   b.row + 1 + c,
					Col:   b.firstMonthCol + m,
					Value: raw,
					Err:   ErrStructuralMismatch,
				}
			}
			*field(&p.Months[m]) = v
		}
	}
	return p, nil
}
