// Package aggregate turns a person's monthly figures into the per-code
// monthly breakdowns and yearly totals of the filing schema.
package aggregate

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/taxagent-go/pkg/taxagent/models"
)

// TotalPlaces is the number of fractional digits kept in yearly totals.
// Rounding is half away from zero (decimal.Decimal.Round).
const TotalPlaces = 2

// Months is a person's figures, January first.
type Months = [models.MonthsPerYear]models.MonthlyFigures

// Totals are the yearly sums carried in a docagent record.
type Totals struct {
	// StandardBase is the code 600 total (nsumstand).
	StandardBase decimal.Decimal
	// TaxWithheld is the withheld tax total (ntsumcalcincome).
	TaxWithheld decimal.Decimal
	// Income is the code 201 total (ntsumincome).
	Income decimal.Decimal
}

// Summarize computes the yearly totals of months.
func Summarize(months Months) Totals {
	return Totals{
		StandardBase: Sum(months, func(m models.MonthlyFigures) decimal.Decimal { return m.Deduction600 }),
		TaxWithheld:  Sum(months, func(m models.MonthlyFigures) decimal.Decimal { return m.Tax }),
		Income:       Sum(months, func(m models.MonthlyFigures) decimal.Decimal { return m.Income }),
	}
}

// Sum adds the picked field over all months and rounds to TotalPlaces.
func Sum(months Months, pick func(models.MonthlyFigures) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range months {
		total = total.Add(pick(m))
	}
	return total.Round(TotalPlaces)
}

// Tar4 lists monthly income under code 201.
func Tar4(months Months) []models.Tar4Entry {
	entries := make([]models.Tar4Entry, 0, len(months))
	for i, m := range months {
		sum := Amount(m.Income)
		entries = append(entries, models.Tar4Entry{
			Month: i + 1,
			Sum:   sum,
			Codes: []models.CodeSum{{Code: models.CodeIncome, Sum: sum}},
		})
	}
	return entries
}

// Tar7 lists the monthly standard deduction base under code 600.
func Tar7(months Months) []models.Tar7Entry {
	entries := make([]models.Tar7Entry, 0, len(months))
	for i, m := range months {
		sum := Amount(m.Deduction600)
		entries = append(entries, models.Tar7Entry{
			Month: i + 1,
			Sum:   sum,
			Codes: []models.CodeSum{{Code: models.CodeStandardBase, Sum: sum}},
		})
	}
	return entries
}

// Tar14 lists monthly withheld tax. Dividend tax is not tracked and is
// always zero.
func Tar14(months Months) []models.Tar14Entry {
	entries := make([]models.Tar14Entry, 0, len(months))
	for i, m := range months {
		entries = append(entries, models.Tar14Entry{
			Month:  i + 1,
			SumTax: Amount(m.Tax),
		})
	}
	return entries
}

// Amount renders d as a JSON number without going through float64.
func Amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
