// Package models defines data structures for payroll tax conversion.
package models

import "github.com/shopspring/decimal"

// MonthsPerYear is the number of monthly figure sets carried by a Person.
const MonthsPerYear = 12

// MonthlyFigures holds one calendar month of tax figures for a person.
// Fields are listed in the order their rows appear in a sheet block.
type MonthlyFigures struct {
	// Income is the gross income (code 201).
	Income decimal.Decimal
	// Tax is the income tax withheld.
	Tax decimal.Decimal
	// Benefit610 is the code 610 deduction.
	Benefit610 decimal.Decimal
	// Deduction600 is the standard deduction base (code 600).
	Deduction600 decimal.Decimal
	// Deduction620 is the code 620 deduction.
	Deduction620 decimal.Decimal
	// Deduction650 is the code 650 deduction.
	Deduction650 decimal.Decimal
	// Deduction660 is the code 660 deduction.
	Deduction660 decimal.Decimal
	// MaterialAid is material assistance paid in the month.
	MaterialAid decimal.Decimal
}

// Person is one annual tax record read from a sheet block.
type Person struct {
	// Row is the 1-based sheet row of the block header.
	Row int
	// Number is the sequence number cell as written in the sheet.
	Number string
	// FullName is "surname given-name patronymic".
	FullName       string
	PassportNumber string
	PersonalNumber string
	Address        string
	// Months holds January through December.
	Months [MonthsPerYear]MonthlyFigures
}

// NameParts are the components derived from Person.FullName.
type NameParts struct {
	Surname    string
	GivenName  string
	Patronymic string
}
