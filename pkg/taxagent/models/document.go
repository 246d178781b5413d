package models

import "encoding/json"

// Tax codes used in the monthly breakdowns.
const (
	CodeIncome       = 201
	CodeStandardBase = 600
)

// Document is the root of one output file.
type Document struct {
	Package Package `json:"pckagent"`
}

// Package holds the per-person records and the filer block.
type Package struct {
	Agents []DocAgent   `json:"docagent"`
	Info   PackageInfo `json:"pckagentinfo"`
}

// PackageInfo is the filer metadata block.
type PackageInfo struct {
	// Created is local time formatted as 2006-01-02T15:04:05.
	Created             string `json:"dcreate"`
	Year                int    `json:"ngod"`
	InspectionCode      int    `json:"nmns"`
	InspectionCodeFiler int    `json:"nmnsf"`
	Type                int    `json:"ntype"`
	Executor            string `json:"vexec"`
	Phone               string `json:"vphn"`
	UNP                 string `json:"vunp"`
}

// DocAgentInfo identifies the person a DocAgent describes.
type DocAgentInfo struct {
	PersonalNumber  string `json:"cln"`
	CountryCode     string `json:"cstranf"`
	IdentityDocCode string `json:"cvdoc"`
	Rate            int    `json:"nrate"`
	Surname         string `json:"vfam"`
	GivenName       string `json:"vname"`
	Patronymic      string `json:"votch"`
}

// DocAgent is one person's annual record. Amounts are json.Number so that
// decimal values are written verbatim.
type DocAgent struct {
	Info                 DocAgentInfo `json:"docagentinfo"`
	SumStandard          json.Number  `json:"nsumstand"`
	SumBank              int          `json:"ntsumbank"`
	SumCalcIncome        json.Number  `json:"ntsumcalcincome"`
	SumCalcIncomeDiv     int          `json:"ntsumcalcincomediv"`
	SumExempt            int          `json:"ntsumexemp"`
	SumIncome            json.Number  `json:"ntsumincome"`
	SumNotCalc           int          `json:"ntsumnotcalc"`
	SumProfessional      int          `json:"ntsumprof"`
	SumProperty          int          `json:"ntsumprop"`
	SumSecurities        int          `json:"ntsumsec"`
	SumSocial            int          `json:"ntsumsoc"`
	SumTrust             int          `json:"ntsumtrust"`
	SumWithheldIncome    int          `json:"ntsumwithincome"`
	SumWithheldIncomeDiv int          `json:"ntsumwithincomediv"`
	Tar14                []Tar14Entry `json:"tar14"`
	Tar4                 []Tar4Entry  `json:"tar4"`
	Tar7                 []Tar7Entry  `json:"tar7"`
}

// CodeSum tags an amount with its tax code.
type CodeSum struct {
	Code int         `json:"ncode"`
	Sum  json.Number `json:"nsum"`
}

// Tar4Entry is one month of income by code.
type Tar4Entry struct {
	Month int         `json:"nmonth"`
	Sum   json.Number `json:"nsummonth"`
	Codes []CodeSum   `json:"tar4sum"`
}

// Tar7Entry is one month of standard deductions by code.
type Tar7Entry struct {
	Month int         `json:"nmonth"`
	Sum   json.Number `json:"nsummonth"`
	Codes []CodeSum   `json:"tar7sum"`
}

// Tar14Entry is one month of withheld tax.
type Tar14Entry struct {
	Month       int         `json:"nmonth"`
	SumDividend int         `json:"nsumdiv"`
	SumTax      json.Number `json:"nsumt"`
}
