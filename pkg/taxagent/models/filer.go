package models

// Filer holds the organization constants embedded in every document and
// output file name.
type Filer struct {
	// UNP is the organization's payer account number.
	UNP string `toml:"unp"`
	// InspectionCode is the tax inspection code (nmns).
	InspectionCode int `toml:"inspection_code"`
	// InspectionCodeFiler is the filer's tax inspection code (nmnsf).
	InspectionCodeFiler int `toml:"inspection_code_filer"`
	// DocumentType is the pckagentinfo ntype value.
	DocumentType int    `toml:"document_type"`
	Executor     string `toml:"executor"`
	Phone        string `toml:"phone"`
	// FormType and DepartmentCode appear in output file names.
	FormType       int `toml:"form_type"`
	DepartmentCode int `toml:"department_code"`
	// CountryCode is the citizenship code (cstranf).
	CountryCode string `toml:"country_code"`
	// IdentityDocCode is the identity document code (cvdoc).
	IdentityDocCode string `toml:"identity_doc_code"`
	// TaxRate is the income tax rate in percent (nrate).
	TaxRate int `toml:"tax_rate"`
}

// DefaultFiler returns the filer constants of the reference deployment.
func DefaultFiler() Filer {
	return Filer{
		UNP:                 "700069297",
		InspectionCode:      741,
		InspectionCodeFiler: 741,
		DocumentType:        1,
		Executor:            "Буйко Т.С.",
		Phone:               "72-30-50",
		FormType:            1,
		DepartmentCode:      0,
		CountryCode:         "112",
		IdentityDocCode:     "01",
		TaxRate:             13,
	}
}
