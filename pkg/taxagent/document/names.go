// Package document assembles person records into filing documents.
package document

import (
	"strings"

	"github.com/ukaji3/taxagent-go/pkg/taxagent/models"
	"golang.org/x/text/unicode/norm"
)

// SplitName splits a full name into surname, given name and patronymic.
// ok is false unless the name has exactly three parts. Missing parts are
// left empty; with more than three parts the remainder is kept in the
// patronymic (e.g. "Мамедов Али Гусейн оглы").
func SplitName(fullName string) (parts models.NameParts, ok bool) {
	fields := strings.Fields(norm.NFC.String(fullName))
	ok = len(fields) == 3

	if len(fields) > 0 {
		parts.Surname = fields[0]
	}
	if len(fields) > 1 {
		parts.GivenName = fields[1]
	}
	if len(fields) > 2 {
		parts.Patronymic = strings.Join(fields[2:], " ")
	}
	return parts, ok
}
