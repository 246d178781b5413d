// Package output serializes filing documents and writes them as batch files.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/taxagent-go/pkg/taxagent/models"
)

// Indent is the indentation of written documents.
const Indent = "    "

// ToJSON serializes doc as indented UTF-8 JSON. Non-ASCII text and HTML
// characters are written verbatim.
func ToJSON(doc *models.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
