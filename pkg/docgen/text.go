package docgen

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

const wordMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

func isWordMLElement(name xml.Name, local string) bool {
	if name.Local != local {
		return false
	}
	return name.Space == "" || name.Space == wordMLNamespace
}

// extractDocumentText streams the main-part markup and collects its visible
// text: the contents of text runs, one line per paragraph. A decoding error
// means the markup cannot form a working document model.
func extractDocumentText(markup []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(markup))
	var b strings.Builder
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if isWordMLElement(t.Name, "t") {
				inText = true
			}
		case xml.EndElement:
			if isWordMLElement(t.Name, "t") {
				inText = false
			}
			if isWordMLElement(t.Name, "p") {
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return b.String(), nil
}

// escapeXMLText escapes a substitution value for insertion into markup text.
func escapeXMLText(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
