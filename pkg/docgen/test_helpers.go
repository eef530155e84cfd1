// test_helpers.go contains in-memory DOCX builders exposed only for testing.
// These should not be used in production code.

package docgen

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
)

const testContentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const testRootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// buildDocumentXML wraps one paragraph per content line in minimal
// WordprocessingML.
func buildDocumentXML(content string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range strings.Split(content, "\n") {
		b.WriteString(`<w:p><w:r><w:t>`)
		b.WriteString(escapeXMLText(line))
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

// createTestDOCX builds a minimal valid DOCX buffer whose body holds the
// given content, one paragraph per line. Extra parts (e.g. media) may be
// supplied by name.
func createTestDOCX(content string, extraParts map[string][]byte) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	parts := map[string]string{
		"_rels/.rels":    testRootRelsXML,
		ContentTypesPart: testContentTypesXML,
		MainDocumentPart: buildDocumentXML(content),
	}

	for name, content := range parts {
		fw, _ := w.Create(name)
		io.WriteString(fw, content)
	}
	for name, content := range extraParts {
		fw, _ := w.Create(name)
		fw.Write(content)
	}

	w.Close()
	return buf.Bytes()
}

// createTestDOCXWithoutPart builds a DOCX buffer that deliberately omits one
// required part, for validator failure cases.
func createTestDOCXWithoutPart(content, omit string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	parts := map[string]string{
		"_rels/.rels":    testRootRelsXML,
		ContentTypesPart: testContentTypesXML,
		MainDocumentPart: buildDocumentXML(content),
	}

	for name, content := range parts {
		if name == omit {
			continue
		}
		fw, _ := w.Create(name)
		io.WriteString(fw, content)
	}

	w.Close()
	return buf.Bytes()
}
