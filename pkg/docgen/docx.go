package docgen

import (
	"archive/zip"
	"bytes"
	"io"
	"sort"
	"strings"
)

const (
	// MainDocumentPart is the primary markup part holding the visible text.
	MainDocumentPart = "word/document.xml"
	// ContentTypesPart is the package's content-types manifest.
	ContentTypesPart = "[Content_Types].xml"
	// MediaPrefix is the namespace under which embedded media assets live.
	MediaPrefix = "word/media/"
)

// Package is a named-part container opened from a DOCX byte buffer.
// Parts read from the source archive can be overwritten or supplemented
// in memory; Serialize writes the result back to a buffer. A Package is
// not safe for concurrent mutation.
type Package struct {
	source    []byte
	reader    *zip.Reader
	parts     map[string]*zip.File
	overrides map[string][]byte
}

// OpenPackage opens a byte buffer as a document package. It fails with a
// MalformedPackageError if the buffer is not a valid archive or if the main
// document part or the content-types manifest is missing.
func OpenPackage(buf []byte) (*Package, error) {
	reader, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, NewMalformedPackageError("buffer is not a valid archive", err)
	}

	pkg := &Package{
		source:    buf,
		reader:    reader,
		parts:     make(map[string]*zip.File, len(reader.File)),
		overrides: make(map[string][]byte),
	}

	// Index all parts by name
	for _, file := range reader.File {
		pkg.parts[file.Name] = file
	}

	if _, ok := pkg.parts[MainDocumentPart]; !ok {
		return nil, NewMalformedPackageError("missing "+MainDocumentPart, nil)
	}
	if _, ok := pkg.parts[ContentTypesPart]; !ok {
		return nil, NewMalformedPackageError("missing "+ContentTypesPart, nil)
	}

	return pkg, nil
}

// Part returns the content of a named part. Overridden content takes
// precedence over the source archive.
func (p *Package) Part(name string) ([]byte, error) {
	if content, ok := p.overrides[name]; ok {
		return content, nil
	}

	file, ok := p.parts[name]
	if !ok {
		return nil, NewPartNotFoundError(name)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, NewMalformedPackageError("failed to open part "+name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, NewMalformedPackageError("failed to read part "+name, err)
	}

	return content, nil
}

// HasPart reports whether a part exists in the package.
func (p *Package) HasPart(name string) bool {
	if _, ok := p.overrides[name]; ok {
		return true
	}
	_, ok := p.parts[name]
	return ok
}

// SetPart overwrites or creates a part with the given content.
func (p *Package) SetPart(name string, content []byte) {
	p.overrides[name] = content
}

// ListParts returns the names of all parts whose path starts with the given
// prefix, sorted ascending. An empty prefix lists every part.
func (p *Package) ListParts(prefix string) []string {
	seen := make(map[string]bool, len(p.parts)+len(p.overrides))
	for name := range p.parts {
		seen[name] = true
	}
	for name := range p.overrides {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// MainDocument returns the content of the main document part as a string.
func (p *Package) MainDocument() (string, error) {
	content, err := p.Part(MainDocumentPart)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Serialize writes the package back to a byte buffer. Parts that were never
// overwritten are copied from the source archive unchanged, preserving
// non-document parts losslessly. Overridden and added parts are written with
// their in-memory content.
func (p *Package) Serialize() ([]byte, error) {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	written := make(map[string]bool, len(p.reader.File))
	for _, file := range p.reader.File {
		written[file.Name] = true

		fw, err := w.Create(file.Name)
		if err != nil {
			return nil, NewMalformedPackageError("failed to create part "+file.Name, err)
		}

		if content, ok := p.overrides[file.Name]; ok {
			if _, err := fw.Write(content); err != nil {
				return nil, NewMalformedPackageError("failed to write part "+file.Name, err)
			}
			continue
		}

		fr, err := file.Open()
		if err != nil {
			return nil, NewMalformedPackageError("failed to open part "+file.Name, err)
		}
		_, err = io.Copy(fw, fr)
		fr.Close()
		if err != nil {
			return nil, NewMalformedPackageError("failed to copy part "+file.Name, err)
		}
	}

	// Added parts not present in the source archive, in stable order.
	added := make([]string, 0, len(p.overrides))
	for name := range p.overrides {
		if !written[name] {
			added = append(added, name)
		}
	}
	sort.Strings(added)

	for _, name := range added {
		fw, err := w.Create(name)
		if err != nil {
			return nil, NewMalformedPackageError("failed to create part "+name, err)
		}
		if _, err := fw.Write(p.overrides[name]); err != nil {
			return nil, NewMalformedPackageError("failed to write part "+name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, NewMalformedPackageError("failed to finalize archive", err)
	}

	return buf.Bytes(), nil
}
