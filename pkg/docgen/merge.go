package docgen

import (
	"strings"

	"go.uber.org/zap"
)

// Body boundary markers and the page-break paragraph spliced between
// merged documents. Body location is a fixed-marker match, not a parse.
const (
	bodyOpenTag  = "<w:body>"
	bodyCloseTag = "</w:body>"
	pageBreakXML = `<w:p><w:r><w:br w:type="page"/></w:r></w:p>`
)

// splitBody splits the main-part markup around its body content. index names
// the document's position in the merge input for error reporting.
func splitBody(markup string, index int) (prefix, body, suffix string, err error) {
	open := strings.Index(markup, bodyOpenTag)
	if open == -1 {
		return "", "", "", NewDocumentStructureError(index, "document body open marker not found")
	}
	bodyStart := open + len(bodyOpenTag)

	end := strings.LastIndex(markup, bodyCloseTag)
	if end == -1 || end < bodyStart {
		return "", "", "", NewDocumentStructureError(index, "document body close marker not found")
	}

	return markup[:bodyStart], markup[bodyStart:end], markup[end:], nil
}

// MergeDocuments concatenates the main-document bodies of the given rendered
// packages in input order, inserting a page break between consecutive
// documents, and copies media assets from each subsequent package into the
// first. A single-element input is returned unchanged. Empty input is a
// usage error.
//
// Media parts are copied under their original names, skipping names already
// present in the base: colliding filenames silently keep the base's version.
// Relationship IDs referenced by copied media are not re-pointed into the
// base package's relationship table, so images originating in non-base
// documents may not display in the merged output. A full fix requires
// renumbering every merged document's relationship manifest.
func MergeDocuments(buffers [][]byte) ([]byte, error) {
	if len(buffers) == 0 {
		return nil, ErrNoDocumentsToMerge
	}
	if len(buffers) == 1 {
		return buffers[0], nil
	}

	base, err := OpenPackage(buffers[0])
	if err != nil {
		return nil, err
	}

	baseMarkup, err := base.MainDocument()
	if err != nil {
		return nil, err
	}

	prefix, baseBody, suffix, err := splitBody(baseMarkup, 0)
	if err != nil {
		return nil, err
	}

	bodies := make([]string, 0, len(buffers))
	bodies = append(bodies, baseBody)
	mediaCopied := 0

	for i, buf := range buffers[1:] {
		index := i + 1

		pkg, err := OpenPackage(buf)
		if err != nil {
			return nil, err
		}

		markup, err := pkg.MainDocument()
		if err != nil {
			return nil, err
		}

		_, body, _, err := splitBody(markup, index)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)

		for _, name := range pkg.ListParts(MediaPrefix) {
			if base.HasPart(name) {
				continue
			}
			content, err := pkg.Part(name)
			if err != nil {
				return nil, err
			}
			base.SetPart(name, content)
			mediaCopied++
		}
	}

	combined := strings.Join(bodies, pageBreakXML)
	base.SetPart(MainDocumentPart, []byte(prefix+combined+suffix))

	out, err := base.Serialize()
	if err != nil {
		return nil, err
	}

	GetLogger().Debug("merged documents",
		zap.Int("documents", len(buffers)),
		zap.Int("media_copied", mediaCopied),
		zap.Int("output_bytes", len(out)))

	return out, nil
}

// AddPageBreak appends one page-break paragraph to the end of a document's
// body, for a single document that will be appended to later in a pipeline.
func AddPageBreak(buf []byte) ([]byte, error) {
	pkg, err := OpenPackage(buf)
	if err != nil {
		return nil, err
	}

	markup, err := pkg.MainDocument()
	if err != nil {
		return nil, err
	}

	prefix, body, suffix, err := splitBody(markup, 0)
	if err != nil {
		return nil, err
	}

	pkg.SetPart(MainDocumentPart, []byte(prefix+body+pageBreakXML+suffix))
	return pkg.Serialize()
}
