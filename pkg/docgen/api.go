// Package docgen is the document-generation engine for lease paperwork.
// It treats a DOCX file as a named-part package, extracts template
// placeholders from its markup, validates structural integrity, renders
// placeholders against supplied data, and merges rendered packages into a
// single output with page breaks and embedded media.
//
// The engine's only boundary is byte-buffer-in/byte-buffer-or-struct-out:
// it never reads or writes a path, a database, or the network. Acquiring
// source buffers and persisting output belongs to the caller.
//
// Basic usage:
//
//	result := docgen.ValidateTemplateFormat(uploaded)
//	if !result.Valid {
//	    return errors.New(result.Error)
//	}
//
//	parsed, err := docgen.ParseDocxTemplate(uploaded)
//	// parsed.Variables drives the data-entry form
//
//	rendered, err := docgen.RenderTemplate(uploaded, docgen.TemplateData{
//	    "tenant_name":  "Jane Doe",
//	    "monthly_rent": 1250.50,
//	})
//
//	combined, err := docgen.MergeDocuments([][]byte{lease, petAddendum})
//
// Template syntax: {{name}} substitutes a value, {{#name}}...{{/name}}
// keeps or removes a block by truthiness, {{@name}} inserts raw markup.
// Names may use dot-notation to address nested data.
package docgen

import "fmt"

// ParsedTemplate holds the extracted textual content of a package's main
// document part and the sorted set of unique placeholder names found in it.
// It is derived data, recomputed from the package on every extraction.
type ParsedTemplate struct {
	RawText   string   `json:"rawText"`
	Variables []string `json:"variables"`
}

// ParseDocxTemplate extracts the template placeholders present in a
// package's main document part.
func ParseDocxTemplate(buf []byte) (*ParsedTemplate, error) {
	pkg, err := OpenPackage(buf)
	if err != nil {
		return nil, err
	}

	markup, err := pkg.Part(MainDocumentPart)
	if err != nil {
		return nil, err
	}

	text, err := extractDocumentText(markup)
	if err != nil {
		return nil, NewMalformedPackageError("main document markup is corrupt", err)
	}

	return &ParsedTemplate{
		RawText:   text,
		Variables: ExtractVariables(text),
	}, nil
}

// Engine bundles the engine surface with a configuration, for hosts that
// prefer an instance over the package-level functions. All operations are
// pure transforms; the Engine itself holds no per-call state.
type Engine struct {
	config *Config
}

// New creates an engine with the global configuration.
func New() *Engine {
	return &Engine{config: GetGlobalConfig()}
}

// NewWithConfig creates an engine with a custom configuration.
func NewWithConfig(config *Config) *Engine {
	return &Engine{config: config}
}

// Config returns the engine's configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// ValidateTemplateFormat checks a template buffer for structural validity.
func (e *Engine) ValidateTemplateFormat(buf []byte) ValidationResult {
	return ValidateTemplateFormat(buf)
}

// ParseTemplate extracts placeholders from a template buffer.
func (e *Engine) ParseTemplate(buf []byte) (*ParsedTemplate, error) {
	return ParseDocxTemplate(buf)
}

// Render substitutes data into a template buffer.
func (e *Engine) Render(buf []byte, data TemplateData) ([]byte, error) {
	return RenderTemplate(buf, data)
}

// Preview substitutes data into plain template text.
func (e *Engine) Preview(text string, data TemplateData) string {
	return PreviewTemplateContent(text, data)
}

// Merge combines rendered template buffers into one document.
func (e *Engine) Merge(buffers [][]byte) ([]byte, error) {
	if limit := e.config.MaxMergeDocuments; limit > 0 && len(buffers) > limit {
		return nil, fmt.Errorf("merge input of %d documents exceeds configured limit of %d", len(buffers), limit)
	}
	return MergeDocuments(buffers)
}

// AddPageBreak appends a trailing page break to a document buffer.
func (e *Engine) AddPageBreak(buf []byte) ([]byte, error) {
	return AddPageBreak(buf)
}

// Schema returns the grouped variable catalog.
func (e *Engine) Schema() VariableSchema {
	return BuildVariableSchema()
}

// SampleData returns example values for every catalog variable.
func (e *Engine) SampleData() TemplateData {
	return GetSampleData()
}

// ValidateVariables checks a variable list against the catalog.
func (e *Engine) ValidateVariables(names []string) VariableValidationResult {
	return ValidateVariables(names)
}
