package docgen

import (
	"fmt"

	"go.uber.org/zap"
)

// WarningNoVariablesFound is reported when a template contains zero
// placeholders. Such a template is syntactically valid but almost certainly
// a caller mistake.
const WarningNoVariablesFound = "no template variables found in document"

// ValidationResult reports the outcome of a template format check.
// Error is set only when Valid is false. Warnings are non-fatal structural
// observations, in the order they were detected.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func invalidResult(err error) ValidationResult {
	return ValidationResult{Valid: false, Error: err.Error()}
}

// ValidateTemplateFormat checks a buffer for required package parts,
// attempts extraction, and reports structural warnings. The input buffer is
// never mutated.
func ValidateTemplateFormat(buf []byte) ValidationResult {
	pkg, err := OpenPackage(buf)
	if err != nil {
		return invalidResult(err)
	}

	markup, err := pkg.Part(MainDocumentPart)
	if err != nil {
		return invalidResult(err)
	}

	text, err := extractDocumentText(markup)
	if err != nil {
		return invalidResult(NewMalformedPackageError("main document markup is corrupt", err))
	}

	result := ValidationResult{Valid: true}

	variables := ExtractVariables(text)
	if len(variables) == 0 {
		result.Warnings = append(result.Warnings, WarningNoVariablesFound)
	}

	openers, closers := countConditionalMarkers(text)
	if openers != closers {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"unbalanced conditional markers: %d opening, %d closing", openers, closers))
	}

	GetLogger().Debug("validated template format",
		zap.Int("variables", len(variables)),
		zap.Int("warnings", len(result.Warnings)))

	return result
}
