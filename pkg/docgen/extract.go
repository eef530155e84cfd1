package docgen

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// PlaceholderKind identifies the shape of a template placeholder.
type PlaceholderKind int

const (
	// PlaceholderVariable is a simple substitution token: {{name}}
	PlaceholderVariable PlaceholderKind = iota
	// PlaceholderConditionalOpen starts a conditional block: {{#name}}
	PlaceholderConditionalOpen
	// PlaceholderConditionalClose ends a conditional block: {{/name}}
	PlaceholderConditionalClose
	// PlaceholderRaw inserts a raw markup fragment unescaped: {{@name}}
	PlaceholderRaw
)

// Placeholder is one parsed template token. Start and End are byte offsets
// of the raw token within the scanned text.
type Placeholder struct {
	Kind  PlaceholderKind
	Name  string
	Raw   string
	Start int
	End   int
}

// placeholderRegex matches template tokens. The scanner is text-pattern
// based, not markup aware: placeholders are designed to survive plain-text
// extraction from the container format.
var placeholderRegex = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

// parsePlaceholder classifies the content between {{ and }}.
func parsePlaceholder(raw, content string) (Placeholder, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Placeholder{}, false
	}

	switch content[0] {
	case '#':
		name := strings.TrimSpace(content[1:])
		if name == "" {
			return Placeholder{}, false
		}
		return Placeholder{Kind: PlaceholderConditionalOpen, Name: name, Raw: raw}, true
	case '/':
		name := strings.TrimSpace(content[1:])
		if name == "" {
			return Placeholder{}, false
		}
		return Placeholder{Kind: PlaceholderConditionalClose, Name: name, Raw: raw}, true
	case '@':
		name := strings.TrimSpace(content[1:])
		if name == "" {
			return Placeholder{}, false
		}
		return Placeholder{Kind: PlaceholderRaw, Name: name, Raw: raw}, true
	default:
		return Placeholder{Kind: PlaceholderVariable, Name: content, Raw: raw}, true
	}
}

// scanPlaceholders returns every placeholder in the text, in appearance order.
func scanPlaceholders(text string) []Placeholder {
	matches := placeholderRegex.FindAllStringSubmatchIndex(text, -1)
	placeholders := make([]Placeholder, 0, len(matches))

	for _, match := range matches {
		raw := text[match[0]:match[1]]
		content := text[match[2]:match[3]]
		if ph, ok := parsePlaceholder(raw, content); ok {
			ph.Start = match[0]
			ph.End = match[1]
			placeholders = append(placeholders, ph)
		}
	}
	return placeholders
}

// ExtractVariables returns the sorted set of unique placeholder names found
// in the text. Simple substitution tokens, conditional-block openers, and raw
// insertion tokens contribute their names; close markers are not collected.
// Names may contain dot-notation paths and are treated as opaque identifiers.
func ExtractVariables(text string) []string {
	seen := make(map[string]bool)

	for _, ph := range scanPlaceholders(text) {
		switch ph.Kind {
		case PlaceholderVariable, PlaceholderConditionalOpen, PlaceholderRaw:
			seen[ph.Name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	GetLogger().Debug("extracted template variables", zap.Int("count", len(names)))

	return names
}

// countConditionalMarkers counts conditional-block openers and closers in
// the text. A mismatch indicates a broken conditional.
func countConditionalMarkers(text string) (openers, closers int) {
	for _, ph := range scanPlaceholders(text) {
		switch ph.Kind {
		case PlaceholderConditionalOpen:
			openers++
		case PlaceholderConditionalClose:
			closers++
		}
	}
	return openers, closers
}
