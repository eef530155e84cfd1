package docgen

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// TemplateData is the flat key/value data object supplied by the caller.
// Values may be strings, numbers, booleans, nil, or nested maps addressed
// through dot-notation keys in the template.
type TemplateData map[string]interface{}

// maxConditionalPasses bounds the conditional-resolution loop. Each pass
// resolves at least one block, so the bound only guards degenerate input.
const maxConditionalPasses = 1000

// lookupValue resolves a possibly dot-notated path against the data object,
// walking nested maps level by level. A nil or non-object value before the
// path is exhausted yields "no value" rather than an error.
func lookupValue(data TemplateData, path string) (interface{}, bool) {
	if data == nil {
		return nil, false
	}

	segments := strings.Split(path, ".")
	var current interface{} = map[string]interface{}(data)

	for _, segment := range segments {
		switch m := current.(type) {
		case map[string]interface{}:
			v, ok := m[segment]
			if !ok {
				return nil, false
			}
			current = v
		case TemplateData:
			v, ok := m[segment]
			if !ok {
				return nil, false
			}
			current = v
		case map[string]string:
			v, ok := m[segment]
			if !ok {
				return nil, false
			}
			current = v
		default:
			return nil, false
		}
	}

	return current, true
}

// isTruthy reports whether a value keeps a conditional block's content.
func isTruthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	case []interface{}:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	default:
		return true
	}
}

// resolveConditionals evaluates {{#name}}...{{/name}} blocks by truthiness
// of the named key. A truthy value keeps the inner content with its marker
// pair stripped; a falsy or absent value removes the entire block. Unmatched
// markers are left in place for the substitution pass to surface.
func resolveConditionals(text string, data TemplateData) string {
	for pass := 0; pass < maxConditionalPasses; pass++ {
		opener, closer, found := findConditionalPair(text)
		if !found {
			break
		}

		value, _ := lookupValue(data, opener.Name)
		if isTruthy(value) {
			text = text[:opener.Start] + text[opener.End:closer.Start] + text[closer.End:]
		} else {
			text = text[:opener.Start] + text[closer.End:]
		}
	}
	return text
}

// findConditionalPair locates the first conditional opener that has a
// matching closer, honoring nesting of blocks with the same name.
func findConditionalPair(text string) (opener, closer Placeholder, found bool) {
	placeholders := scanPlaceholders(text)

	for i, ph := range placeholders {
		if ph.Kind != PlaceholderConditionalOpen {
			continue
		}

		depth := 0
		for _, candidate := range placeholders[i+1:] {
			if candidate.Name != ph.Name {
				continue
			}
			switch candidate.Kind {
			case PlaceholderConditionalOpen:
				depth++
			case PlaceholderConditionalClose:
				if depth == 0 {
					return ph, candidate, true
				}
				depth--
			}
		}
	}

	return Placeholder{}, Placeholder{}, false
}

// substituteTokens replaces substitution and raw-insertion tokens in order.
// A variable absent from the data becomes the bracketed literal [name] so a
// partially-completed document still renders as a reviewable draft. Absent
// raw tokens resolve to an empty insertion: a bracketed string there would
// corrupt the surrounding markup. Leftover conditional markers pass through
// untouched.
func substituteTokens(text string, data TemplateData, escape bool) string {
	placeholders := scanPlaceholders(text)
	if len(placeholders) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0

	for _, ph := range placeholders {
		b.WriteString(text[last:ph.Start])
		last = ph.End

		switch ph.Kind {
		case PlaceholderVariable:
			value, ok := lookupValue(data, ph.Name)
			if !ok || value == nil {
				b.WriteString("[" + ph.Name + "]")
				break
			}
			s := FormatVariableValue(value, ph.Name)
			if escape {
				s = escapeXMLText(s)
			}
			b.WriteString(s)
		case PlaceholderRaw:
			value, ok := lookupValue(data, ph.Name)
			if !ok || value == nil {
				break
			}
			b.WriteString(fmt.Sprintf("%v", value))
		default:
			b.WriteString(ph.Raw)
		}
	}

	b.WriteString(text[last:])
	return b.String()
}

// PreviewTemplateContent substitutes data into plain template text using
// simple string replacement, without touching any binary package. The
// missing-value policy mirrors full rendering.
func PreviewTemplateContent(text string, data TemplateData) string {
	resolved := resolveConditionals(text, data)
	return substituteTokens(resolved, data, false)
}

// RenderTemplate substitutes a data object into a template package and
// returns the rendered package. Substituted values are escaped for markup;
// raw-insertion tokens are inserted verbatim. Failures to produce a
// well-formed document surface as a RenderError carrying the underlying
// message.
func RenderTemplate(buf []byte, data TemplateData) ([]byte, error) {
	pkg, err := OpenPackage(buf)
	if err != nil {
		return nil, err
	}

	markup, err := pkg.MainDocument()
	if err != nil {
		return nil, err
	}

	rendered := resolveConditionals(markup, data)
	rendered = substituteTokens(rendered, data, true)

	// The conditional surgery and raw insertions operate on the markup as
	// text; verify the result still forms a working document model.
	if _, err := extractDocumentText([]byte(rendered)); err != nil {
		return nil, NewRenderError("rendered markup is not well-formed", err)
	}

	pkg.SetPart(MainDocumentPart, []byte(rendered))

	out, err := pkg.Serialize()
	if err != nil {
		return nil, NewRenderError("failed to serialize rendered package", err)
	}

	GetLogger().Debug("rendered template",
		zap.Int("input_bytes", len(buf)),
		zap.Int("output_bytes", len(out)))

	return out, nil
}
