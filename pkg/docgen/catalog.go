package docgen

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// VariableType identifies the semantic type of a catalog variable.
type VariableType string

const (
	TypeString   VariableType = "string"
	TypeNumber   VariableType = "number"
	TypeDate     VariableType = "date"
	TypeBoolean  VariableType = "boolean"
	TypeCurrency VariableType = "currency"
)

// VariableCategory groups catalog variables by subject area.
type VariableCategory string

const (
	CategoryTenant     VariableCategory = "tenant"
	CategoryProperty   VariableCategory = "property"
	CategoryUnit       VariableCategory = "unit"
	CategoryLease      VariableCategory = "lease"
	CategoryFinancial  VariableCategory = "financial"
	CategoryCompliance VariableCategory = "compliance"
	CategoryPet        VariableCategory = "pet"
	CategoryParking    VariableCategory = "parking"
	CategoryUtilities  VariableCategory = "utilities"
)

// VariableDefinition describes one known placeholder name.
type VariableDefinition struct {
	Name     string           `json:"name"`
	Category VariableCategory `json:"category"`
	Type     VariableType     `json:"type"`
	Required bool             `json:"required"`
	Example  interface{}      `json:"example,omitempty"`
}

// VariableSchema groups every catalog definition by category. Each entry
// appears exactly once in Variables and exactly once under its category.
type VariableSchema struct {
	Variables  []VariableDefinition                      `json:"variables"`
	Categories map[VariableCategory][]VariableDefinition `json:"categories"`
}

// VariableValidationResult reports catalog membership for a caller-supplied
// variable list. Unknown and missing-required findings are informational;
// they never block rendering.
type VariableValidationResult struct {
	Valid            bool     `json:"valid"`
	UnknownVariables []string `json:"unknownVariables"`
	MissingRequired  []string `json:"missingRequired"`
	Warnings         []string `json:"warnings,omitempty"`
}

// The catalog is process-wide immutable data: built once, read many times.
var catalog = []VariableDefinition{
	// Tenant
	{Name: "tenant_name", Category: CategoryTenant, Type: TypeString, Required: true, Example: "Jane Doe"},
	{Name: "tenant_email", Category: CategoryTenant, Type: TypeString, Required: true, Example: "jane.doe@example.com"},
	{Name: "tenant_phone", Category: CategoryTenant, Type: TypeString, Example: "(555) 201-7788"},
	{Name: "tenant_mailing_address", Category: CategoryTenant, Type: TypeString, Example: "12 Birch Lane, Apt 3"},
	{Name: "co_tenant_name", Category: CategoryTenant, Type: TypeString, Example: "John Doe"},

	// Property
	{Name: "property_name", Category: CategoryProperty, Type: TypeString, Required: true, Example: "Maple Court Apartments"},
	{Name: "property_address", Category: CategoryProperty, Type: TypeString, Required: true, Example: "742 Evergreen Terrace"},
	{Name: "property_city", Category: CategoryProperty, Type: TypeString, Example: "Springfield"},
	{Name: "property_state", Category: CategoryProperty, Type: TypeString, Example: "IL"},
	{Name: "property_zip", Category: CategoryProperty, Type: TypeString, Example: "62704"},
	{Name: "landlord_name", Category: CategoryProperty, Type: TypeString, Required: true, Example: "Maple Court LLC"},
	{Name: "landlord_address", Category: CategoryProperty, Type: TypeString, Example: "PO Box 410, Springfield, IL"},

	// Unit
	{Name: "unit_number", Category: CategoryUnit, Type: TypeString, Required: true, Example: "2B"},
	{Name: "unit_bedrooms", Category: CategoryUnit, Type: TypeNumber, Example: 2},
	{Name: "unit_bathrooms", Category: CategoryUnit, Type: TypeNumber, Example: 1.5},
	{Name: "unit_square_feet", Category: CategoryUnit, Type: TypeNumber, Example: 1050},
	{Name: "unit_furnished", Category: CategoryUnit, Type: TypeBoolean, Example: false},

	// Lease
	{Name: "lease_start_date", Category: CategoryLease, Type: TypeDate, Required: true, Example: "2026-09-01"},
	{Name: "lease_end_date", Category: CategoryLease, Type: TypeDate, Required: true, Example: "2027-08-31"},
	{Name: "lease_term_months", Category: CategoryLease, Type: TypeNumber, Example: 12},
	{Name: "move_in_date", Category: CategoryLease, Type: TypeDate, Example: "2026-09-01"},
	{Name: "notice_period_days", Category: CategoryLease, Type: TypeNumber, Example: 60},
	{Name: "renewal_option", Category: CategoryLease, Type: TypeBoolean, Example: true},

	// Financial
	{Name: "monthly_rent", Category: CategoryFinancial, Type: TypeCurrency, Required: true, Example: 1250.5},
	{Name: "security_deposit", Category: CategoryFinancial, Type: TypeCurrency, Required: true, Example: 1250.5},
	{Name: "late_fee", Category: CategoryFinancial, Type: TypeCurrency, Example: 75},
	{Name: "application_fee", Category: CategoryFinancial, Type: TypeCurrency, Example: 50},
	{Name: "prorated_rent", Category: CategoryFinancial, Type: TypeCurrency, Example: 625.25},
	{Name: "rent_due_day", Category: CategoryFinancial, Type: TypeNumber, Example: 1},

	// Compliance
	{Name: "lead_paint_disclosure", Category: CategoryCompliance, Type: TypeBoolean, Example: true},
	{Name: "mold_disclosure", Category: CategoryCompliance, Type: TypeBoolean, Example: false},
	{Name: "smoke_detector_count", Category: CategoryCompliance, Type: TypeNumber, Example: 3},
	{Name: "renters_insurance_required", Category: CategoryCompliance, Type: TypeBoolean, Example: true},

	// Pet
	{Name: "pets_allowed", Category: CategoryPet, Type: TypeBoolean, Example: true},
	{Name: "pet_type", Category: CategoryPet, Type: TypeString, Example: "cat"},
	{Name: "pet_deposit", Category: CategoryPet, Type: TypeCurrency, Example: 300},
	{Name: "pet_rent", Category: CategoryPet, Type: TypeCurrency, Example: 35},

	// Parking
	{Name: "parking_included", Category: CategoryParking, Type: TypeBoolean, Example: true},
	{Name: "parking_space_number", Category: CategoryParking, Type: TypeString, Example: "P-14"},
	{Name: "parking_fee", Category: CategoryParking, Type: TypeCurrency, Example: 85},

	// Utilities
	{Name: "utilities_included", Category: CategoryUtilities, Type: TypeString, Example: "water, trash"},
	{Name: "tenant_paid_utilities", Category: CategoryUtilities, Type: TypeString, Example: "electric, gas, internet"},
	{Name: "trash_service_day", Category: CategoryUtilities, Type: TypeString, Example: "Tuesday"},
}

var catalogByName = buildCatalogIndex()

func buildCatalogIndex() map[string]*VariableDefinition {
	index := make(map[string]*VariableDefinition, len(catalog))
	for i := range catalog {
		def := &catalog[i]
		if _, exists := index[def.Name]; exists {
			panic("duplicate catalog variable: " + def.Name)
		}
		index[def.Name] = def
	}
	return index
}

// AllVariableNames returns every catalog variable name, sorted ascending.
func AllVariableNames() []string {
	names := make([]string, 0, len(catalog))
	for i := range catalog {
		names = append(names, catalog[i].Name)
	}
	sort.Strings(names)
	return names
}

// RequiredVariableNames returns the names of required catalog variables,
// sorted ascending.
func RequiredVariableNames() []string {
	names := make([]string, 0)
	for i := range catalog {
		if catalog[i].Required {
			names = append(names, catalog[i].Name)
		}
	}
	sort.Strings(names)
	return names
}

// LookupVariable returns the definition for a name, if the catalog knows it.
func LookupVariable(name string) (VariableDefinition, bool) {
	def, ok := catalogByName[name]
	if !ok {
		return VariableDefinition{}, false
	}
	return *def, true
}

// BuildVariableSchema returns all definitions grouped by category. Grouping
// is stable: definitions keep catalog order within each category.
func BuildVariableSchema() VariableSchema {
	schema := VariableSchema{
		Variables:  make([]VariableDefinition, len(catalog)),
		Categories: make(map[VariableCategory][]VariableDefinition),
	}
	copy(schema.Variables, catalog)

	for _, def := range schema.Variables {
		schema.Categories[def.Category] = append(schema.Categories[def.Category], def)
	}
	return schema
}

// GetSampleData returns a data object covering every catalog definition that
// carries an example value.
func GetSampleData() TemplateData {
	data := make(TemplateData, len(catalog))
	for i := range catalog {
		if catalog[i].Example != nil {
			data[catalog[i].Name] = catalog[i].Example
		}
	}
	return data
}

// ValidateVariables checks a caller-supplied variable list against the
// catalog. Unknown names and absent required names are reported but never
// block rendering; the missing-value policy in Render degrades gracefully.
func ValidateVariables(names []string) VariableValidationResult {
	result := VariableValidationResult{
		UnknownVariables: make([]string, 0),
		MissingRequired:  make([]string, 0),
	}

	present := make(map[string]bool, len(names))
	for _, name := range names {
		if present[name] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("duplicate variable %q in input", name))
			continue
		}
		present[name] = true

		if _, ok := catalogByName[name]; !ok {
			result.UnknownVariables = append(result.UnknownVariables, name)
		}
	}
	sort.Strings(result.UnknownVariables)

	for _, required := range RequiredVariableNames() {
		if !present[required] {
			result.MissingRequired = append(result.MissingRequired, required)
		}
	}

	result.Valid = len(result.UnknownVariables) == 0 && len(result.MissingRequired) == 0
	return result
}

// FormatVariableValue renders a value according to the named variable's
// catalog type. Nil values format as the empty string. Names the catalog
// does not know are stringified unchanged.
func FormatVariableValue(value interface{}, name string) string {
	if value == nil {
		return ""
	}

	def, ok := catalogByName[name]
	if !ok {
		return fmt.Sprintf("%v", value)
	}

	switch def.Type {
	case TypeCurrency:
		f, ok := toFloat(value)
		if !ok {
			return fmt.Sprintf("%v", value)
		}
		return formatCurrency(f)
	case TypeBoolean:
		if b, ok := value.(bool); ok {
			if b {
				return "Yes"
			}
			return "No"
		}
		return fmt.Sprintf("%v", value)
	case TypeNumber:
		f, ok := toFloat(value)
		if !ok {
			return fmt.Sprintf("%v", value)
		}
		return formatNumber(f)
	case TypeDate:
		if t, ok := value.(time.Time); ok {
			return t.Format("January 2, 2006")
		}
		return fmt.Sprintf("%v", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// formatCurrency renders a two-decimal, thousands-grouped monetary string.
func formatCurrency(f float64) string {
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	s := strconv.FormatFloat(f, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	return sign + "$" + groupDigits(intPart) + "." + fracPart
}

// formatNumber renders with thousands grouping, keeping decimals only when
// the value is fractional.
func formatNumber(f float64) string {
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	if f == math.Trunc(f) {
		return sign + groupDigits(strconv.FormatFloat(f, 'f', 0, 64))
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	return sign + groupDigits(intPart) + "." + fracPart
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
