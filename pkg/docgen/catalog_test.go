package docgen

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	require.GreaterOrEqual(t, len(catalog), 30, "catalog must hold at least 30 entries")

	seen := make(map[string]bool)
	categories := make(map[VariableCategory]bool)
	for _, def := range catalog {
		assert.False(t, seen[def.Name], "duplicate catalog name %q", def.Name)
		seen[def.Name] = true
		categories[def.Category] = true
	}

	for _, want := range []VariableCategory{
		CategoryTenant, CategoryProperty, CategoryUnit, CategoryLease,
		CategoryFinancial, CategoryCompliance, CategoryPet, CategoryParking,
		CategoryUtilities,
	} {
		assert.True(t, categories[want], "category %q has no entries", want)
	}
}

func TestAllVariableNames(t *testing.T) {
	names := AllVariableNames()

	assert.Len(t, names, len(catalog))
	assert.True(t, sort.StringsAreSorted(names))
}

func TestRequiredVariableNames(t *testing.T) {
	required := RequiredVariableNames()

	assert.True(t, sort.StringsAreSorted(required))
	assert.Contains(t, required, "tenant_name")
	assert.Contains(t, required, "monthly_rent")
	assert.NotContains(t, required, "pet_type")

	for _, name := range required {
		def, ok := LookupVariable(name)
		require.True(t, ok)
		assert.True(t, def.Required)
	}
}

func TestLookupVariable(t *testing.T) {
	def, ok := LookupVariable("monthly_rent")
	require.True(t, ok)
	assert.Equal(t, TypeCurrency, def.Type)
	assert.Equal(t, CategoryFinancial, def.Category)

	_, ok = LookupVariable("not_a_real_variable")
	assert.False(t, ok)
}

func TestBuildVariableSchema(t *testing.T) {
	schema := BuildVariableSchema()

	assert.Len(t, schema.Variables, len(catalog))

	// Every catalog entry appears exactly once across the category groups.
	total := 0
	grouped := make(map[string]int)
	for category, defs := range schema.Categories {
		for _, def := range defs {
			assert.Equal(t, category, def.Category)
			grouped[def.Name]++
			total++
		}
	}
	assert.Equal(t, len(catalog), total)
	for name, count := range grouped {
		assert.Equal(t, 1, count, "variable %q grouped %d times", name, count)
	}
}

func TestBuildVariableSchemaStableOrder(t *testing.T) {
	first := BuildVariableSchema()
	second := BuildVariableSchema()

	assert.Equal(t, first.Variables, second.Variables)
	for category := range first.Categories {
		assert.Equal(t, first.Categories[category], second.Categories[category])
	}
}

func TestGetSampleData(t *testing.T) {
	data := GetSampleData()

	for _, def := range catalog {
		if def.Example == nil {
			continue
		}
		assert.Contains(t, data, def.Name)
		assert.Equal(t, def.Example, data[def.Name])
	}
}

func TestValidateVariables(t *testing.T) {
	t.Run("unknown variable reported", func(t *testing.T) {
		result := ValidateVariables([]string{"unknown_x"})

		assert.False(t, result.Valid)
		assert.Equal(t, []string{"unknown_x"}, result.UnknownVariables)
		assert.Equal(t, RequiredVariableNames(), result.MissingRequired)
	})

	t.Run("complete required set passes", func(t *testing.T) {
		result := ValidateVariables(RequiredVariableNames())

		assert.True(t, result.Valid)
		assert.Empty(t, result.UnknownVariables)
		assert.Empty(t, result.MissingRequired)
	})

	t.Run("duplicates warn", func(t *testing.T) {
		names := append(RequiredVariableNames(), "tenant_name")
		result := ValidateVariables(names)

		assert.True(t, result.Valid)
		assert.NotEmpty(t, result.Warnings)
	})
}

func TestFormatVariableValue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		vname string
		want  string
	}{
		{"currency two decimals grouped", 1250.5, "monthly_rent", "$1,250.50"},
		{"currency integer value", 75, "late_fee", "$75.00"},
		{"currency large value", 1234567.891, "security_deposit", "$1,234,567.89"},
		{"currency negative", -50.0, "prorated_rent", "-$50.00"},
		{"boolean true", true, "pets_allowed", "Yes"},
		{"boolean false", false, "pets_allowed", "No"},
		{"number whole value ungrouped decimals", 1050, "unit_square_feet", "1,050"},
		{"number fractional keeps decimals", 1.5, "unit_bathrooms", "1.5"},
		{"nil renders empty", nil, "tenant_name", ""},
		{"string passthrough", "2B", "unit_number", "2B"},
		{"unknown name stringified unchanged", 1250.5, "not_in_catalog", "1250.5"},
		{"unknown name bool unchanged", true, "not_in_catalog", "true"},
		{"date string passthrough", "2026-09-01", "lease_start_date", "2026-09-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatVariableValue(tt.value, tt.vname))
		})
	}
}

func TestFormatVariableValueTime(t *testing.T) {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "September 1, 2026", FormatVariableValue(start, "lease_start_date"))
}
