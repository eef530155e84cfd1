package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEngineSurface(t *testing.T) {
	engine := New()

	t.Run("validate", func(t *testing.T) {
		result := engine.ValidateTemplateFormat(createTestDOCX("Hi {{tenant_name}}", nil))
		assert.True(t, result.Valid)
	})

	t.Run("parse and render", func(t *testing.T) {
		buf := createTestDOCX("Hi {{tenant_name}}", nil)

		parsed, err := engine.ParseTemplate(buf)
		require.NoError(t, err)
		assert.Equal(t, []string{"tenant_name"}, parsed.Variables)

		out, err := engine.Render(buf, TemplateData{"tenant_name": "Jane"})
		require.NoError(t, err)
		assert.Equal(t, "Hi Jane\n", documentText(t, out))
	})

	t.Run("preview", func(t *testing.T) {
		assert.Equal(t, "Hi Jane", engine.Preview("Hi {{name}}", TemplateData{"name": "Jane"}))
	})

	t.Run("schema and sample agree with the catalog", func(t *testing.T) {
		schema := engine.Schema()
		assert.Len(t, schema.Variables, len(catalog))

		sample := engine.SampleData()
		result := engine.ValidateVariables(AllVariableNames())
		assert.True(t, result.Valid)
		for _, name := range RequiredVariableNames() {
			assert.Contains(t, sample, name, "required variable %q lacks a sample value", name)
		}
	})

	t.Run("merge honors configured document cap", func(t *testing.T) {
		capped := NewWithConfig(&Config{LogLevel: "info", MaxMergeDocuments: 1})

		_, err := capped.Merge([][]byte{
			createTestDOCX("One", nil),
			createTestDOCX("Two", nil),
		})
		assert.Error(t, err)
	})
}

func TestConfig(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	t.Run("invalid log level rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LogLevel = "loud"
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative merge cap rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxMergeDocuments = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv("DOCGEN_LOG_LEVEL", "debug")
		cfg := ConfigFromEnvironment()
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestErrorHelpers(t *testing.T) {
	malformed := NewMalformedPackageError("missing part", nil)
	render := NewRenderError("bad markup", malformed)
	structural := NewDocumentStructureError(2, "no body")

	assert.True(t, IsMalformedPackage(malformed))
	assert.True(t, IsRenderError(render))
	assert.True(t, IsDocumentStructureError(structural))

	// RenderError wraps its cause for errors.As/Is chains.
	assert.True(t, IsMalformedPackage(render))

	assert.Contains(t, structural.Error(), "index 2")
	assert.Contains(t, render.Error(), "bad markup")
}

func TestLogger(t *testing.T) {
	t.Run("nop logger by default", func(t *testing.T) {
		assert.NotNil(t, GetLogger())
	})

	t.Run("set and restore", func(t *testing.T) {
		original := GetLogger()
		defer SetLogger(original)

		logger, err := NewLogger("debug")
		require.NoError(t, err)
		SetLogger(logger)
		assert.Equal(t, logger, GetLogger())

		SetLogger(nil)
		assert.NotNil(t, GetLogger())
	})

	t.Run("with fields returns a derived logger", func(t *testing.T) {
		logger := NewNopLogger()
		derived := logger.With(zap.String("component", "merge"))
		assert.NotNil(t, derived)
	})
}
