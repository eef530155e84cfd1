package docgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergedMarkup(t *testing.T, buf []byte) string {
	t.Helper()

	pkg, err := OpenPackage(buf)
	require.NoError(t, err)

	markup, err := pkg.MainDocument()
	require.NoError(t, err)
	return markup
}

func TestMergeDocuments(t *testing.T) {
	t.Run("empty input is a usage error", func(t *testing.T) {
		_, err := MergeDocuments(nil)
		assert.ErrorIs(t, err, ErrNoDocumentsToMerge)

		_, err = MergeDocuments([][]byte{})
		assert.ErrorIs(t, err, ErrNoDocumentsToMerge)
	})

	t.Run("single document returned unchanged", func(t *testing.T) {
		buf := createTestDOCX("Only document", nil)

		out, err := MergeDocuments([][]byte{buf})
		require.NoError(t, err)
		assert.Equal(t, buf, out)
	})

	t.Run("two documents joined with one page break", func(t *testing.T) {
		first := createTestDOCX("Lease agreement", nil)
		second := createTestDOCX("Pet addendum", nil)

		out, err := MergeDocuments([][]byte{first, second})
		require.NoError(t, err)

		markup := mergedMarkup(t, out)
		assert.Equal(t, 1, strings.Count(markup, pageBreakXML))

		firstIdx := strings.Index(markup, "Lease agreement")
		breakIdx := strings.Index(markup, pageBreakXML)
		secondIdx := strings.Index(markup, "Pet addendum")
		require.NotEqual(t, -1, firstIdx)
		require.NotEqual(t, -1, secondIdx)
		assert.Less(t, firstIdx, breakIdx)
		assert.Less(t, breakIdx, secondIdx)
	})

	t.Run("three documents get two page breaks in input order", func(t *testing.T) {
		docs := [][]byte{
			createTestDOCX("First", nil),
			createTestDOCX("Second", nil),
			createTestDOCX("Third", nil),
		}

		out, err := MergeDocuments(docs)
		require.NoError(t, err)

		markup := mergedMarkup(t, out)
		assert.Equal(t, 2, strings.Count(markup, pageBreakXML))
		assert.Less(t, strings.Index(markup, "First"), strings.Index(markup, "Second"))
		assert.Less(t, strings.Index(markup, "Second"), strings.Index(markup, "Third"))
	})

	t.Run("merged output is a valid package", func(t *testing.T) {
		out, err := MergeDocuments([][]byte{
			createTestDOCX("One {{a}}", nil),
			createTestDOCX("Two {{b}}", nil),
		})
		require.NoError(t, err)

		result := ValidateTemplateFormat(out)
		assert.True(t, result.Valid)
	})

	t.Run("media copied from subsequent documents", func(t *testing.T) {
		first := createTestDOCX("Base", nil)
		second := createTestDOCX("With image", map[string][]byte{
			"word/media/image1.png": {0x89, 0x50, 0x4e, 0x47},
		})

		out, err := MergeDocuments([][]byte{first, second})
		require.NoError(t, err)

		pkg, err := OpenPackage(out)
		require.NoError(t, err)
		content, err := pkg.Part("word/media/image1.png")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, content)
	})

	t.Run("colliding media names keep the base version", func(t *testing.T) {
		first := createTestDOCX("Base", map[string][]byte{
			"word/media/logo.png": []byte("base-logo"),
		})
		second := createTestDOCX("Other", map[string][]byte{
			"word/media/logo.png": []byte("other-logo"),
		})

		out, err := MergeDocuments([][]byte{first, second})
		require.NoError(t, err)

		pkg, err := OpenPackage(out)
		require.NoError(t, err)
		content, err := pkg.Part("word/media/logo.png")
		require.NoError(t, err)
		assert.Equal(t, []byte("base-logo"), content)
	})

	t.Run("document without a body names its index", func(t *testing.T) {
		first := createTestDOCX("Base", nil)
		second := createTestDOCX("Broken", map[string][]byte{
			MainDocumentPart: []byte(`<?xml version="1.0"?><w:document xmlns:w="` + wordMLNamespace + `"></w:document>`),
		})

		_, err := MergeDocuments([][]byte{first, second})
		require.Error(t, err)

		var structural *DocumentStructureError
		require.ErrorAs(t, err, &structural)
		assert.Equal(t, 1, structural.Index)
	})

	t.Run("unopenable later document fails", func(t *testing.T) {
		first := createTestDOCX("Base", nil)

		_, err := MergeDocuments([][]byte{first, []byte("garbage")})
		require.Error(t, err)
		assert.True(t, IsMalformedPackage(err))
	})
}

func TestAddPageBreak(t *testing.T) {
	t.Run("appends one page break to the body", func(t *testing.T) {
		buf := createTestDOCX("Lease agreement", nil)

		out, err := AddPageBreak(buf)
		require.NoError(t, err)

		markup := mergedMarkup(t, out)
		assert.Equal(t, 1, strings.Count(markup, pageBreakXML))
		assert.Less(t, strings.Index(markup, "Lease agreement"), strings.Index(markup, pageBreakXML))
	})

	t.Run("repeated calls accumulate breaks", func(t *testing.T) {
		buf := createTestDOCX("Doc", nil)

		once, err := AddPageBreak(buf)
		require.NoError(t, err)
		twice, err := AddPageBreak(once)
		require.NoError(t, err)

		assert.Equal(t, 2, strings.Count(mergedMarkup(t, twice), pageBreakXML))
	})

	t.Run("invalid buffer fails", func(t *testing.T) {
		_, err := AddPageBreak([]byte("not a docx"))
		require.Error(t, err)
		assert.True(t, IsMalformedPackage(err))
	})
}
