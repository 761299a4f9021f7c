package doctext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentshift/ats/internal/docgen"
)

func buildDOCX(t *testing.T, build func(*docgen.Document)) []byte {
	t.Helper()
	var doc docgen.Document
	build(&doc)
	content, err := doc.Bytes()
	require.NoError(t, err)
	return content
}

func TestExtractDOCXParagraphs(t *testing.T) {
	content := buildDOCX(t, func(doc *docgen.Document) {
		doc.AddParagraph("Andi Wijaya")
		doc.AddParagraph("Backend Developer")
		doc.AddParagraph("")
	})

	assert.Equal(t, "Andi Wijaya\nBackend Developer\n\n", ExtractDOCX(content))
}

func TestExtractDOCXTableAfterParagraphs(t *testing.T) {
	content := buildDOCX(t, func(doc *docgen.Document) {
		doc.AddParagraph("Skills")
		doc.AddTable([][]string{
			{"Python", "5 years"},
			{"Docker", "3 years"},
		})
	})

	assert.Equal(t, "Skills\nPython 5 years \nDocker 3 years \n", ExtractDOCX(content))
}

func TestExtractDOCXEscapedText(t *testing.T) {
	content := buildDOCX(t, func(doc *docgen.Document) {
		doc.AddParagraph("C++ & C# <senior>")
	})

	assert.Equal(t, "C++ & C# <senior>\n", ExtractDOCX(content))
}

func TestExtractDOCXInvalidInput(t *testing.T) {
	assert.Equal(t, "", ExtractDOCX(nil))
	assert.Equal(t, "", ExtractDOCX([]byte("not a zip archive")))
}

func TestExtractDispatch(t *testing.T) {
	content := buildDOCX(t, func(doc *docgen.Document) {
		doc.AddParagraph("hello")
	})

	assert.Equal(t, "hello\n", Extract(content, MimeDOCX))
	// Unknown content types go through the DOCX path.
	assert.Equal(t, "hello\n", Extract(content, "application/octet-stream"))
}
