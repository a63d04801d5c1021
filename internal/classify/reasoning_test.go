package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// One reasoning keyword on a short, single question stays below the
// threshold; a second qualifying signal flips the gate.
func TestNeedsDeepReasoningThreshold(t *testing.T) {
	t.Parallel()

	assert.False(t, NeedsDeepReasoning("why rotate crops?"))
	assert.True(t, NeedsDeepReasoning("compare and evaluate drip against flood irrigation"))
	assert.True(t, NeedsDeepReasoning("why does yield drop because of soil compaction"))
}

func TestNeedsDeepReasoningStructuralSignals(t *testing.T) {
	t.Parallel()

	// One keyword plus a query longer than 15 words.
	long := "why would a smallholder in a semi arid region prefer millet over maize during a late monsoon year overall"
	assert.True(t, NeedsDeepReasoning(long))

	assert.False(t, NeedsDeepReasoning("price of wheat today"))
}

func TestNeedsDeepTechnicalReasoning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  bool
	}{
		// complexity keyword (1) + explanation want (2) = 3
		{"explain an efficient merge sort", true},
		// technical challenge (2) + complexity keyword (1) = 3
		{"secure caching layer for sessions", true},
		// single complexity keyword = 1
		{"an elegant fizzbuzz", false},
		{"print hello world", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NeedsDeepTechnicalReasoning(tt.query), "query: %q", tt.query)
	}
}

func TestNeedsDeepFormatting(t *testing.T) {
	t.Parallel()

	assert.True(t, NeedsDeepFormatting("a formal and professional cover letter"))
	assert.False(t, NeedsDeepFormatting("a professional cover letter"))
	assert.False(t, NeedsDeepFormatting("quick notes from the field visit"))
}

func TestDetectDocumentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DocTypeCV, DetectDocumentType("polish my resume"))
	assert.Equal(t, DocTypeCoverLetter, DetectDocumentType("draft a cover letter for an agronomy role"))
	assert.Equal(t, DocTypeGeneric, DetectDocumentType("something official please"))

	// "cv" precedes "report" in the table; a query matching both
	// resolves to the earlier entry.
	assert.Equal(t, DocTypeCV, DetectDocumentType("resume of the quarterly report"))
}

func TestIsDocumentRequest(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDocumentRequest("help me write a business plan"))
	assert.True(t, IsDocumentRequest("need a template for meeting minutes"))

	// Bare action verbs and format words route to the document path
	// even without a named document type.
	assert.True(t, IsDocumentRequest("write a poem about rain"))
	assert.True(t, IsDocumentRequest("create a packing list"))
	assert.True(t, IsDocumentRequest("make a short story"))
	assert.True(t, IsDocumentRequest("format this text for me"))

	assert.False(t, IsDocumentRequest("hello"))
	assert.False(t, IsDocumentRequest("when should i water tomatoes"))
}

func TestClassifyAggregates(t *testing.T) {
	t.Parallel()

	res := Classify("write a bubble sort function in Python")
	assert.True(t, res.IsCode)
	assert.Equal(t, LangPython, res.Language)
	// "write a" also matches the document keywords; the orchestrator's
	// code-before-document priority decides the route.
	assert.True(t, res.IsDocument)
}
