package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCodeRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  bool
	}{
		{"explain how bubble sort works", false},
		{"write a bubble sort function in Python", true},
		{"give me 10 questions about networking", false},
		{"implement a login system", true},
		{"how to code a web scraper", true},
		{"write an api endpoint for user registration", true},
		{"sql query to select overdue invoices", true},
		{"good morning", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCodeRequest(tt.query), "query: %q", tt.query)
	}
}

// A query carrying both an explicit code phrase and an educational
// exclusion is NOT a code request: the exclusion check runs first.
func TestIsCodeRequestExclusionBeatsExplicitPhrase(t *testing.T) {
	t.Parallel()

	assert.False(t, IsCodeRequest("explain how to implement bubble sort"))
	assert.False(t, IsCodeRequest("what is the best way to write a function in Go"))
}

func TestIsEducationalRequest(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEducationalRequest("what are the benefits of Python"))
	assert.True(t, IsEducationalRequest("explain crop rotation"))
	assert.False(t, IsEducationalRequest("hello there"))
}

func TestCodeAndEducationalNotMutuallyExclusive(t *testing.T) {
	t.Parallel()

	// "list" is an educational indicator, "implement" a code phrase;
	// both signals can be computed independently.
	query := "implement a linked list"
	assert.True(t, IsCodeRequest(query))
	assert.True(t, IsEducationalRequest(query))
}

func TestIsFollowUp(t *testing.T) {
	t.Parallel()

	assert.True(t, IsFollowUp("fix the code you showed earlier"))
	assert.True(t, IsFollowUp("revise the document please"))
	assert.False(t, IsFollowUp("write a haiku about rain"))
}
