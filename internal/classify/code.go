// Package classify contains the keyword and regex matchers that route a
// raw user query to the code, document or general answer path. Every
// matcher is pure, case-insensitive and total: unmatched input always
// falls through to a default, never to an error.
package classify

import "strings"

// Phrases that clearly indicate the user wants an implementation.
var explicitCodePhrases = []string{
	"write code", "write a function", "write a program", "write a script",
	"show me code", "give me code", "create code", "generate code",
	"implement", "code for", "code to", "function to", "script to",
	"how to code", "how to implement", "how to program",
	"code example", "coding example", "example code",
	"create a function", "create a method", "create a class",
	"build a", "develop a", "program that", "script that",
	"show implementation", "write implementation",
}

var implementationPhrases = []string{
	"api endpoint", "database connection", "sql query",
	"algorithm implementation", "data structure implementation",
	"component in react", "function in python", "method in java",
	"class in", "module in", "package in",
}

// Conceptual questions mentioning programming are not code requests.
// The exclusion check runs before every positive check, so a query
// containing both an explicit code phrase and an exclusion phrase is
// classified as NOT a code request. That priority is a tested contract.
var educationalExcludes = []string{
	"what is", "what are", "explain", "describe", "tell me about",
	"benefits of", "advantages of", "disadvantages of", "pros and cons",
	"how does", "why does", "when to use", "difference between",
	"list of", "give me questions", "what questions", "quiz about",
	"best practices", "principles of", "concepts of",
}

var implementationVerbs = []string{
	"write", "create", "build", "implement", "develop", "code", "program",
}

var implementationLanguages = []string{
	"python", "javascript", "java", "c++", "rust", "go", "php", "ruby",
	"swift", "kotlin", "move", "solidity",
}

func IsCodeRequest(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))

	for _, phrase := range educationalExcludes {
		if strings.Contains(q, phrase) {
			return false
		}
	}

	for _, phrase := range explicitCodePhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}

	for _, phrase := range implementationPhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}

	for _, lang := range implementationLanguages {
		for _, verb := range implementationVerbs {
			if strings.Contains(q, verb+" in "+lang) || strings.Contains(q, verb+" a "+lang) {
				return true
			}
		}
	}

	return false
}

var educationalIndicators = []string{
	"explain", "what is", "what are", "describe", "tell me about",
	"how does", "why does", "benefits", "advantages", "disadvantages",
	"difference between", "compare", "pros and cons",
	"give me questions", "list questions", "quiz", "test questions",
	"best practices", "principles", "concepts", "theory",
	"overview of", "introduction to", "basics of",
	"give me", "list", "provide", "suggest", "recommend",
}

// IsEducationalRequest reports whether the user is asking for
// conceptual information rather than an implementation. Not mutually
// exclusive with IsCodeRequest; the orchestrator gives the code check
// priority when routing.
func IsEducationalRequest(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, indicator := range educationalIndicators {
		if strings.Contains(q, indicator) {
			return true
		}
	}
	return false
}

var followUpKeywords = []string{
	"previous", "context", "conversation", "earlier", "before",
	"you said", "as discussed", "fix", "modify", "update", "improve",
	"continuing", "following up", "edit", "revise", "the document",
}

// IsFollowUp reports whether the query refers back to earlier turns of
// the conversation, in which case the composer adds context-awareness
// instructions and the recent transcript is attached.
func IsFollowUp(query string) bool {
	q := strings.ToLower(query)
	for _, kw := range followUpKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
