package classify

// Result is the full set of routing signals for one query. It is
// derived fresh per input and never stored.
type Result struct {
	IsCode             bool
	IsEducational      bool
	IsDocument         bool
	IsFollowUp         bool
	DocumentType       DocumentType
	Language           Language
	NeedsDeepReasoning bool
}

func Classify(query string) Result {
	return Result{
		IsCode:             IsCodeRequest(query),
		IsEducational:      IsEducationalRequest(query),
		IsDocument:         IsDocumentRequest(query),
		IsFollowUp:         IsFollowUp(query),
		DocumentType:       DetectDocumentType(query),
		Language:           DetectLanguage(query),
		NeedsDeepReasoning: NeedsDeepReasoning(query),
	}
}
