package classify

import "strings"

type DocumentType string

const (
	DocTypeCV                = DocumentType("cv")
	DocTypeCoverLetter       = DocumentType("cover_letter")
	DocTypeProposal          = DocumentType("proposal")
	DocTypeBusinessPlan      = DocumentType("business_plan")
	DocTypeReport            = DocumentType("report")
	DocTypeSummary           = DocumentType("summary")
	DocTypeNotes             = DocumentType("notes")
	DocTypePresentation      = DocumentType("presentation")
	DocTypeWhitepaper        = DocumentType("whitepaper")
	DocTypePressRelease      = DocumentType("press_release")
	DocTypeNewsletter        = DocumentType("newsletter")
	DocTypeProjectPlan       = DocumentType("project_plan")
	DocTypeMarketingPlan     = DocumentType("marketing_plan")
	DocTypeResearchPaper     = DocumentType("research_paper")
	DocTypeEssay             = DocumentType("essay")
	DocTypeSpeech            = DocumentType("speech")
	DocTypePersonalStatement = DocumentType("personal_statement")
	DocTypeRecommendation    = DocumentType("recommendation")
	DocTypeGeneric           = DocumentType("generic_document")
)

// Name returns the human-readable form used inside prompts,
// e.g. "cover letter" for cover_letter.
func (d DocumentType) Name() string {
	return strings.ReplaceAll(string(d), "_", " ")
}

// documentKeywords deliberately includes broad action verbs and format
// words ("write a", "make a", "format"); the caller checks code
// requests first, so those keep their route.
var documentKeywords = []string{
	// document types
	"cv", "resume", "curriculum vitae", "cover letter", "proposal", "business plan",
	"report", "summary", "memo", "brief", "minutes", "notes", "presentation",
	"whitepaper", "case study", "press release", "newsletter", "executive summary",
	"project plan", "marketing plan", "swot analysis", "financial report",
	"thesis", "dissertation", "research paper", "essay", "assignment", "speech",
	"statement of purpose", "personal statement", "recommendation letter",

	// action verbs
	"create document", "write document", "generate document", "draft a", "write a",
	"create a", "make a", "compose a", "prepare a", "develop a", "produce a",
	"help me write", "help me create", "need a template for", "format for",

	// format indicators
	"format", "template", "layout", "structure", "professional", "formal",
	"official", "document", "paperwork", "documentation", "letterhead",
}

func IsDocumentRequest(query string) bool {
	q := strings.ToLower(query)
	for _, kw := range documentKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// documentTypeTable is evaluated in order; the first type whose keyword
// list matches wins. Slice order is the tie-break for text matching
// several types, so the order itself is part of the contract.
var documentTypeTable = []struct {
	docType  DocumentType
	keywords []string
}{
	{DocTypeCV, []string{"cv", "resume", "curriculum vitae"}},
	{DocTypeCoverLetter, []string{"cover letter", "job application letter", "application letter"}},
	{DocTypeProposal, []string{"proposal", "business proposal", "project proposal"}},
	{DocTypeBusinessPlan, []string{"business plan", "startup plan", "company plan"}},
	{DocTypeReport, []string{"report", "business report", "technical report", "analysis report"}},
	{DocTypeSummary, []string{"summary", "executive summary", "brief summary"}},
	{DocTypeNotes, []string{"notes", "meeting notes", "lecture notes", "study notes"}},
	{DocTypePresentation, []string{"presentation", "slides", "slide deck", "powerpoint"}},
	{DocTypeWhitepaper, []string{"whitepaper", "white paper", "technical paper"}},
	{DocTypePressRelease, []string{"press release", "media release", "news release"}},
	{DocTypeNewsletter, []string{"newsletter", "company newsletter", "email newsletter"}},
	{DocTypeProjectPlan, []string{"project plan", "project schedule", "project timeline"}},
	{DocTypeMarketingPlan, []string{"marketing plan", "marketing strategy", "go to market"}},
	{DocTypeResearchPaper, []string{"research paper", "academic paper", "scientific paper"}},
	{DocTypeEssay, []string{"essay", "academic essay", "argumentative essay"}},
	{DocTypeSpeech, []string{"speech", "public speech", "presentation speech"}},
	{DocTypePersonalStatement, []string{"personal statement", "statement of purpose", "application statement"}},
	{DocTypeRecommendation, []string{"recommendation letter", "reference letter", "letter of recommendation"}},
}

func DetectDocumentType(query string) DocumentType {
	q := strings.ToLower(query)
	for _, entry := range documentTypeTable {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				return entry.docType
			}
		}
	}
	return DocTypeGeneric
}
