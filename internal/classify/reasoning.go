package classify

import "strings"

var generalReasoningKeywords = []string{
	"why", "reason", "analyze", "analyse", "evaluate", "justify",
	"compare", "trade-off", "tradeoff", "implication", "consequence",
	"cause", "effect", "decide", "should i", "which is better",
}

var technicalReasoningKeywords = []string{
	"architecture", "algorithm", "optimize", "performance", "scalable",
	"concurrency", "distributed", "security", "complexity", "design",
}

var causalConnectives = []string{
	"because", "therefore", "leads to", "results in", "due to", "so that",
}

// NeedsDeepReasoning is a heuristic gate, not a semantic judgment. It
// sums one point per matched reasoning keyword, one per matched
// technical keyword, and structural signals (more than one question
// mark, a query longer than 15 words, a causal connective), and fires
// at a score of 2.
func NeedsDeepReasoning(query string) bool {
	q := strings.ToLower(query)
	score := 0

	for _, kw := range generalReasoningKeywords {
		if strings.Contains(q, kw) {
			score++
		}
	}
	for _, kw := range technicalReasoningKeywords {
		if strings.Contains(q, kw) {
			score++
		}
	}
	if strings.Count(q, "?") > 1 {
		score++
	}
	if len(strings.Fields(q)) > 15 {
		score++
	}
	for _, conn := range causalConnectives {
		if strings.Contains(q, conn) {
			score++
			break
		}
	}

	return score >= 2
}

var complexityKeywords = []string{
	"architecture", "design pattern", "system", "algorithm", "optimize",
	"efficient", "performance", "scalable", "secure", "robust",
	"trade-off", "comparison", "approach", "best practice", "framework",
	"complex", "advanced", "production-ready", "enterprise", "modular",
	"maintainable", "flexible", "extensible", "customizable", "elegant",
}

var explanationWants = []string{
	"explain", "understand", "clarify", "detail", "thoroughly", "comprehensive",
	"in-depth", "elaborate", "breakdown", "step by step", "walkthrough",
}

var technicalChallenges = []string{
	"concurrency", "parallelism", "asynchronous", "distributed",
	"memory management", "garbage collection", "optimization",
	"caching", "scaling", "security", "authentication", "authorization",
	"encryption", "validation", "error handling", "fault tolerance",
	"recovery", "persistence", "storage", "indexing", "query optimization",
}

// NeedsDeepTechnicalReasoning gates the code path onto the detailed
// reasoning prompt. One point per complexity keyword, two if the user
// wants an explanation, two if a specific technical challenge is named;
// fires at 3.
func NeedsDeepTechnicalReasoning(query string) bool {
	q := strings.ToLower(query)

	score := 0
	for _, kw := range complexityKeywords {
		if strings.Contains(q, kw) {
			score++
		}
	}
	for _, kw := range explanationWants {
		if strings.Contains(q, kw) {
			score += 2
			break
		}
	}
	for _, kw := range technicalChallenges {
		if strings.Contains(q, kw) {
			score += 2
			break
		}
	}

	return score >= 3
}

var formattingKeywords = []string{
	"professional", "formal", "detailed", "comprehensive", "elaborate",
	"structured", "well-formatted", "standard", "proper", "official",
	"thorough", "complete", "advanced", "sophisticated", "extensive",
	"in-depth", "complex", "polished", "refined",
}

// NeedsDeepFormatting gates the document path onto the enhanced
// formatting prompt; needs at least two formatting indicators.
func NeedsDeepFormatting(query string) bool {
	q := strings.ToLower(query)
	score := 0
	for _, kw := range formattingKeywords {
		if strings.Contains(q, kw) {
			score++
		}
	}
	return score >= 2
}
