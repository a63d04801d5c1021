package classify

import (
	"regexp"
	"strings"
)

type Language string

const (
	LangMove       = Language("move")
	LangPython     = Language("python")
	LangJavaScript = Language("javascript")
	LangTypeScript = Language("typescript")
	LangJava       = Language("java")
	LangCPP        = Language("c++")
	LangCSharp     = Language("c#")
	LangGo         = Language("go")
	LangRust       = Language("rust")
	LangSolidity   = Language("solidity")
	LangHTML       = Language("html")
	LangCSS        = Language("css")
	LangSQL        = Language("sql")
	LangPlaintext  = Language("plaintext")
)

// moveScoreWeight biases detection toward Move over equally-scored
// competitors. Move queries tend to be phrased with generic words
// ("module", "resource") that other languages' patterns also hit.
const moveScoreWeight = 1.5

type languageEntry struct {
	lang     Language
	patterns []*regexp.Regexp
}

// languageTable is evaluated in order for both detection phases; on a
// score tie the earlier entry wins.
var languageTable = []languageEntry{
	{LangMove, compileAll(
		`\bmove\b`, `\bmodule\s+\w+\s*\{`, `\bscript\s*\{`, `\bresource\b`,
		`\bacquires\b`, `\bpublic\s+fun\b`, `\bfun\b`, `\bsui\b`, `\baptos\b`,
		`\bmove_to\b`, `\bsigner\b`, `\bmove\s+language\b`, `#\[test\]`,
		`\bpublic\s+entry\b`, `\bentry\s+fun\b`, `\b0x\w+::`,
	)},
	{LangPython, compileAll(
		`\.py\b`, `\bpython\b`, `\bdef\s+\w+\s*\(`, `\bimport\s+\w+\b`,
		`\bfrom\s+\w+\s+import\b`, `\bclass\s+\w+\s*:`, `\bprint\w*\s*\(`,
	)},
	{LangJavaScript, compileAll(
		`\.js\b`, `\bjavascript\b`, `\blet\b`, `\bconst\b`, `\bfunction\b`,
		`=>`, `\bdocument\.\w+\b`, `\bwindow\.\w+\b`, `\bconsole\.log\b`,
	)},
	{LangTypeScript, compileAll(
		`\.ts\b`, `\btypescript\b`, `\binterface\b`, `\bnamespace\b`,
		`\btype\s+\w+\s*=`, `\bas\s+\w+\b`,
	)},
	{LangJava, compileAll(
		`\.java\b`, `\bjava\b`, `\bclass\s+\w+\s*\{`,
		`\bpublic\s+static\s+void\s+main\b`, `\bSystem\.out\.print\w*\b`,
	)},
	{LangCPP, compileAll(
		`\.cpp\b`, `\bc\+\+`, `\bcpp\b`, `#include\s*<\w+>`, `\bstd::\w+\b`,
		`\bnamespace\s+\w+\s*\{`,
	)},
	{LangCSharp, compileAll(
		`\.cs\b`, `\bc#`, `\bcsharp\b`, `\busing\s+\w+;`,
		`\bpublic\s+class\s+\w+\s*\{`, `\bConsole\.Write\w*\b`,
	)},
	{LangGo, compileAll(
		`\.go\b`, `\bgolang\b`, `\bgo\b`, `\bfunc\s+\w+\s*\(`,
		`\bpackage\s+\w+\b`, `\bimport\s+\(`, `\bfmt\.\w+\b`,
	)},
	{LangRust, compileAll(
		`\.rs\b`, `\brust\b`, `\bfn\s+\w+\s*\(`, `\blet\s+mut\b`,
		`\bimpl\s+\w+`, `\bmatch\b`, `\bcargo\b`, `\buse\s+\w+::`,
	)},
	{LangSolidity, compileAll(
		`\.sol\b`, `\bsolidity\b`, `\bcontract\s+\w+\s*\{`, `\bmapping\s*\(`,
		`\buint\d*\b`, `\bpragma\s+solidity\b`,
	)},
	{LangHTML, compileAll(
		`\.html\b`, `\bhtml\b`, `<html\b`, `<div\b`, `<body\b`, `</\w+>`,
	)},
	{LangCSS, compileAll(
		`\.css\b`, `\bcss\b`, `\.\w+\s*\{`, `#\w+\s*\{`, `\bmargin\b`,
		`\bpadding\b`, `\bfont-size\b`,
	)},
	{LangSQL, compileAll(
		`\.sql\b`, `\bsql\b`, `\bselect\b.*\bfrom\b`, `\binsert\s+into\b`,
		`\bcreate\s+table\b`, `\bdelete\s+from\b`, `\bjoin\b`,
	)},
}

var explicitMentionPatterns = buildExplicitMentions()

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+expr))
	}
	return patterns
}

func buildExplicitMentions() map[Language][]*regexp.Regexp {
	mentions := make(map[Language][]*regexp.Regexp, len(languageTable))
	for _, entry := range languageTable {
		name := regexp.QuoteMeta(string(entry.lang))
		mentions[entry.lang] = []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:in|using|with)\s+` + name + `\s+(?:language|code)`),
			regexp.MustCompile(`(?i)(?:write|generate)\s+` + name + `\s+(?:code|script)`),
		}
	}
	return mentions
}

// DetectLanguage picks the programming language a query is about.
// Phase 1 looks for an explicit mention ("in rust code", "generate
// python script") per language in table order; first match wins.
// Phase 2 scores every language's pattern list against the text, with
// Move weighted by moveScoreWeight; the strictly highest score wins and
// ties go to the earlier table entry. All zero scores return
// LangPlaintext.
func DetectLanguage(query string) Language {
	q := strings.ToLower(query)

	for _, entry := range languageTable {
		for _, pattern := range explicitMentionPatterns[entry.lang] {
			if pattern.MatchString(q) {
				return entry.lang
			}
		}
	}

	best := LangPlaintext
	bestScore := 0.0
	for _, entry := range languageTable {
		score := 0.0
		for _, pattern := range entry.patterns {
			if pattern.MatchString(query) {
				if entry.lang == LangMove {
					score += moveScoreWeight
				} else {
					score++
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry.lang
		}
	}
	return best
}

// codePatternTable recognizes a language from code text rather than
// from a request about code. Used to tag replies for the UI.
var codePatternTable = []languageEntry{
	{LangPython, compileAll(`def\s+\w+\s*\(`, `import\s+\w+`, `from\s+\w+\s+import`, `class\s+\w+:`)},
	{LangJavaScript, compileAll(`function\s+\w+\s*\(`, `const\s+\w+\s*=`, `let\s+\w+\s*=`, `var\s+\w+\s*=`, `=>`)},
	{LangTypeScript, compileAll(`:\s*\w+(\[\])?\s*=`, `interface\s+\w+`, `type\s+\w+\s*=`)},
	{LangJava, compileAll(`public\s+class`, `private\s+\w+\s+\w+`, `protected\s+\w+`, `void\s+\w+\s*\(`)},
	{LangCPP, compileAll(`#include`, `std::`, `template<`, `namespace\s+\w+`)},
	{LangCSharp, compileAll(`using\s+\w+;`, `Console\.Write`)},
	{LangRust, compileAll(`fn\s+\w+`, `let\s+mut`, `impl\s+\w+`, `pub\s+fn`)},
	{LangGo, compileAll(`func\s+\w+`, `package\s+\w+`, `import\s+\(`, `type\s+\w+\s+struct`)},
	{LangSQL, compileAll(`SELECT\s+.*\s+FROM`, `INSERT\s+INTO`, `UPDATE\s+\w+\s+SET`, `CREATE\s+TABLE`)},
	{LangHTML, compileAll(`<html`, `<div`, `<body`, `<head`, `<script`)},
	{LangCSS, compileAll(`\.\w+\s*\{`, `@media`, `margin:`, `padding:`)},
	{LangMove, compileAll(`module\s+\w+`, `public\s+fun`, `has\s+key`, `has\s+store`, `acquires\s+\w+`, `native\s+fun`)},
	{LangSolidity, compileAll(`contract\s+\w+`, `pragma\s+solidity`)},
}

// DetectLanguageFromCode returns the language of a code snippet, or
// "code" when nothing matches.
func DetectLanguageFromCode(code string) string {
	for _, entry := range codePatternTable {
		for _, pattern := range entry.patterns {
			if pattern.MatchString(code) {
				return string(entry.lang)
			}
		}
	}
	return "code"
}
