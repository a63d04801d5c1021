package shape

import (
	"regexp"
	"strings"
)

var (
	numberedItemRe   = regexp.MustCompile(`(?m)^(\d+)\.(\S)`)
	headingSpacingRe = regexp.MustCompile(`(?m)([^\n])\n(#{2,3}\s)`)
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
	separatorRowRe   = regexp.MustCompile(`^\s*\|?[\s:|-]+\|?\s*$`)
	boldMarkerRe     = regexp.MustCompile(`^\*\*(.*?)\*\*$`)
)

var prosConsLabels = map[string]struct{}{
	"pros":          {},
	"cons":          {},
	"advantages":    {},
	"disadvantages": {},
	"benefits":      {},
	"drawbacks":     {},
}

// Normalize applies the fixed markdown cleanups to model output:
// numbered-list and heading spacing, table separator rows, and
// pros/cons labels promoted to subheadings. Stable when re-applied.
func Normalize(text string) string {
	text = numberedItemRe.ReplaceAllString(text, "$1. $2")
	text = headingSpacingRe.ReplaceAllString(text, "$1\n\n$2")
	text = labelProsCons(text)
	text = insertTableSeparators(text)
	text = excessNewlinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimRight(text, "\n")
}

// labelProsCons promotes bare "Pros"/"Cons"-style label lines to level 3
// subheadings. Lines already carrying heading markup are left alone.
func labelProsCons(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		label := strings.TrimSuffix(trimmed, ":")
		if m := boldMarkerRe.FindStringSubmatch(label); m != nil {
			label = strings.TrimSuffix(m[1], ":")
		}
		if _, ok := prosConsLabels[strings.ToLower(label)]; ok {
			lines[i] = "### " + strings.ToUpper(label[:1]) + strings.ToLower(label[1:])
		}
	}
	return strings.Join(lines, "\n")
}

// insertTableSeparators adds the markdown separator row beneath the
// first pipe-delimited line of each contiguous table-like block. Blocks
// that already carry a separator, and lone pipe lines, are untouched.
func insertTableSeparators(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+2)
	inBlock := false
	for i, line := range lines {
		out = append(out, line)
		if !isTableRow(line) {
			inBlock = false
			continue
		}
		if !inBlock {
			inBlock = true
			if i+1 < len(lines) && isTableRow(lines[i+1]) && !isSeparatorRow(lines[i+1]) {
				out = append(out, separatorFor(line))
			}
		}
	}
	return strings.Join(out, "\n")
}

func isTableRow(line string) bool {
	return strings.Count(line, "|") >= 2
}

func isSeparatorRow(line string) bool {
	return strings.Contains(line, "-") && separatorRowRe.MatchString(line)
}

func separatorFor(row string) string {
	cells := strings.Split(strings.Trim(strings.TrimSpace(row), "|"), "|")
	var b strings.Builder
	b.WriteString("|")
	for range cells {
		b.WriteString(" --- |")
	}
	return b.String()
}
