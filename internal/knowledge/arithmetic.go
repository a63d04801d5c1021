package knowledge

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var arithmeticRe = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*([-+*/x×])\s*(-?\d+(?:\.\d+)?)\s*\??\s*$`)

// Arithmetic evaluates a bare two-operand expression like "2 + 2" and
// renders it as "2.0 + 2.0 = 4.0". Anything that is not exactly one
// binary expression, and division by zero, returns ok=false.
func Arithmetic(query string) (string, bool) {
	m := arithmeticRe.FindStringSubmatch(query)
	if m == nil {
		return "", false
	}

	a, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", false
	}
	b, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return "", false
	}

	op := m[2]
	var result float64
	switch op {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*", "x", "×":
		op = "*"
		result = a * b
	case "/":
		if b == 0 {
			return "", false
		}
		result = a / b
	default:
		return "", false
	}

	return fmt.Sprintf("%s %s %s = %s", formatNumber(a), op, formatNumber(b), formatNumber(result)), true
}

// formatNumber keeps at least one decimal place so whole numbers render
// as "4.0", matching the transcript style of the arithmetic replies.
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
