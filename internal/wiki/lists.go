package wiki

import (
	"regexp"
	"strings"
)

// ListOptions name explicit deviations from the historical list conversion.
// The zero value reproduces it exactly.
type ListOptions struct {
	// MultiDigitOrdinals recognizes ordinal prefixes of any length ("10.",
	// "123."). By default only "1." through "9." mark an ordered item, so
	// items ten and up fall through as plain text.
	MultiDigitOrdinals bool
}

var ordinalPrefix = regexp.MustCompile(`^\d+\.`)

// MarkdownToJira rebuilds nested list markers from indentation: each list
// line becomes a run of "#" (ordered) or "-" (unordered) one longer than its
// nesting depth, where one level is two leading spaces. Non-list lines pass
// through unchanged.
func MarkdownToJira(text string) string {
	return MarkdownToJiraWithOptions(text, ListOptions{})
}

// MarkdownToJiraWithOptions is MarkdownToJira with named fixes enabled.
func MarkdownToJiraWithOptions(text string, opts ListOptions) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	// Marker character per active nesting level. After each list line the
	// stack is exactly depth+1 long.
	var stack []byte

	for _, line := range lines {
		stripped := strings.TrimLeft(line, " \t")
		indent := len(line) - len(stripped)

		ordered := isOrderedItem(stripped, opts)
		unordered := strings.HasPrefix(stripped, "-") ||
			strings.HasPrefix(stripped, "*") ||
			strings.HasPrefix(stripped, "+")

		if !ordered && !unordered {
			out = append(out, line)
			continue
		}

		// Two spaces per level; odd indents round down.
		depth := indent / 2
		for len(stack) > depth {
			stack = stack[:len(stack)-1]
		}

		marker := byte('-')
		if ordered {
			marker = '#'
		}
		stack = append(stack, marker)

		// Everything after the first space-delimited token. A bare marker
		// with no trailing text yields an empty remainder.
		rest := ""
		if _, after, found := strings.Cut(stripped, " "); found {
			rest = after
		}

		out = append(out, strings.Repeat(string(marker), len(stack))+" "+rest)
	}

	return strings.Join(out, "\n")
}

func isOrderedItem(stripped string, opts ListOptions) bool {
	if opts.MultiDigitOrdinals {
		return ordinalPrefix.MatchString(stripped)
	}
	return len(stripped) >= 2 && stripped[0] >= '1' && stripped[0] <= '9' && stripped[1] == '.'
}
