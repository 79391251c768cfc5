// Package wiki converts GitLab-flavored Markdown into Jira wiki markup.
//
// Two independent converters are exposed. ConvertGitLabToJira is an ordered
// regex substitution pipeline over the whole document; MarkdownToJira is a
// line pass that rebuilds nested list markers from indentation. Both are
// total: any input string produces an output string, malformed markup passes
// through with partial or no conversion.
package wiki

import "regexp"

// rewriteRule pairs a pattern with its replacement. Rules run in order over
// the whole document; each rule sees the output of the rules before it.
type rewriteRule struct {
	re   *regexp.Regexp
	repl string
}

// boldMark stands in for converted bold spans until the emphasis rules have
// run, so they cannot re-wrap text the bold rules already handled. NUL never
// appears in markdown source.
const boldMark = "\x00"

// gitlabToJiraRules is the substitution pipeline. Ordering constraints:
//   - headers before lists, so "## x" emitted by the ordered-list rule is not
//     mistaken for an h2 line;
//   - bold before emphasis (via the boldMark stash);
//   - nested list variants before their top-level variants, which would
//     otherwise strip the indentation first;
//   - fenced code before inline code, which would pair up the fence backticks;
//   - images before links, because the link pattern is a prefix of the image
//     pattern and would leave a stray bang behind.
var gitlabToJiraRules = []rewriteRule{
	// Headers
	{regexp.MustCompile(`(?m)^#\s+(.*)$`), "h1. $1"},
	{regexp.MustCompile(`(?m)^##\s+(.*)$`), "h2. $1"},
	{regexp.MustCompile(`(?m)^###\s+(.*)$`), "h3. $1"},

	// Bold, stashed behind boldMark until the emphasis rules are done
	{regexp.MustCompile(`\*\*(.*?)\*\*`), boldMark + "$1" + boldMark},
	{regexp.MustCompile(`__(.*?)__`), boldMark + "$1" + boldMark},

	// Emphasis. ${1} because a bare $1 would swallow the trailing
	// underscore as part of the group name. The underscore rule is a no-op:
	// underscore emphasis is already the target syntax.
	{regexp.MustCompile(`\*(.*?)\*`), "_${1}_"},
	{regexp.MustCompile(`_(.*?)_`), "_${1}_"},

	// Unstash bold
	{regexp.MustCompile(boldMark + `(.*?)` + boldMark), "*$1*"},

	// Unordered lists, one nesting level
	{regexp.MustCompile(`(?m)^[ \t]{2,}-[ \t]+(.*)$`), "-- $1"},
	{regexp.MustCompile(`(?m)^[ \t]*-[ \t]+(.*)$`), "- $1"},

	// Ordered lists, one nesting level
	{regexp.MustCompile(`(?m)^[ \t]{2,}\d+\.[ \t]+(.*)$`), "## $1"},
	{regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+(.*)$`), "# $1"},

	// Fenced code blocks. The only rule whose content spans lines; the
	// language tag is whatever sits between the opening fence and the first
	// newline.
	{regexp.MustCompile("(?s)```(.*?)\n(.*?)```"), "{code:$1}\n$2\n{code}"},
	{regexp.MustCompile(`\{code:\}`), "{code}"},

	// Inline code
	{regexp.MustCompile("`(.*?)`"), "{{$1}}"},

	// Images, then links
	{regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`), "!$2|alt=$1!"},
	{regexp.MustCompile(`\[(.*?)\]\((.*?)\)`), "[$1|$2]"},

	// Block quotes: each quoted line gets its own wrapper pair
	{regexp.MustCompile(`(?m)^>\s+(.*)$`), "{quote}\n$1\n{quote}"},

	// Tables: double the pipes on fully bracketed rows, then drop the
	// leading pipe of a separator row
	{regexp.MustCompile(`(?m)^\|(.*)\|$`), "||$1||"},
	{regexp.MustCompile(`(?m)^\|\s*:?-+:?\s*\|`), "|"},

	// Horizontal rules
	{regexp.MustCompile(`(?m)^-{3,}`), "----"},

	// Strikethrough
	{regexp.MustCompile(`~~(.*?)~~`), "-$1-"},

	// Mentions. Also matches the domain half of bare email addresses; known
	// limitation.
	{regexp.MustCompile(`@(\w+)`), "[~$1]"},
}

// ConvertGitLabToJira rewrites a GitLab-flavored Markdown document into Jira
// wiki markup. The conversion is a best-effort lexical approximation, not a
// parse: unmatched constructs pass through unchanged and no escaping of
// literal markup characters is performed. The result of re-converting its own
// output is unspecified.
func ConvertGitLabToJira(text string) string {
	for _, r := range gitlabToJiraRules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}
