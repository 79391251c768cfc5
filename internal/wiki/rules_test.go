package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertGitLabToJira(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"h1", "# Title", "h1. Title"},
		{"h2", "## Title", "h2. Title"},
		{"h3", "### Title", "h3. Title"},
		{"header keeps rest verbatim", "# A  B\t C", "h1. A  B\t C"},
		{"bold asterisks", "**bold**", "*bold*"},
		{"bold underscores", "__bold__", "*bold*"},
		{"italic asterisk", "*italic*", "_italic_"},
		{"italic underscore", "_italic_", "_italic_"},
		{"bold and italic on one line", "**b** and *i*", "*b* and _i_"},
		{"two bold spans stay separate", "**a** x **b**", "*a* x *b*"},
		{"bold inside header", "# **T**", "h1. *T*"},
		{"unordered top level", "- item", "- item"},
		{"unordered nested", "  - item", "-- item"},
		{"ordered top level", "1. item", "# item"},
		{"ordered nested", "  2. item", "## item"},
		{"link", "[Text](http://x.com)", "[Text|http://x.com]"},
		{"image", "![Alt](http://x.com/i.png)", "!http://x.com/i.png|alt=Alt!"},
		{"image then link on one line",
			"![A](u1) [B](u2)",
			"!u1|alt=A! [B|u2]"},
		{"inline code", "`code`", "{{code}}"},
		{"block quote", "> quoted", "{quote}\nquoted\n{quote}"},
		{"quote lines wrapped independently",
			"> a\n> b",
			"{quote}\na\n{quote}\n{quote}\nb\n{quote}"},
		{"table row", "|a|b|", "||a|b||"},
		{"table separator row is doubled too", "|---|---|", "||---|---||"},
		{"horizontal rule", "---", "----"},
		{"long horizontal rule", "-------", "----"},
		{"strikethrough", "~~gone~~", "-gone-"},
		{"mention", "@alice", "[~alice]"},
		{"mention inside email", "user@domain", "user[~domain]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertGitLabToJira(tt.in))
		})
	}
}

func TestConvertGitLabToJiraFencedCode(t *testing.T) {
	t.Run("language tag", func(t *testing.T) {
		got := ConvertGitLabToJira("```python\na = 1\nb = 2```")
		assert.Equal(t, "{code:python}\na = 1\nb = 2\n{code}", got)
	})

	t.Run("no language tag", func(t *testing.T) {
		got := ConvertGitLabToJira("```\nx()```")
		assert.Equal(t, "{code}\nx()\n{code}", got)
	})

	t.Run("body newlines preserved", func(t *testing.T) {
		got := ConvertGitLabToJira("```go\nfunc f() {\n\treturn\n}```")
		assert.Equal(t, "{code:go}\nfunc f() {\n\treturn\n}\n{code}", got)
	})
}

// The converter is total: malformed markup degrades to a partial rewrite, it
// never fails.
func TestConvertGitLabToJiraTotal(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", ConvertGitLabToJira(""))
	})

	t.Run("plain text passes through", func(t *testing.T) {
		in := "nothing to see here.\njust text."
		assert.Equal(t, in, ConvertGitLabToJira(in))
	})

	t.Run("unclosed fence", func(t *testing.T) {
		// The fence rule needs a closing fence; the opening backticks are
		// then picked apart by the inline-code rule instead.
		got := ConvertGitLabToJira("```go\nx")
		assert.Equal(t, "{{}}`go\nx", got)
	})

	t.Run("unbalanced bold", func(t *testing.T) {
		got := ConvertGitLabToJira("**oops")
		assert.Equal(t, "__oops", got)
	})
}

func TestConvertGitLabToJiraDocument(t *testing.T) {
	in := "# Release notes\n" +
		"\n" +
		"**Highlights** from *this* sprint:\n" +
		"\n" +
		"- faster sync\n" +
		"  - see [details](http://x.com/d)\n" +
		"\n" +
		"Ping @maria for questions.\n"

	want := "h1. Release notes\n" +
		"\n" +
		"*Highlights* from _this_ sprint:\n" +
		"\n" +
		"- faster sync\n" +
		"-- see [details|http://x.com/d]\n" +
		"\n" +
		"Ping [~maria] for questions.\n"

	assert.Equal(t, want, ConvertGitLabToJira(in))
}
