package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToJira(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"top level unordered", "- item", "- item"},
		{"nested unordered", "- parent\n  - item", "- parent\n-- item"},
		{"top level ordered", "1. item", "# item"},
		{"star and plus markers", "* a\n+ b", "- a\n- b"},
		{"siblings keep their depth", "- a\n- b\n- c", "- a\n- b\n- c"},
		{"marker run repeats the current marker only",
			"1. a\n  - b\n    1. c\n2. d",
			"# a\n-- b\n### c\n# d"},
		{"odd indent rounds down", " - a\n   - b", "- a\n-- b"},
		{"non-list lines pass through untouched",
			"intro\n\n- a\noutro",
			"intro\n\n- a\noutro"},
		{"double digit ordinal is plain text", "10. item", "10. item"},
		{"bare marker yields empty remainder", "-", "- "},
		{"bold line misclassified as list item", "**bold text**", "- text**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkdownToJira(tt.in))
		})
	}
}

func TestMarkdownToJiraMultiDigitOrdinals(t *testing.T) {
	opts := ListOptions{MultiDigitOrdinals: true}

	t.Run("double digit recognized", func(t *testing.T) {
		got := MarkdownToJiraWithOptions("10. item", opts)
		assert.Equal(t, "# item", got)
	})

	t.Run("default unchanged elsewhere", func(t *testing.T) {
		got := MarkdownToJiraWithOptions("1. a\n  - b", opts)
		assert.Equal(t, "# a\n-- b", got)
	})
}

func TestMarkdownToJiraTotal(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", MarkdownToJira(""))
	})

	t.Run("whitespace only", func(t *testing.T) {
		assert.Equal(t, "   \n\t", MarkdownToJira("   \n\t"))
	})
}
