package diff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a unified diff of two complete texts, with context lines around
// each hunk. Equal texts produce an empty diff.
func Unified(before, after, fromName, toName string, context int) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        unifiedLines(before),
		B:        unifiedLines(after),
		FromFile: fromName,
		ToFile:   toName,
		Context:  context,
	})
}

// unifiedLines splits text into newline terminated lines. A trailing newline
// ends the last line instead of opening an empty one.
func unifiedLines(text string) []string {
	lines := splitLines(text)
	for i := range lines {
		lines[i] += "\n"
	}
	return lines
}
