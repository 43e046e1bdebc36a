package diff

import (
	"regexp"
	"strings"
)

// Change holds two renderings of one category, before and after an edit.
// The first line of each text is the category header.
type Change struct {
	Before string
	After  string
}

var (
	leadingDash = regexp.MustCompile(`^\s*-\s*`)
	spaceRun    = regexp.MustCompile(`\s{2,}`)
)

// Changelog renders the differences of the given changes as compact text, one line
// per removed, added or changed item, under the optional name. Changes with equal
// sides are skipped; the result is empty when nothing differs.
func Changelog(name string, changes []Change) string {
	var b strings.Builder
	for _, c := range changes {
		if c.Before == c.After {
			continue
		}
		for i, e := range mergeContinuations(Diff(c.Before, c.After)) {
			old, cur := cleanLogLine(e.Old), cleanLogLine(e.New)
			if i == 0 {
				header := old
				if header == "" {
					header = cur
				}
				b.WriteString("  " + header + "\n")
				continue
			}
			if strings.HasSuffix(old, ":") {
				old = ""
			}
			if strings.HasSuffix(cur, ":") {
				cur = ""
			}
			switch {
			case old != "" && cur == "":
				b.WriteString("    removed " + old + "\n")
			case cur != "" && old == "":
				b.WriteString("    added " + cur + "\n")
			case old != cur && strings.Contains(old+cur, ":"):
				b.WriteString("    changed " + old + " to " + cur + "\n")
			case old != cur:
				b.WriteString("    removed " + old + "\n")
				b.WriteString("    added " + cur + "\n")
			}
		}
	}
	if b.Len() == 0 {
		return ""
	}
	if name != "" {
		return name + ":\n" + b.String()
	}
	return b.String()
}

// mergeContinuations joins continuation entries onto the entry of their item so
// that each item is logged on one line.
func mergeContinuations(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if n := len(out); n > 0 {
			prev := &out[n-1]
			if continues(prev.Old, e.Old) || continues(prev.New, e.New) {
				prev.Old = strings.TrimSpace(prev.Old + " " + e.Old)
				prev.New = strings.TrimSpace(prev.New + " " + e.New)
				if prev.Old != prev.New {
					prev.Kind = KindChanged
				}
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

func continues(item, line string) bool {
	return isPrimary(item) && continuationLine.MatchString(line)
}

func cleanLogLine(line string) string {
	line = leadingDash.ReplaceAllString(line, " ")
	line = spaceRun.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}
