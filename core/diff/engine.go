package diff

import (
	"regexp"
	"strings"
)

// foldMarker joins an item with its continuation lines. Split lines never contain
// it, so a folded line is told apart from a plain one by its presence.
const foldMarker = "\n"

var continuationLine = regexp.MustCompile(`^\s*-\s.+`)

// Diff aligns the lines of before and after. Items with continuation lines are
// compared as a unit and then reported line by line.
func Diff(before, after string) []Entry {
	entries := align(fold(splitLines(before)), fold(splitLines(after)))
	return unfold(entries)
}

// splitLines splits text into lines. A trailing newline does not produce an
// empty last line and empty text has no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// isPrimary reports whether line can start an item that takes continuations.
func isPrimary(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && !strings.HasPrefix(trimmed, "-")
}

// fold merges every continuation line into the item opened by the nearest primary
// line above it.
func fold(lines []string) []string {
	out := make([]string, 0, len(lines))
	open := false
	for _, line := range lines {
		if open && continuationLine.MatchString(line) {
			out[len(out)-1] += foldMarker + line
			continue
		}
		out = append(out, line)
		open = isPrimary(line)
	}
	return out
}

// unfold re-aligns every entry holding folded items as plain lines and splices
// the result in place of the entry.
func unfold(entries []Entry) []Entry {
	var pending []int
	for i, e := range entries {
		if strings.Contains(e.Old, foldMarker) || strings.Contains(e.New, foldMarker) {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return entries
	}

	out := make([]Entry, 0, len(entries)+len(pending))
	next := 0
	for _, i := range pending {
		out = append(out, entries[next:i]...)
		e := entries[i]
		out = append(out, align(splitFolded(e.Old), splitFolded(e.New))...)
		next = i + 1
	}
	return append(out, entries[next:]...)
}

// splitFolded splits a folded item into its lines. The empty side of an
// addition or removal has no lines.
func splitFolded(item string) []string {
	if item == "" {
		return nil
	}
	return strings.Split(item, foldMarker)
}

// step is one move of a walk over two sequences; i and j index the consumed
// elements, -1 marking the side not consumed.
type step struct {
	kind Kind
	i, j int
}

// walk traces a longest common subsequence of a and b under match. Ties are broken
// by taking the lexicographically smaller element first, which makes walk(b, a) the
// mirror image of walk(a, b).
func walk(a, b []string, match func(x, y string) bool) []step {
	n, m := len(a), len(b)
	// table[i][j] is the LCS length of a[i:] and b[j:].
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			best := max(table[i+1][j], table[i][j+1])
			if match(a[i], b[j]) {
				best = max(best, table[i+1][j+1]+1)
			}
			table[i][j] = best
		}
	}

	steps := make([]step, 0, n+m)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case match(a[i], b[j]) && table[i][j] == table[i+1][j+1]+1:
			steps = append(steps, step{KindSame, i, j})
			i++
			j++
		case table[i+1][j] > table[i][j+1]:
			steps = append(steps, step{KindRemoved, i, -1})
			i++
		case table[i+1][j] < table[i][j+1]:
			steps = append(steps, step{KindAdded, -1, j})
			j++
		case a[i] < b[j]:
			steps = append(steps, step{KindRemoved, i, -1})
			i++
		default:
			steps = append(steps, step{KindAdded, -1, j})
			j++
		}
	}
	for ; i < n; i++ {
		steps = append(steps, step{KindRemoved, i, -1})
	}
	for ; j < m; j++ {
		steps = append(steps, step{KindAdded, -1, j})
	}
	return steps
}

// align matches equal lines of a and b and turns every run of differing lines
// between them into entries.
func align(a, b []string) []Entry {
	entries := make([]Entry, 0, max(len(a), len(b)))
	var run []step
	for _, s := range walk(a, b, equal) {
		if s.kind != KindSame {
			run = append(run, s)
			continue
		}
		entries = appendRun(entries, a, b, run)
		run = run[:0]
		entries = append(entries, Entry{Old: a[s.i], New: a[s.i], Kind: KindSame})
	}
	return appendRun(entries, a, b, run)
}

// appendRun reports one run of differing lines. A removed line directly followed
// by an added line, or an added line directly followed by a removed one, becomes
// one changed entry. Every other line stays a removal or an addition.
func appendRun(entries []Entry, a, b []string, run []step) []Entry {
	for k := 0; k < len(run); k++ {
		s := run[k]
		if k+1 < len(run) && run[k+1].kind != s.kind {
			old, cur := s, run[k+1]
			if old.kind == KindAdded {
				old, cur = cur, old
			}
			entries = append(entries, Entry{Old: a[old.i], New: b[cur.j], Kind: KindChanged})
			k++
			continue
		}
		if s.kind == KindRemoved {
			entries = append(entries, Entry{Old: a[s.i], Kind: KindRemoved})
		} else {
			entries = append(entries, Entry{New: b[s.j], Kind: KindAdded})
		}
	}
	return entries
}

func equal(x, y string) bool {
	return x == y
}
