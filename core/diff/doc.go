// Package diff compares two text renderings of one hero data category.
//
// The texts are line oriented. A line starting with "- " directly under a non-blank,
// non-dash line continues the item on that line, so an item and its continuation
// lines are compared as one unit:
//
//	Angelic Alliance
//	- granted by combo
//
// Diff runs in three passes:
//
//  1. Fold joins every item with its continuation lines.
//  2. Align computes a longest common subsequence over the folded lines. Within
//     each run of differing lines, a removed line directly followed by an added
//     one, or the other way round, is paired as a changed entry. The rest stay
//     removals and additions.
//  3. Unfold splits every folded entry back into lines and aligns those lines on
//     their own, so a change inside an item is reported per line.
//
// Diff is a pure function: diff(a, a) holds only same entries, and diff(b, a) is
// the mirror image of diff(a, b).
//
// Changelog condenses the entries of several categories into the plain text log
// written after a savefile is saved, Unified produces a unified diff of complete
// snapshots and Render lays entries out in two columns for the terminal.
package diff
