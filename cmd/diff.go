package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"h3sed/core/diff"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the diff command
	diffLog     bool
	diffUnified bool
	diffName    string
)

var diffCmd = &cobra.Command{
	Use:   "diff BEFORE AFTER",
	Short: "Compare two renderings of hero data",
	Long: `Compares two text renderings of a hero data category line by line.
Items with "- " continuation lines are compared as a unit.

Examples:
  # Two-column view
  diff before.txt after.txt

  # Change log as written after saving
  diff before.txt after.txt --log --name "Gem"

  # Unified diff
  diff before.txt after.txt --unified`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffLog, "log", false, "Print a compact change log instead of columns")
	diffCmd.Flags().BoolVar(&diffUnified, "unified", false, "Print a unified diff instead of columns")
	diffCmd.Flags().StringVar(&diffName, "name", "", "Name heading the change log")
	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	before, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	after, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case diffLog:
		log := diff.Changelog(diffName, []diff.Change{{Before: string(before), After: string(after)}})
		if log != "" {
			a.log.Info("Changes", zap.String("log", log))
		}
		fmt.Fprint(out, log)
	case diffUnified:
		text, err := diff.Unified(string(before), string(after), filepath.Base(args[0]), filepath.Base(args[1]), a.cfg.Diff.Context)
		if err != nil {
			return err
		}
		fmt.Fprint(out, text)
	default:
		entries := diff.Diff(string(before), string(after))
		fmt.Fprint(out, diff.Render(entries, a.cfg.Diff))
		s := diff.Summarize(entries)
		fmt.Fprintf(out, "%d same, %d changed, %d removed, %d added\n", s.Same, s.Changed, s.Removed, s.Added)
	}
	return nil
}
