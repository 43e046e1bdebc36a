package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"h3sed/core/savefile"
	"h3sed/feature/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the patch command
	patchOut        string
	patchRangesOnly bool
	patchDryRun     bool
)

var patchCmd = &cobra.Command{
	Use:   "patch FILE OFFSET HEXBYTES",
	Short: "Overwrite bytes of a savefile",
	Long: `Overwrites bytes of the unpacked savefile contents starting at OFFSET and
writes the savefile back. A backup copy is kept unless disabled in the config.

Examples:
  # Set the byte at 0x1F0 to 5
  patch game.GM1 0x1F0 05

  # Write to another file, touching only the patched bytes
  patch game.GM1 0x1F0 0506 --out edited.GM1 --ranges-only`,
	Args: cobra.ExactArgs(3),
	RunE: runPatch,
}

func init() {
	patchCmd.Flags().StringVar(&patchOut, "out", "", "Write to this file instead of FILE")
	patchCmd.Flags().BoolVar(&patchRangesOnly, "ranges-only", false, "Write only the patched byte range on top of the file contents")
	patchCmd.Flags().BoolVar(&patchDryRun, "dry-run", false, "Validate the patch without writing")
	RootCmd.AddCommand(patchCmd)
}

func runPatch(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	offset, err := strconv.ParseInt(args[1], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", args[1], err)
	}
	data, err := hex.DecodeString(args[2])
	if err != nil {
		return fmt.Errorf("invalid bytes %q: %w", args[2], err)
	}

	store := savefile.OSStore{}
	sf, err := savefile.Load(store, args[0], a.manager.Candidates(), a.log)
	if err != nil {
		return err
	}
	if _, err := version.Select(a.registry, a.cfg.Catalog, sf.Version, sf.Detected, a.log); err != nil {
		return fmt.Errorf("%s: %w", sf.Name, err)
	}

	span := savefile.Span{Start: int(offset), End: int(offset) + len(data)}
	if err := sf.Patch(data, span.Start, span.End); err != nil {
		return err
	}
	if !sf.IsChanged() {
		a.log.Info("Bytes already hold the given values, nothing to save")
		return nil
	}
	if patchDryRun {
		a.log.Info("Dry-run mode: No changes were made.", zap.Stringer("range", span))
		return nil
	}

	target := patchOut
	if target == "" {
		target = sf.Name
	}
	if a.cfg.Savefile.Backup {
		if _, err := store.Stat(target); err == nil {
			backup, err := savefile.Backup(store, target)
			if err != nil {
				return err
			}
			a.log.Info("Kept backup copy", zap.String("backup", backup))
		}
	}

	if patchRangesOnly {
		return sf.SaveRanges([]savefile.Span{span}, target)
	}
	return sf.Save(target)
}
