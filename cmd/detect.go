package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"h3sed/core/savefile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var detectWorkers int

var detectCmd = &cobra.Command{
	Use:   "detect PATH...",
	Short: "Detect the game version of savefiles",
	Long: `Detects the game version of each savefile. Directories are scanned
recursively for files with a configured savefile extension.

Examples:
  # Single file
  detect game.GM1

  # Whole save directory with 8 workers
  detect ~/heroes3/games --workers 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().IntVar(&detectWorkers, "workers", 4, "Number of files inspected concurrently")
	RootCmd.AddCommand(detectCmd)
}

type detection struct {
	file    string
	version string
	err     error
}

func runDetect(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	files, err := expandSavefiles(args, a.cfg.Savefile.Extensions)
	if err != nil {
		return err
	}

	candidates := a.manager.Candidates()
	store := savefile.OSStore{}
	results := make([]detection, len(files))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(detectWorkers, 1))
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := detection{file: file}
			sf, err := savefile.Load(store, file, candidates, a.log)
			switch {
			case err != nil:
				res.err = err
			case sf.Detected:
				res.version = sf.Version.Name
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		switch {
		case r.err != nil:
			failed++
			a.log.Warn("Failed to read savefile", zap.String("file", r.file), zap.Error(r.err))
			fmt.Fprintf(out, "%s\terror\n", r.file)
		case r.version == "":
			fmt.Fprintf(out, "%s\tunknown\n", r.file)
		default:
			fmt.Fprintf(out, "%s\t%s\n", r.file, r.version)
		}
	}
	a.log.Info("Detection finished", zap.Int("files", len(files)), zap.Int("failed", failed))
	return nil
}

// expandSavefiles replaces directories in paths by the savefiles below them.
// Explicitly named files are kept whatever their extension.
func expandSavefiles(paths []string, exts []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && savefile.HasExtension(path, exts) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", p, err)
		}
	}
	return files, nil
}
