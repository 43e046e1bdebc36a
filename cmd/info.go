package cmd

import (
	"fmt"

	"h3sed/core/savefile"
	"h3sed/feature/version"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Show savefile details",
	Long:  `Shows the map name and description, the game version and sizes of a savefile.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	sf, err := savefile.Load(savefile.OSStore{}, args[0], a.manager.Candidates(), a.log)
	if err != nil {
		return err
	}
	v, err := version.Select(a.registry, a.cfg.Catalog, sf.Version, sf.Detected, a.log)
	if err != nil {
		return fmt.Errorf("%s: %w", sf.Name, err)
	}
	detected := "detected"
	if !sf.Detected {
		detected = "assumed"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", sf.Name)
	fmt.Fprintf(out, "Map:         %s\n", sf.MapName)
	fmt.Fprintf(out, "Description: %s\n", sf.MapDescription)
	fmt.Fprintf(out, "Version:     %s (%s)\n", v.Label, detected)
	fmt.Fprintf(out, "Size:        %s, unpacked %s\n", humanize.IBytes(uint64(sf.Size)), humanize.IBytes(uint64(sf.Len())))
	fmt.Fprintf(out, "Modified:    %s (%s)\n", sf.ModTime.Format("2006-01-02 15:04:05"), humanize.Time(sf.ModTime))
	return nil
}
