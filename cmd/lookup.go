package cmd

import (
	"fmt"
	"strconv"

	"h3sed/core/registry"

	"github.com/spf13/cobra"
)

var lookupVersion string

var lookupCmd = &cobra.Command{
	Use:   "lookup CATEGORY NAME|ID",
	Short: "Translate between entity names and savefile codes",
	Long: `Looks up the savefile code of a named entity, or the name of a code.
Codes are given in decimal or with a 0x prefix.

Examples:
  lookup artifacts "Helm of Chaos"
  lookup creatures 0x0D --version hota`,
	Args: cobra.ExactArgs(2),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupVersion, "version", "sod", "Game version to look up in")
	RootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	category, err := registry.ParseCategory(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if code, err := strconv.ParseUint(args[1], 0, 64); err == nil {
		name, err := a.registry.LookupName(category, lookupVersion, registry.EntityID(code))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, name)
		return nil
	}

	id, err := a.registry.LookupID(category, lookupVersion, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (%d)\n", id, uint64(id))
	return nil
}
