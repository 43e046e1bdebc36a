package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List supported game versions",
	Long:  `Lists the loaded game versions in detection order with their byte signatures.`,
	Args:  cobra.NoArgs,
	RunE:  runVersions,
}

func init() {
	RootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	out := cmd.OutOrStdout()
	for _, p := range a.manager.Plugins() {
		props := p.Props()
		sig := p.Signature()
		labels := make([]string, 0, len(sig))
		for label := range sig {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		ranges := make([]string, len(labels))
		for i, label := range labels {
			r := sig[label]
			ranges[i] = fmt.Sprintf("%s=%s..%s", label, bound(r.Min), bound(r.Max))
		}
		fmt.Fprintf(out, "%-8s %-24s priority %-3d %s\n", props.Name, props.Label, props.Priority, strings.Join(ranges, " "))
	}
	return nil
}

func bound(v int) string {
	if v < 0 {
		return "*"
	}
	return fmt.Sprint(v)
}
