package cmd

import (
	"h3sed/core/registry"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var catalogVersion string

var catalogCmd = &cobra.Command{
	Use:   "catalog CATEGORY [SUBCATEGORY]",
	Short: "Print a registered table as YAML",
	Long: `Prints one table of the registry. Without a subcategory the full name list
of the category is printed.

Examples:
  catalog artifacts helm
  catalog artifacts stats --version hota
  catalog spells "Tome of Fire"
  catalog creatures ids`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogVersion, "version", "sod", "Game version of the table")
	RootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	category, err := registry.ParseCategory(args[0])
	if err != nil {
		return err
	}
	var sub []registry.Subcategory
	if len(args) == 2 {
		sub = append(sub, registry.Subcategory(args[1]))
	}

	table, err := a.registry.Resolve(category, catalogVersion, sub...)
	if err != nil {
		return err
	}

	var doc any = table
	if ids, ok := table.(*registry.IDTable); ok {
		codes := make(map[string]string, ids.Len())
		for name, id := range ids.Map() {
			codes[name] = id.String()
		}
		doc = codes
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
