package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/pulsar/internal/catalog"
	"github.com/papapumpkin/pulsar/internal/config"
	"github.com/papapumpkin/pulsar/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the catalog merge pre-pass without writing anything",
	Long: "Validate merges every catalog and reports all structural errors:\n" +
		"malformed identifiers, missing fields, and identifier collisions that\n" +
		"would make two catalogs write to the same destination.",
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	catalogs, err := resolveCatalogs(cmd, cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	merged, errs := catalog.Merge(catalogs...)
	if len(errs) > 0 {
		printer.ValidationErrors(errs)
		return fmt.Errorf("catalog validation failed with %d structural error(s)", len(errs))
	}

	printer.ValidationOK(merged)
	return nil
}
