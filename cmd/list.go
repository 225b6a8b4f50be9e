package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/pulsar/internal/config"
	"github.com/papapumpkin/pulsar/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the merged catalog by category",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
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
	merged, err := mergeOrReport(printer, catalogs)
	if err != nil {
		return err
	}

	printer.CatalogList(merged)
	return nil
}
