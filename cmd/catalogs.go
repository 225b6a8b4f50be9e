package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/pulsar/internal/catalog"
	"github.com/papapumpkin/pulsar/internal/config"
	"github.com/papapumpkin/pulsar/internal/ui"
)

// resolveCatalogs assembles the set of catalogs for this invocation:
// built-ins (unless excluded) plus any TOML catalogs from config or flags.
func resolveCatalogs(cmd *cobra.Command, cfg config.Config) ([]*catalog.Catalog, error) {
	var catalogs []*catalog.Catalog

	noBuiltin, _ := cmd.Flags().GetBool("no-builtin")
	if cfg.Builtin && !noBuiltin {
		catalogs = append(catalogs, catalog.Builtin()...)
	}

	paths, _ := cmd.Flags().GetStringSlice("catalog")
	paths = append(append([]string{}, cfg.CatalogPaths...), paths...)
	loaded, err := catalog.LoadAll(paths)
	if err != nil {
		return nil, err
	}
	catalogs = append(catalogs, loaded...)

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("no catalogs: built-ins excluded and no --catalog given")
	}
	return catalogs, nil
}

// mergeOrReport merges catalogs, printing every structural error. A non-nil
// error means the run must not proceed: the merge pre-pass rejects duplicate
// destinations and malformed identifiers before anything is written.
func mergeOrReport(printer *ui.Printer, catalogs []*catalog.Catalog) (*catalog.Catalog, error) {
	merged, errs := catalog.Merge(catalogs...)
	if len(errs) > 0 {
		printer.ValidationErrors(errs)
		return nil, fmt.Errorf("catalog validation failed with %d structural error(s)", len(errs))
	}
	return merged, nil
}
