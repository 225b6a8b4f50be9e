package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/pulsar/internal/catalog"
	"github.com/papapumpkin/pulsar/internal/config"
	"github.com/papapumpkin/pulsar/internal/scaffold"
	"github.com/papapumpkin/pulsar/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever a catalog file changes",
	Long: "Watch runs an initial generation, then monitors the given catalog files\n" +
		"and directories for changes and reruns generation on each change. The\n" +
		"completeness gate makes reruns idempotent, so repeated regeneration is\n" +
		"safe for untouched scaffolds.",
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("root", "", "output directory (default from config: patterns)")
	watchCmd.Flags().Int("threshold", 0, "completeness threshold (default from config: 3)")
	watchCmd.Flags().Bool("force", false, "bypass the completeness gate on every rerun")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	printer.Banner()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	paths, _ := cmd.Flags().GetStringSlice("catalog")
	paths = append(append([]string{}, cfg.CatalogPaths...), paths...)
	if len(paths) == 0 {
		return fmt.Errorf("watch requires at least one --catalog file or directory")
	}

	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		root = cfg.Root
	}
	threshold, _ := cmd.Flags().GetInt("threshold")
	if threshold <= 0 {
		threshold = cfg.Threshold
	}
	force, _ := cmd.Flags().GetBool("force")

	regenerate := func() {
		catalogs, err := resolveCatalogs(cmd, cfg)
		if err != nil {
			printer.Error(err.Error())
			return
		}
		merged, errs := catalog.Merge(catalogs...)
		if len(errs) > 0 {
			// Structural errors block this pass but not the watch loop;
			// the next edit gets another chance.
			printer.ValidationErrors(errs)
			return
		}
		runner := &scaffold.Runner{
			Root:      root,
			Threshold: threshold,
			Force:     force,
			Reporters: []scaffold.Reporter{printer},
		}
		runner.Run(merged)
	}

	regenerate()

	dirs, err := watchDirs(paths)
	if err != nil {
		return err
	}
	watcher, err := catalog.NewWatcher(dirs)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer.Info(fmt.Sprintf("watching %d director(y/ies) for catalog changes...", len(dirs)))
	for {
		select {
		case <-ctx.Done():
			watcher.Stop()
			printer.Info("watch stopped")
			return nil
		case change, ok := <-watcher.Changes:
			if !ok {
				return nil
			}
			printer.Info("catalog changed: " + change.File)
			regenerate()
		}
	}
}

// watchDirs maps catalog paths to the set of directories to watch: a
// directory watches itself, a file watches its parent.
func watchDirs(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("catalog path %s: %w", p, err)
		}
		dir := p
		if !info.IsDir() {
			dir = filepath.Dir(p)
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}
