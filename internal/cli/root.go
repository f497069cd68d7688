package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/infra/config"
	"github.com/aalvaropc/orchard/internal/infra/logger"
	"github.com/aalvaropc/orchard/internal/infra/workspacefinder"
	"github.com/aalvaropc/orchard/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	closeLogger()
	if err != nil {
		os.Exit(1)
	}
}

var loggerCleanup func() error

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string
	var inventory string

	cmd := &cobra.Command{
		Use:          "orchard",
		Short:        "Filter apple inventories with composable predicates",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(debug)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			inventoryPath, err := resolveInventoryPath(ws, inventory)
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Inventories:    ws.inventories,
				InventoryPath:  inventoryPath,
				HeavyThreshold: ws.cfg.Defaults.HeavyThreshold,
				Logger:         logger.L(),
				Debug:          debug,
				LogPath:        ws.cfg.LogPath(ws.root),
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level with source locations (overrides logging.level)")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&inventory, "inventory", "i", "", "Inventory to browse (optional; defaults to workspace default inventory)")

	cmd.AddCommand(
		filterCmd(),
		validateCmd(),
		inventoriesCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogger only logs inside a workspace; elsewhere the logger stays a discard logger.
// A broken orchard.yaml still gets a log with default settings so the
// failure that follows can be recorded.
func setupLogger(debug bool) {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return
	}

	cfg, cfgErr := config.LoadConfig(filepath.Join(root, domain.ConfigFileName))
	if cfgErr != nil {
		cfg = domain.DefaultConfig()
	}

	cleanup, err := logger.Setup(root, cfg, debug)
	if err != nil {
		return
	}
	loggerCleanup = cleanup

	if cfgErr != nil {
		logger.L().Warn("config.load_failed", "root", root, "err", cfgErr)
	}
}

func closeLogger() {
	if loggerCleanup != nil {
		_ = loggerCleanup()
		loggerCleanup = nil
	}
}
