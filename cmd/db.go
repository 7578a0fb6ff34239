package cmd

import (
	"os"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/iocache"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// dbCmd groups the record store maintenance commands.
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Maintain the record store.",
}

// dbStatusCmd shows the record store status.
var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display record store statistics and connection details",
	Long: `Show information about the record store.

Displays:
- Backend type and connection status
- Schema version
- Number of disturbances and remedial actions
- Table size on disk

Examples:
  protokoll db status
  PROTOKOLL_DB_BACKEND=postgresql PROTOKOLL_DB_CONNECT="host=localhost dbname=protokoll" protokoll db status`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		status, err := store.GetStatus()
		if err != nil {
			return err
		}
		iocache.PrintStoreStatus(os.Stdout, status)
		return nil
	},
}

// dbMigrateCmd runs database migrations for the record store.
var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage the schema version of the record store.

By default, migrates to the latest version. Use --target-version for specific versions.
Every other command migrates to the latest version on its own.

Examples:
  # Migrate to latest version (default)
  protokoll db migrate

  # Roll back the remedial action table
  protokoll db migrate --target-version 1

  # Roll back everything
  protokoll db migrate --target-version 0`,
	PreRunE: configSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		report, err := iocache.Migrate(cfg.DBBackend, cfg.DBConnect, viper.GetInt("target-version"))
		if err != nil {
			return err
		}
		iocache.PrintMigrationReport(os.Stdout, report)
		return nil
	},
}
