// Package cmd defines the command-line interface for protokoll.
package cmd

import (
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(artifactsCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(actionCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventListCmd)
	actionCmd.AddCommand(actionAddCmd)
	actionCmd.AddCommand(actionListCmd)
	dbCmd.AddCommand(dbStatusCmd)
	dbCmd.AddCommand(dbMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("db-backend", string(schema.SQLiteBackend), "Record store backend: sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string (sqlite file path, or e.g. user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("output-dir", contract.DefaultOutputDir, "Directory receiving the chart files")
	rootCmd.PersistentFlags().Int("horizon", schema.DefaultHorizonDays, "Number of days to forecast")
	rootCmd.PersistentFlags().Int("top-causes", schema.DefaultTopCauses, "Number of causes in the ranked cause chart and table")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("log-format", contract.DefaultLogFormat, "Log format: text or json")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this textfile after each command")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Flags of the entry commands are read directly and never come from config or env.
	eventAddCmd.Flags().String("date", "", "Date as DD-MM-YYYY (default today)")
	eventAddCmd.Flags().String("begin", "", "Begin time as HH:MM (default now)")
	eventAddCmd.Flags().String("end", "", "End time as HH:MM (default now)")
	eventAddCmd.Flags().String("cause", "", "Cause of the disturbance")
	eventAddCmd.Flags().String("responsible", "", "Responsible party")
	eventAddCmd.Flags().Int("impact", 3, "Impact from 1 (low) to 5 (severe)")

	actionAddCmd.Flags().String("period", "", "Period the action covers")
	actionAddCmd.Flags().String("description", "", "What was done")
	actionAddCmd.Flags().String("outcome", "", "What came of it")

	exportCmd.Flags().String("file", "", "Output file path (base name for parquet)")

	// Bind all flags of dbMigrateCmd to Viper
	dbMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(dbMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding db migrate flags", err)
	}
}
