package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/core"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/artifact"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/iocache"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/observability"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// profile holds profiling configuration.
var profile = &contract.ProfileConfig{}

// Runtime dependencies, wired by sharedSetup.
var (
	clock    clockwork.Clock = clockwork.NewRealClock()
	logger   *slog.Logger    = observability.NewDiscardLogger()
	registry                 = prometheus.NewRegistry()
	metrics  *observability.Metrics
	store    contract.RecordStore
	dataset  *iocache.DatasetCache
	pipeline *core.Pipeline
)

// startProfiling starts CPU and memory profiling if enabled.
func startProfiling() error {
	if !profile.Enabled {
		return nil
	}

	cpuFile, err := os.Create(profile.Prefix + ".cpu.prof")
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		return fmt.Errorf("could not start CPU profiling: %w", err)
	}

	// Memory profiling will be captured at the end
	_, err = fmt.Fprintf(os.Stderr, "Profiling enabled. CPU profile: %s.cpu.prof, Memory profile: %s.mem.prof\n", profile.Prefix, profile.Prefix)
	return err
}

// stopProfiling stops profiling and writes memory profile.
func stopProfiling() error {
	if !profile.Enabled {
		return nil
	}

	pprof.StopCPUProfile()

	memFile, err := os.Create(profile.Prefix + ".mem.prof")
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	defer func() { _ = memFile.Close() }()

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return nil
}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "protokoll",
	Short: "Record neighbourhood disturbances and analyze them.",
	Long: `Protokoll keeps a protocol of disturbances (noise, construction, ...) and turns it
into statistics, charts and a duration forecast.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setConfigSource points viper at an explicit config file or the default search paths.
func setConfigSource() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		return
	}
	viper.SetConfigName(".protokoll") // Name of config file (without extension)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setConfigSource()

	viper.SetEnvPrefix("PROTOKOLL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("db-backend", schema.SQLiteBackend)
	viper.SetDefault("db-connect", "")
	viper.SetDefault("output-dir", contract.DefaultOutputDir)
	viper.SetDefault("horizon", schema.DefaultHorizonDays)
	viper.SetDefault("top-causes", schema.DefaultTopCauses)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
	viper.SetDefault("log-level", contract.DefaultLogLevel)
	viper.SetDefault("log-format", contract.DefaultLogFormat)
}

// readConfigFile loads the config file if present. A missing file is fine.
func readConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// configSetup unmarshals config and runs validation without touching the store.
func configSetup() error {
	if err := contract.ProcessProfilingConfig(profile, viper.GetString("profile")); err != nil {
		return fmt.Errorf("failed to process profiling config: %w", err)
	}
	if err := startProfiling(); err != nil {
		return fmt.Errorf("failed to start profiling: %w", err)
	}

	// 1. Merge defaults, file, env, and flags.
	if err := readConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and parsing into the global cfg.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// Logs go to stderr so stdout stays clean for tables and the MCP protocol.
	logger = observability.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return nil
}

// sharedSetup validates the config, opens the record store and wires the pipeline.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	if err := configSetup(); err != nil {
		return err
	}

	s, err := iocache.NewRecordStore(cfg.DBBackend, cfg.DBConnect)
	if err != nil {
		return fmt.Errorf("failed to initialize record store: %w", err)
	}
	store = s

	if metrics == nil {
		metrics = observability.NewMetrics(registry)
	}
	dataset = iocache.NewDatasetCache(store, core.DeriveRecords, logger, metrics, clock)
	pipeline = core.NewPipeline(dataset, artifact.NewRenderer(cfg.OutputDir), logger, metrics, clock, cfg.HorizonDays, cfg.TopCauses)
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// configSetupWrapper provides PreRunE for commands that must not open the store.
func configSetupWrapper(_ *cobra.Command, _ []string) error {
	return configSetup()
}

// teardown closes the store and flushes metrics and profiles. It is safe to call without setup.
func teardown() error {
	var errs []error
	if store != nil {
		if err := store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close record store: %w", err))
		}
		store = nil
	}
	if metrics != nil {
		if err := observability.WriteTextfile(cfg.MetricsFile, registry); err != nil {
			errs = append(errs, err)
		}
	}
	if err := stopProfiling(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Execute runs the root command and releases every resource opened by it.
func Execute() error {
	err := rootCmd.Execute()
	if tErr := teardown(); tErr != nil {
		logger.Warn("teardown failed", "error", tErr)
	}
	return err
}
