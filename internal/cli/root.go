package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vdobler/shipdash"
)

// rootCmd builds the dashboard; it takes no arguments.
var rootCmd = &cobra.Command{
	Use:   "shipdash",
	Short: "Build a static HTML dashboard of the shipping dataset",
	Long: `shipdash reads files/input/shipping-data.csv, draws four charts of the
shipments (per warehouse block, per shipment mode, customer rating per mode
and weight distribution) and writes them together with index.html into docs.

The page title, the number of weight bins, the rating threshold and the log
level can be set in an optional shipdash.yaml in the working directory.`,
	Version:       getVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := shipdash.LoadConfig("")
		if err != nil {
			return err
		}
		initLogging(cfg.LogLevel, cmd.ErrOrStderr())
		_, err = shipdash.Run(*cfg)
		return err
	},
}

// Execute runs the root command. A failure is always reported on the
// command's error output, whatever the log level.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

// initLogging configures the global logger
func initLogging(level string, w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	if w == nil {
		w = os.Stderr
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
}

// getVersion returns the version information
func getVersion() string {
	// This will be populated by build-time variables
	var (
		version = "dev"
		commit  = "unknown"
	)

	return fmt.Sprintf("%s (commit: %s)", version, commit)
}
