package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/kwzverify/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	noColor bool
	logJSON bool
)

// Exit codes.
const (
	exitOK         = 0
	exitInvalid    = 1
	exitUnreadable = 2
)

var rootCmd = &cobra.Command{
	Use:   "kwzctl",
	Short: "Verify Flipnote Studio 3D animation files",
	Long: `kwzctl checks KWZ and KWC animation files section by section: every
section magic is identified, every declared length is bounds-checked, and every
CRC-32 is recomputed and compared with the stored value.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log scanner transitions to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit verbose logs as JSON")
}

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func execute() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		printError("%v\n", err)
		os.Exit(exitUnreadable)
	}
}

// newLogger builds the logger selected by the global flags.
func newLogger() *slog.Logger {
	return logger.New(logger.Options{
		Enabled: verbose,
		JSON:    logJSON,
		Level:   slog.LevelDebug,
	})
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}
