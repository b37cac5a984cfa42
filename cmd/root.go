package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"csvview/internal/config"
	"csvview/internal/logx"
	"csvview/internal/tui"
)

var (
	configPath  string
	logFile     string
	rowsPerPage int
)

// runTUI is swapped out in tests
var runTUI = tui.Run

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csvview",
		Short: "View and lightly edit CSV files in the terminal",
		Long: `csvview opens a full-screen table view for CSV files. Load a file
with the built-in file picker, page through rows, search, jump to a row,
filter with expressions, hide columns, edit cells and save back to CSV.`,
		Args: cobra.NoArgs,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. a broken config file)
		SilenceUsage: true,
		RunE:         runRoot,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/csvview/config.yaml)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append the application log to this file")
	cmd.Flags().IntVar(&rowsPerPage, "rows-per-page", 0, "rows per page (overrides the config file)")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if rowsPerPage < 0 {
		return fmt.Errorf("--rows-per-page must be positive, got %d", rowsPerPage)
	}
	if rowsPerPage > 0 {
		cfg.RowsPerPage = rowsPerPage
	}
	logx.SetLevel(logx.ParseLevel(cfg.LogLevel))

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("error opening log file %s: %w", logFile, err)
		}
		defer f.Close()
		logx.SetOutput(f)
		defer logx.SetOutput(nil)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting csvview %s (rows per page %d)", version, cfg.RowsPerPage)
	if err := runTUI(ctx, cfg); err != nil {
		logx.Errorf("csvview exited with error: %v", err)
		return err
	}
	return nil
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "csvview version %s\n" .Version}}`)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
