package cmd

import (
	"fmt"
	"os"

	"cmdb-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir holds cmdb-sync.yaml and .env
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cmdb-sync",
	Short: "Asset registry to NetIM comparison",
	Long: `cmdb-sync compares the devices and locations of the asset registry with the
device catalog, site groups and geographic hierarchy of the NetIM monitoring platform.
It reports discrepancies and never writes to either system.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level prints readable timestamps for CLI users
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding cmdb-sync.yaml and .env")
}
