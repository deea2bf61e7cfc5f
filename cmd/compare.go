package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cmdb-sync/core/config"
	"cmdb-sync/core/logger"
	"cmdb-sync/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	devicesCSV      string
	locationsCSV    string
	useBucket       bool
	devicesObject   string
	locationsObject string
	useDatabase     bool
	serviceNowYML   string
	netimYML        string
	summaryOutput   bool
	jsonOutput      bool
)

// compareCmd runs one comparison and prints the report.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the asset registry with NetIM and print a report",
	Long: `Compare registry devices and locations with the NetIM device catalog, site groups
and geographic hierarchy. Nothing is written to either system.

The registry is read from local CSV exports by default. Use --bucket to read the
exports from object storage, --cmdb-db for the MySQL registry mirror or
--servicenow-yml for the ServiceNow table API.

Examples:
  # Compare local CSV exports
  compare --devices-csv devices.csv --locations-csv locations.csv --netim-yml netim.yml

  # Compare exports stored in the bucket, only listing the first names per section
  compare --bucket --summary

  # Read the registry from ServiceNow and print JSON
  compare --servicenow-yml servicenow.yml --netim-yml netim.yml --json`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&devicesCSV, "devices-csv", "", "Path to the registry devices CSV export")
	compareCmd.Flags().StringVar(&locationsCSV, "locations-csv", "", "Path to the registry locations CSV export")
	compareCmd.Flags().BoolVar(&useBucket, "bucket", false, "Read the CSV exports from the storage bucket")
	compareCmd.Flags().StringVar(&devicesObject, "devices-object", "", "Object name of the devices export in the bucket")
	compareCmd.Flags().StringVar(&locationsObject, "locations-object", "", "Object name of the locations export in the bucket")
	compareCmd.Flags().BoolVar(&useDatabase, "cmdb-db", false, "Read the registry from the MySQL mirror database")
	compareCmd.Flags().StringVar(&serviceNowYML, "servicenow-yml", "", "ServiceNow credentials and filters file; reads the registry from the table API")
	compareCmd.Flags().StringVar(&netimYML, "netim-yml", "", "NetIM credentials file")
	compareCmd.Flags().BoolVar(&summaryOutput, "summary", false, "Only list the first names of each section")
	compareCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyCompareFlags(cfg)

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	svc, err := buildService(cfg, credentialFiles{netim: netimYML, serviceNow: serviceNowYML}, logg)
	if err != nil {
		return err
	}

	report, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if err := compare.Render(out, report, compare.RenderOptions{
		Summary: summaryOutput,
		Limit:   cfg.Inventory.ReportLimit,
	}); err != nil {
		logg.Error("Failed to write report", zap.Error(err))
		return err
	}
	return nil
}

// applyCompareFlags lets command line flags override the configured source.
func applyCompareFlags(cfg *config.Config) {
	inv := &cfg.Inventory
	if devicesCSV != "" {
		inv.DevicesPath = devicesCSV
	}
	if locationsCSV != "" {
		inv.LocationsPath = locationsCSV
	}
	if devicesObject != "" {
		inv.DevicesObject = devicesObject
	}
	if locationsObject != "" {
		inv.LocationsObject = locationsObject
	}

	switch {
	case serviceNowYML != "":
		inv.Source = config.SourceAPI
	case useDatabase:
		inv.Source = config.SourceDatabase
	case useBucket:
		inv.Source = config.SourceBucket
	case devicesCSV != "" || locationsCSV != "":
		inv.Source = config.SourceCSV
	}
}
