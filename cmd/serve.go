package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"cmdb-sync/core/config"
	"cmdb-sync/core/loader"
	"cmdb-sync/core/logger"
	"cmdb-sync/core/middleware/auth"
	"cmdb-sync/core/middleware/rayid"
	"cmdb-sync/feature/compare"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title cmdb-sync API
// @version 1.0
// @description Compares the asset registry with the NetIM monitoring platform.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve comparison reports over HTTP",
	Long:  `Starts the HTTP server exposing comparison reports under /compare.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build the comparison service
		if serviceNowYML != "" {
			cfg.Inventory.Source = config.SourceAPI
		}
		svc, err := buildService(cfg, credentialFiles{netim: netimYML, serviceNow: serviceNowYML}, logg)
		if err != nil {
			logg.Fatal("Failed to initialize comparison", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(compare.NewFeature(svc))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serviceNowYML, "servicenow-yml", "", "ServiceNow credentials and filters file; reads the registry from the table API")
	serveCmd.Flags().StringVar(&netimYML, "netim-yml", "", "NetIM credentials file")
	RootCmd.AddCommand(serveCmd)
}
