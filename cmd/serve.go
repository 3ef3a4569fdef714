package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"cutter/core/config"
	"cutter/core/logger"
	"cutter/core/storage"
	"cutter/feature/pipeline"
	"cutter/feature/transform"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// batchRequest is the trigger payload: which bucket (and optionally
// which prefix) to regenerate thumbnails for.
type batchRequest struct {
	Bucket string `json:"bucket"`
	Prefix string `json:"prefix"`
}

// serveCmd runs the HTTP trigger: a single endpoint that starts a
// fetch+transform+publish batch for a bucket prefix.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an HTTP endpoint that triggers batch runs",
	Long: `Starts an HTTP server exposing POST /api/batch. A request body of
{"bucket": "...", "prefix": "..."} fetches that gallery, regenerates all
thumbnails and publishes them back. Triggered runs always clean the
working directory and overwrite existing derivatives.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
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

		// 3. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// API key guard (disabled when no key is configured)
		app.Use(func(c *fiber.Ctx) error {
			if cfg.Server.ApiKey != "" && c.Get("X-Api-Key") != cfg.Server.ApiKey {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid api key"})
			}
			return c.Next()
		})

		specs, err := transform.ParseCropSpecs(defaultSizes)
		if err != nil {
			logg.Fatal("Invalid default sizes", zap.Error(err))
		}

		app.Post("/api/batch", func(c *fiber.Ctx) error {
			var req batchRequest
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
			}
			if req.Bucket == "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing bucket name"})
			}

			l := logg.With(
				zap.String("run_id", uuid.NewString()),
				zap.String("bucket", req.Bucket),
				zap.String("prefix", req.Prefix),
			)
			l.Info("Batch triggered")

			runCfg := pipeline.Config{
				FilesPath:   defaultWorkDir + "/" + req.Prefix,
				WorkDir:     defaultWorkDir,
				Specs:       specs,
				Bucket:      req.Bucket,
				Region:      cfg.Storage.Region,
				Prefix:      req.Prefix,
				FetchRemote: true,
				Overwrite:   true,
				Clean:       true,
			}

			manifest, err := pipeline.New(store, l).Run(c.Context(), runCfg)
			if err != nil {
				l.Error("Batch failed", zap.Error(err))
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}

			l.Info("Batch complete", zap.Int("artifacts", len(manifest)))
			return c.JSON(fiber.Map{"message": "Success!", "artifacts": len(manifest)})
		})

		// 5. Start Server
		go func() {
			logg.Info("Starting trigger server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
