package cmd

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"r2-client/core/config"
	"r2-client/core/database"
	"r2-client/core/journal"
	"r2-client/core/loader"
	"r2-client/core/logger"
	"r2-client/core/middleware/auth"
	"r2-client/core/middleware/rayid"
	"r2-client/core/objectstore"
	"r2-client/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "r2-client/docs/swagger"
)

// @title R2 Client API
// @version 1.0
// @description Upload and delete objects in Cloudflare R2.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP gateway",
	Long:  `Starts the HTTP gateway exposing object puts and deletes.`,
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

		// 3. Journal (Optional)
		var recorder journal.Recorder = journal.Nop{}
		if cfg.Database.Enabled {
			if db, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed, journal disabled", zap.Error(err))
			} else if gr, err := journal.NewGormRecorder(db); err != nil {
				logg.Warn("Journal migration failed, journal disabled", zap.Error(err))
			} else {
				recorder = gr
				logg.Info("Connected to journal database", zap.String("driver", cfg.Database.Driver))
			}
		}

		// 4. Initialize Object Client
		client, err := objectstore.New(cfg.Storage, logg)
		if err != nil {
			logg.Fatal("Failed to create object client", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager()
		mgr.Register(objects.NewFeature(client, recorder, logg))

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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Next: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/swagger")
			},
		}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("driver", cfg.Storage.Driver),
				zap.String("bucket", client.DefaultBucket()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		if err := client.Close(); err != nil {
			logg.Warn("Failed to close object client", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
