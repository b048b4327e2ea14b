package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/survey-platform/internal/api/middleware"
	"github.com/linskybing/survey-platform/internal/api/routes"
	"github.com/linskybing/survey-platform/internal/application"
	"github.com/linskybing/survey-platform/internal/config"
	"github.com/linskybing/survey-platform/internal/config/db"
	"github.com/linskybing/survey-platform/internal/config/logger"
	"github.com/linskybing/survey-platform/internal/llm"
	"github.com/linskybing/survey-platform/internal/publish"
	"github.com/linskybing/survey-platform/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var skipMigrate bool

var rootCmd = &cobra.Command{
	Use:   "survey-api",
	Short: "AI assisted survey platform API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig()
		if err := logger.Init(config.LogLevel, config.LogDev); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		middleware.Init()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db.Init()
		if err := db.Migrate(db.DB); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Log.Info("database migrated")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not migrate the schema on startup")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// @title Survey Platform API
// @version 1.0
// @description AI assisted survey builder: form generation, protected forms, response collection and analysis.
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Form access token as "Bearer <token>".
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	db.Init()
	if !skipMigrate {
		if err := db.Migrate(db.DB); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if !middleware.TokensEnabled() {
		logger.SLog.Warn("JWT_SECRET is not set: form access tokens are disabled, protected forms need their password")
	}

	deps := buildDeps(ctx)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(config.CORSAllowedOrigins))
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB, deps)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("Starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Log.Info("Shutting down API server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildDeps wires the optional integrations. Each one that cannot be set up is
// logged and left out so the rest of the API keeps working.
func buildDeps(ctx context.Context) application.Deps {
	deps := application.Deps{Options: application.OptionsFromConfig()}

	gemini, err := llm.NewGeminiClient(ctx, config.GeminiAPIKey, config.GeminiModel)
	if err != nil {
		logger.Log.Warn("AI generation disabled", zap.Error(err))
	} else {
		deps.Generator = gemini
		logger.Log.Info("Gemini client ready", zap.String("model", gemini.Model()))
	}

	if config.MinioEndpoint != "" {
		archive, err := storage.NewMinioArchive(ctx, storage.MinioOptions{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			UseSSL:    config.MinioUseSSL,
			Bucket:    config.MinioBucket,
		})
		if err != nil {
			logger.Log.Warn("analysis archive disabled", zap.Error(err))
		} else {
			deps.Archive = archive
		}
	}

	if config.GoogleFormsCredentials != "" {
		publisher, err := publish.NewGoogleFormsPublisher(ctx, config.GoogleFormsCredentials)
		if err != nil {
			logger.Log.Warn("Google Forms publishing disabled", zap.Error(err))
		} else {
			deps.Publisher = publisher
		}
	}

	return deps
}
