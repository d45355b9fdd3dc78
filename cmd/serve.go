package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpupo63/devfolio-backend/api"
	"github.com/rpupo63/devfolio-backend/auth"
	"github.com/rpupo63/devfolio-backend/cache"
	"github.com/rpupo63/devfolio-backend/config"
	"github.com/rpupo63/devfolio-backend/database"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rpupo63/devfolio-backend/models"
	"github.com/rpupo63/devfolio-backend/services"
	"github.com/rpupo63/devfolio-backend/storage"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, gormDB, err := openDatabase(ctx)
		if err != nil {
			return fmt.Errorf("error connecting to database: %w", err)
		}
		if config.GetBool(cfg, "DB_AUTO_MIGRATE", false) {
			if err := models.Migrate(gormDB); err != nil {
				return fmt.Errorf("error migrating database: %w", err)
			}
		}
		db := database.New(gormDB)

		secret := config.GetString(cfg, "SUPABASE_JWT_SECRET", "")
		if secret == "" {
			return errs.NewEnvironmentVariableError("SUPABASE_JWT_SECRET")
		}

		store, err := newStore(ctx, cfg)
		if err != nil {
			return err
		}

		deps := api.Dependencies{
			Services:      services.New(db, cache.New(config.GetSeconds(cfg, "QUERY_CACHE_TTL_SECONDS", 60))),
			Authenticator: auth.NewAuthenticator(secret, config.GetString(cfg, "SUPABASE_JWT_AUDIENCE", ""), db.UserRoleRepo()),
			Store:         store,
			GitHub: services.NewGitHubClient(ctx,
				config.GetString(cfg, "GITHUB_API_URL", services.DefaultGitHubAPIURL),
				config.GetString(cfg, "GITHUB_TOKEN", "")),
		}

		server, err := api.NewServer(cfg, deps)
		if err != nil {
			return fmt.Errorf("error initializing server: %w", err)
		}

		errChannel := make(chan error, 2)
		go server.Start(errChannel)
		go listenToInterrupt(errChannel)

		fatalErr := <-errChannel
		log.Info().Msgf("Closing server: %v", fatalErr)

		server.ShutdownGracefully(config.GetSeconds(cfg, "SHUTDOWN_TIMEOUT_SECONDS", 30))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// newStore picks the object store from STORAGE_BACKEND: "s3" (default) talks to the Supabase
// storage endpoint, "local" keeps files under STORAGE_LOCAL_DIR and serves them itself.
func newStore(ctx context.Context, cfg map[string]string) (storage.Store, error) {
	supabaseURL := config.GetString(cfg, "SUPABASE_URL", "")

	switch backend := config.GetString(cfg, "STORAGE_BACKEND", "s3"); backend {
	case "local":
		baseURL := config.GetString(cfg, "PUBLIC_BASE_URL", "http://localhost:"+config.GetString(cfg, "PORT", "8080"))
		dir := config.GetString(cfg, "STORAGE_LOCAL_DIR", "uploads")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errs.NewConfigError("STORAGE_LOCAL_DIR", err)
		}
		log.Info().Str("dir", dir).Msg("Storing uploads locally")
		return storage.NewLocalStore(dir, baseURL), nil
	case "s3":
		endpoint := config.GetString(cfg, "STORAGE_S3_ENDPOINT", "")
		if endpoint == "" && supabaseURL != "" {
			endpoint = supabaseURL + "/storage/v1/s3"
		}
		return storage.NewS3Store(ctx, storage.S3Options{
			Endpoint:        endpoint,
			Region:          config.GetString(cfg, "STORAGE_S3_REGION", "us-east-1"),
			AccessKeyID:     config.GetString(cfg, "STORAGE_S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: config.GetString(cfg, "STORAGE_S3_SECRET_ACCESS_KEY", ""),
			PublicBaseURL:   supabaseURL,
		})
	default:
		return nil, errs.NewConfigError("STORAGE_BACKEND", fmt.Errorf("unsupported STORAGE_BACKEND %q", backend))
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

