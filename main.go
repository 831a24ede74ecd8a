package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/api"
	"github.com/rpupo63/portfolio-cms-backend/config"
	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/services"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	setupLogger(cfg)

	log.Info().Msg("Initializing app...")

	dbOpts, err := database.OptionsFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid database configuration")
	}
	log.Info().Str("dbType", dbOpts.Type).Msg("Connecting to database...")

	db, err := database.Open(dbOpts)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// If generating models, run generation and exit
	if config.GetBool(cfg, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db, os.Stdout, "./generated"); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if config.GetBool(cfg, "GENERATE_COLUMN_REPORT", false) {
		log.Info().Msg("Generating column mismatch report...")
		if _, err := models.GenerateColumnMismatchReport(db, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("Error generating column report")
		}
		return
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Error migrating database")
	}

	currentDB := database.New(db)

	svcs, err := buildServices(ctx, cfg, currentDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing services")
	}
	if err := svcs.Auth.BootstrapDefaultAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("Error creating default admin")
	}

	var sweeperDone <-chan struct{}
	if interval := config.GetDuration(cfg, "SESSION_SWEEP_INTERVAL", 0); interval > 0 {
		sweeperDone = services.StartSessionSweeper(ctx, currentDB.SessionRepo(), interval,
			log.With().Str("component", "sessionSweeper").Logger())
	}

	errChannel := make(chan error, 2)

	server, err := api.NewServer(cfg, currentDB, svcs)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)

	cancel()
	if sweeperDone != nil {
		<-sweeperDone
	}
	closeDB(db)
}

func setupLogger(cfg map[string]string) {
	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(cfg, "LOG_LEVEL", "info")))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(cfg, "LOG_FORMAT", "json") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// buildServices wires the auth service and the optional upload and error
// notification integrations.
func buildServices(ctx context.Context, cfg map[string]string, db database.Database) (api.Services, error) {
	hasher, err := services.NewHasher(config.GetString(cfg, "PASSWORD_HASH", ""))
	if err != nil {
		return api.Services{}, err
	}

	svcs := api.Services{
		Auth: services.NewAuthService(db.AdminUserRepo(), db.SessionRepo(),
			services.WithHasher(hasher),
			services.WithSessionTTL(time.Duration(config.GetInt(cfg, "SESSION_TTL_HOURS", 24))*time.Hour),
		),
	}

	if bucket := config.GetString(cfg, "S3_BUCKET", ""); bucket != "" {
		region := config.GetString(cfg, "S3_REGION", config.GetString(cfg, "AWS_REGION", ""))
		client, err := services.NewS3Client(ctx, services.S3Options{
			Region:          region,
			Endpoint:        config.GetString(cfg, "S3_ENDPOINT", ""),
			AccessKeyID:     config.GetString(cfg, "S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: config.GetString(cfg, "S3_SECRET_ACCESS_KEY", ""),
		})
		if err != nil {
			return api.Services{}, err
		}
		svcs.Uploader = services.NewUploader(client, bucket, region, config.GetString(cfg, "S3_PUBLIC_URL", ""))
		log.Info().Str("bucket", bucket).Msg("Uploads enabled")
	}

	if apiKey := config.GetString(cfg, "RESEND_API_KEY", ""); apiKey != "" {
		notifier, err := services.NewErrorNotifier(apiKey,
			config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
			config.GetList(cfg, "ERROR_NOTIFY_EMAILS", nil),
		)
		if err != nil {
			return api.Services{}, err
		}
		svcs.Notifier = notifier
		log.Info().Msg("Error notifications enabled")
	}

	return svcs, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database")
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
