package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	api "github.com/aargomedo/astracore-backend/api"
	"github.com/aargomedo/astracore-backend/archive"
	"github.com/aargomedo/astracore-backend/config"
	"github.com/aargomedo/astracore-backend/database"
	"github.com/aargomedo/astracore-backend/editor"
	"github.com/aargomedo/astracore-backend/kvstore"
	"github.com/aargomedo/astracore-backend/language"
	"github.com/aargomedo/astracore-backend/registry"
	"github.com/aargomedo/astracore-backend/services"
	"github.com/aargomedo/astracore-backend/session"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	// Hosted relational backend: posts and comments only. Projects and
	// local state never touch it.
	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		getEnv("SUPABASE_DB_HOST", ""),
		getEnv("SUPABASE_DB_USER", ""),
		getEnv("SUPABASE_DB_PASSWORD", ""),
		getEnv("SUPABASE_DB_NAME", ""),
		getEnv("SUPABASE_DB_PORT", "5432"),
	)
	fmt.Println("Connecting to Supabase database...")

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	// Local key-value store: language preference, admin flag, project
	// snapshot.
	storePath := config.GetString(cfg, config.KeyLocalStore, config.DefaultLocalStore)
	store, err := kvstore.OpenSQLite(storePath)
	if err != nil {
		fmt.Printf("Error opening local store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	pref := language.New(store)

	reg, err := registry.New(store, registry.DefaultProjects(), zlog.With().Str("component", "registry").Logger())
	if err != nil {
		fmt.Printf("Error loading project registry: %v\n", err)
		os.Exit(1)
	}

	adminUser, adminPass := config.AdminCredentials(cfg)
	if adminUser == config.DefaultAdminUser || adminPass == config.DefaultAdminPass {
		zlog.Warn().Msg("Admin credentials are using insecure defaults")
	}
	gate := session.NewGate(store, adminUser, adminPass, zlog.With().Str("component", "sessionGate").Logger())
	limiter := session.NewLoginLimiter(5, 15*time.Minute)

	ed := editor.New(
		currentDB.PostRepo(),
		currentDB.CommentRepo(),
		gate,
		config.OperatorName(cfg),
		zlog.With().Str("component", "editor").Logger(),
	)

	reader := archive.NewReader(
		currentDB.PostRepo(),
		currentDB.CommentRepo(),
		archive.TwoPane,
		zlog.With().Str("component", "archiveReader").Logger(),
	)

	relay := services.NewFormRelay(config.GetString(cfg, config.KeyFormRelayURL, config.DefaultFormRelayURL))

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(api.Deps{
		DB:       currentDB,
		Gate:     gate,
		Limiter:  limiter,
		Editor:   ed,
		Reader:   reader,
		Registry: reg,
		Language: pref,
		Relay:    relay,
		BaseURL:  config.GetString(cfg, config.KeySiteBaseURL, ""),
	})
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
