package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"hubfleet/cmd"
	httpadapter "hubfleet/internal/adapters/in/http"
	"hubfleet/internal/generated/servers"
	"hubfleet/internal/jobs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := runMigrations(configs); err != nil {
		logger.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateGetActiveOrderCountsQueryHandler(),
		configs.ReportJobSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Jobs failed to start", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		MigrationsPath:    goDotEnvVariable("MIGRATIONS_PATH"),
		ReportJobSchedule: goDotEnvVariable("REPORT_JOB_SCHEDULE"),
	}
	if config.MigrationsPath == "" {
		config.MigrationsPath = "file://migrations"
	}
	if config.ReportJobSchedule == "" {
		config.ReportJobSchedule = "0 * * * * *"
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func runMigrations(configs cmd.Config) error {
	m, err := migrate.New(configs.MigrationsPath, configs.PostgresURL())
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
	)

	e := echo.New()
	e.Use(httpadapter.HubScopeMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
