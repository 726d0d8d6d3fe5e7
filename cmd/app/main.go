package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/pkg/tracing"

	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	if configs.OtelExporterURL != "" {
		shutdown, err := tracing.InitTracer(context.Background(), configs.TracingConfig())
		if err != nil {
			log.Fatalf("Error initializing tracer: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				logger.Error("tracer shutdown failed", "error", err)
			}
		}()
	}

	gormDB := mustOpenDB(configs)
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:          app.CreateCreateOrderCommandHandler(),
		ProcessOrder:         app.CreateProcessOrderCommandHandler(),
		MarkReadyForDelivery: app.CreateMarkOrderReadyForDeliveryCommandHandler(),
		ServeOrder:           app.CreateServeOrderCommandHandler(),
		CancelOrder:          app.CreateCancelOrderCommandHandler(),
		CreateWaiter:         app.CreateCreateWaiterCommandHandler(),
		CreateEstablishment:  app.CreateCreateEstablishmentCommandHandler(),
		GetOrder:             app.CreateGetOrderQueryHandler(),
		GetAllOrders:         app.CreateGetAllOrdersQueryHandler(),
		GetOrderSummaries:    app.CreateGetOrderSummariesQueryHandler(),
	})

	e, err := httpadapter.NewRouter(server, logger, otel.GetTracerProvider())
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("http server listening", "port", port)
	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
