package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"backoffice-api/internal/controller"
	"backoffice-api/internal/pdf"
	"backoffice-api/internal/repo"
	"backoffice-api/internal/repo/memdb"
	"backoffice-api/internal/service"
	"backoffice-api/pkg/http_server"

	"github.com/labstack/echo"
)

// newHandler wires the store, the services and the routes together.
func newHandler(cfg *Config) (*echo.Echo, *service.Services) {
	db := memdb.New()
	repositories := repo.NewRepositories(db)
	services := service.NewServices(repositories, service.Options{
		ClientDeletePolicy: cfg.ClientDeletePolicy,
		Renderer:           pdf.NewReportGenerator(),
	})

	handler := echo.New()
	handler.HideBanner = true
	controller.SetupRoutesHandlers(handler, services, cfg.CorsAllowOrigins)

	return handler, services
}

func Run() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal("Config error: ", err)
	}

	log.Println("Setup routes...")
	handler, services := newHandler(cfg)

	if cfg.SeedFile != "" {
		log.Println("Seeding store from " + cfg.SeedFile + "...")
		if err := loadSeedFile(context.Background(), cfg.SeedFile, services); err != nil {
			log.Fatal(err)
		}
	}

	if cfg.ContractExpirySchedule != "" {
		scheduler, err := startContractExpiry(cfg.ContractExpirySchedule, services.Contract)
		if err != nil {
			log.Fatal("Schedule error: ", err)
		}
		defer scheduler.Stop()
	}

	log.Println("Starting server...")
	httpServer := http_server.New(handler, cfg.ServerAddress, cfg.ShutdownTimeout)

	log.Println("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.Fatal("Notify error: ", err)
	}

	log.Println("Shutting down...")
	err = httpServer.Shutdown()
	if err != nil {
		log.Fatal("Shutdown error: ", err)
	} else {
		log.Println("Successful shutdown")
	}
}
