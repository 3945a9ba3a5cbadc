package main

import (
	"context"

	"roomstay/internal/catalog"
	"roomstay/internal/reservations/handler"
	"roomstay/internal/reservations/repository"
	"roomstay/internal/reservations/service"
	"roomstay/internal/reservations/validator"
	"roomstay/pkg/app"
	"roomstay/pkg/config"
	"roomstay/pkg/events"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting reservations service")

	reservationService, publisher := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.SetApp(handler.NewReservationHandler(reservationService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.ReservationService, events.Publisher) {
	var store repository.BookingStore = repository.NopStore{}
	if cfg.MongoEnabled {
		cfg.SetMongo()
		store = repository.NewMongoBookingStore(cfg)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, ServiceName)
		if err != nil {
			cfg.Log.Fatal("Failed to build Kafka publisher", "error", err)
		}
		publisher = kafkaPublisher
		cfg.Log.Info("Event publishing enabled", "topic", cfg.KafkaTopic)
	}

	bookingValidator := validator.NewBookingValidator(cfg.Log)

	reservationService, err := service.NewReservationService(
		context.Background(),
		cfg,
		catalog.Default(),
		store,
		bookingValidator,
		publisher,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize reservation ledger", "error", err)
	}

	cfg.Log.Info("Reservation service initialized", "persistence", cfg.MongoEnabled)
	return reservationService, publisher
}
