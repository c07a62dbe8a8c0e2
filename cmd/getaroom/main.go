package main

import (
	"getaroom/internal/bookings/events"
	bookinghandler "getaroom/internal/bookings/handler"
	"getaroom/internal/bookings/service"
	"getaroom/internal/bookings/store"
	"getaroom/internal/bookings/validator"
	"getaroom/internal/rooms/catalog"
	roomhandler "getaroom/internal/rooms/handler"
	roomservice "getaroom/internal/rooms/service"
	"getaroom/pkg/app"
	"getaroom/pkg/config"
	"getaroom/pkg/kafka"
)

const ServiceName = "getaroom"

func main() {
	cfg := config.Load(ServiceName)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	// Log all configuration values
	cfg.LogConfiguration()

	cfg.Log.Info("Starting Get-A-Room service")

	publisher := initPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Warn("Failed to close event publisher", "error", err)
		}
	}()

	bookingService, roomService := initServices(cfg, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		roomhandler.NewHealthHandler(cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
		roomhandler.NewRoomHandler(roomService, bookingService, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, publisher events.Publisher) (service.BookingService, roomservice.RoomService) {
	rooms := catalog.Default()
	bookings := store.NewInMemoryStore()
	bookingValidator := validator.NewBookingValidator(cfg.Log)

	bookingService := service.NewBookingService(
		bookings,
		rooms,
		bookingValidator,
		publisher,
		cfg.Log,
	)
	roomService := roomservice.NewRoomService(rooms, bookings, cfg.Log)

	cfg.Log.Info("Services initialized", "rooms", len(rooms.List()))
	return bookingService, roomService
}

func initPublisher(cfg *config.Config) events.Publisher {
	kafkaCfg := kafka.Load()
	if !kafkaCfg.Enabled() {
		cfg.Log.Info("Kafka publishing disabled, booking events will not be emitted")
		return events.NopPublisher{}
	}

	if err := kafkaCfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	producer, err := kafka.NewProducer(kafkaCfg)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka publisher initialized", "topic", kafkaCfg.Topic)
	return events.NewKafkaPublisher(producer, ServiceName, cfg.Log)
}
