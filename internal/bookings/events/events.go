package events

import (
	"context"
	"encoding/json"
	"time"

	"getaroom/pkg/kafka"
	"getaroom/pkg/logger"
	"getaroom/pkg/model"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published on booking lifecycle transitions.
type BookingEvent struct {
	Type           string    `json:"type"`
	BookingID      string    `json:"bookingId"`
	RoomID         string    `json:"roomId"`
	Title          string    `json:"title"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	OrganizerEmail string    `json:"organizerEmail"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// Publisher emits booking lifecycle events. Publishing is a side effect:
// failures must never fail the booking operation itself.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking) error
	BookingCancelled(ctx context.Context, booking *model.Booking) error
	Close() error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	source   string
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, source string, log *logger.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		source:   source,
		log:      log,
	}
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) error {
	return p.publish(ctx, EventBookingCreated, booking)
}

func (p *kafkaPublisher) BookingCancelled(ctx context.Context, booking *model.Booking) error {
	return p.publish(ctx, EventBookingCancelled, booking)
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType string, booking *model.Booking) error {
	event := BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		RoomID:         booking.RoomID,
		Title:          booking.Title,
		StartTime:      booking.StartTime,
		EndTime:        booking.EndTime,
		OrganizerEmail: booking.OrganizerEmail,
		OccurredAt:     time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Key by room id so events for one room stay ordered.
	return p.producer.Publish(ctx, kafka.Message{
		Key:   booking.RoomID,
		Value: value,
		Headers: map[string]string{
			kafka.HeaderEventType: eventType,
			kafka.HeaderSource:    p.source,
		},
	})
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) BookingCreated(ctx context.Context, booking *model.Booking) error   { return nil }
func (NopPublisher) BookingCancelled(ctx context.Context, booking *model.Booking) error { return nil }
func (NopPublisher) Close() error                                                       { return nil }
