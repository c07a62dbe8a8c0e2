package model

import "time"

// Booking is immutable once created; cancellation (removal) is the only
// post-creation transition. StartTime < EndTime is enforced at creation and
// intervals are half-open: [StartTime, EndTime).
type Booking struct {
	ID             string    `json:"id"`
	RoomID         string    `json:"roomId"`
	Title          string    `json:"title"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	OrganizerEmail string    `json:"organizerEmail"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateBookingRequest is the inbound payload for booking creation.
// Timestamps are RFC3339 instants on the wire.
type CreateBookingRequest struct {
	RoomID         string    `json:"roomId" validate:"required"`
	Title          string    `json:"title" validate:"required,min=1,max=200"`
	StartTime      time.Time `json:"startTime" validate:"required"`
	EndTime        time.Time `json:"endTime" validate:"required"`
	OrganizerEmail string    `json:"organizerEmail" validate:"required,email"`
}
