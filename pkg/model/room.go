package model

import "time"

const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

// Room is immutable: the catalog is fixed at process start and rooms are
// never updated or deleted.
type Room struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Amenities []string `json:"amenities"`
}

// CurrentBooking is the slice of a booking exposed on the status projection.
type CurrentBooking struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// RoomStatus is a derived view, recomputed from live booking data at query
// time and never stored.
type RoomStatus struct {
	Room
	CurrentStatus  string          `json:"currentStatus"`
	CurrentBooking *CurrentBooking `json:"currentBooking,omitempty"`
}
