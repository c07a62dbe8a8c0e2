package service

import (
	"testing"
	"time"

	"getaroom/internal/bookings/store"
	"getaroom/internal/rooms/catalog"
	"getaroom/pkg/logger"
	"getaroom/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func insert(s store.BookingStore, roomID string, start, end time.Time) *model.Booking {
	return s.Insert(&model.Booking{
		RoomID:         roomID,
		Title:          "Meeting",
		StartTime:      start,
		EndTime:        end,
		OrganizerEmail: "alice@example.com",
	})
}

func TestListWithStatus_AllAvailable(t *testing.T) {
	svc := NewRoomService(catalog.Default(), store.NewInMemoryStore(), testLogger())

	statuses, err := svc.ListWithStatus(time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ListWithStatus() error = %v", err)
	}

	if len(statuses) != 4 {
		t.Fatalf("expected 4 rooms, got %d", len(statuses))
	}
	for _, status := range statuses {
		if status.CurrentStatus != model.StatusAvailable {
			t.Errorf("room %s: status = %s, want %s", status.ID, status.CurrentStatus, model.StatusAvailable)
		}
		if status.CurrentBooking != nil {
			t.Errorf("room %s: expected no current booking", status.ID)
		}
	}
}

func TestListWithStatus_Occupancy(t *testing.T) {
	bookings := store.NewInMemoryStore()
	svc := NewRoomService(catalog.Default(), bookings, testLogger())

	start := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2030, 6, 1, 11, 0, 0, 0, time.UTC)
	booking := insert(bookings, "room-002", start, end)

	tests := []struct {
		name         string
		now          time.Time
		wantOccupied bool
	}{
		{"before start", start.Add(-time.Minute), false},
		{"exactly at start", start, true},
		{"mid booking", start.Add(30 * time.Minute), true},
		{"exactly at end", end, false},
		{"after end", end.Add(time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statuses, err := svc.ListWithStatus(tt.now)
			if err != nil {
				t.Fatalf("ListWithStatus() error = %v", err)
			}

			var roomStatus *model.RoomStatus
			for i := range statuses {
				if statuses[i].ID == "room-002" {
					roomStatus = &statuses[i]
				} else if statuses[i].CurrentStatus != model.StatusAvailable {
					t.Errorf("room %s should stay available", statuses[i].ID)
				}
			}
			if roomStatus == nil {
				t.Fatal("room-002 missing from projection")
			}

			if tt.wantOccupied {
				if roomStatus.CurrentStatus != model.StatusOccupied {
					t.Errorf("status = %s, want %s", roomStatus.CurrentStatus, model.StatusOccupied)
				}
				if roomStatus.CurrentBooking == nil || roomStatus.CurrentBooking.ID != booking.ID {
					t.Errorf("expected current booking %s, got %+v", booking.ID, roomStatus.CurrentBooking)
				}
			} else {
				if roomStatus.CurrentStatus != model.StatusAvailable {
					t.Errorf("status = %s, want %s", roomStatus.CurrentStatus, model.StatusAvailable)
				}
				if roomStatus.CurrentBooking != nil {
					t.Error("expected no current booking")
				}
			}
		})
	}
}

func TestListWithStatus_InvariantViolation(t *testing.T) {
	bookings := store.NewInMemoryStore()
	svc := NewRoomService(catalog.Default(), bookings, testLogger())

	// Bypass the orchestrator to plant overlapping bookings; the store
	// itself never validates.
	start := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	insert(bookings, "room-001", start, start.Add(time.Hour))
	insert(bookings, "room-001", start.Add(30*time.Minute), start.Add(2*time.Hour))

	_, err := svc.ListWithStatus(start.Add(45 * time.Minute))
	if err == nil {
		t.Fatal("expected an internal error for simultaneous occupying bookings")
	}
}

func TestGet(t *testing.T) {
	svc := NewRoomService(catalog.Default(), store.NewInMemoryStore(), testLogger())

	if _, ok := svc.Get("room-001"); !ok {
		t.Error("expected room-001 to resolve")
	}
	if _, ok := svc.Get("room-999"); ok {
		t.Error("expected unknown room to report absence")
	}
}
