package service

import (
	"time"

	"getaroom/internal/bookings/store"
	"getaroom/internal/rooms/catalog"
	apperrors "getaroom/pkg/errors"
	"getaroom/pkg/logger"
	"getaroom/pkg/model"
)

type RoomService interface {
	ListWithStatus(now time.Time) ([]model.RoomStatus, error)
	Get(roomID string) (model.Room, bool)
}

type roomService struct {
	catalog *catalog.Catalog
	store   store.BookingStore
	log     *logger.Logger
}

func NewRoomService(rooms *catalog.Catalog, bookings store.BookingStore, log *logger.Logger) RoomService {
	return &roomService{
		catalog: rooms,
		store:   bookings,
		log:     log,
	}
}

// ListWithStatus projects each room's live occupancy from the booking store
// at query time. Occupancy uses the half-open predicate start <= now < end,
// consistent with overlap semantics. A room with more than one occupying
// booking means the no-overlap invariant is broken; that is surfaced as an
// internal error rather than silently picking one.
func (s *roomService) ListWithStatus(now time.Time) ([]model.RoomStatus, error) {
	rooms := s.catalog.List()
	statuses := make([]model.RoomStatus, 0, len(rooms))

	for _, room := range rooms {
		var occupying []*model.Booking
		for _, booking := range s.store.ListByRoom(room.ID) {
			if occupies(booking, now) {
				occupying = append(occupying, booking)
			}
		}

		if len(occupying) > 1 {
			s.log.Error("Room occupancy invariant violated: multiple simultaneous bookings",
				"room_id", room.ID,
				"count", len(occupying),
				"now", now,
			)
			return nil, apperrors.Internal("Room occupancy is inconsistent", nil).WithDetails(map[string]any{
				"room_id": room.ID,
			})
		}

		status := model.RoomStatus{
			Room:          room,
			CurrentStatus: model.StatusAvailable,
		}
		if len(occupying) == 1 {
			current := occupying[0]
			status.CurrentStatus = model.StatusOccupied
			status.CurrentBooking = &model.CurrentBooking{
				ID:        current.ID,
				Title:     current.Title,
				StartTime: current.StartTime,
				EndTime:   current.EndTime,
			}
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

func (s *roomService) Get(roomID string) (model.Room, bool) {
	return s.catalog.Get(roomID)
}

func occupies(booking *model.Booking, now time.Time) bool {
	return !booking.StartTime.After(now) && booking.EndTime.After(now)
}
