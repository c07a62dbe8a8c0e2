package service

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingserrors "getaroom/internal/bookings/errors"
	"getaroom/internal/bookings/events"
	"getaroom/internal/bookings/store"
	"getaroom/internal/bookings/validator"
	"getaroom/internal/rooms/catalog"
	apperrors "getaroom/pkg/errors"
	"getaroom/pkg/logger"
	"getaroom/pkg/model"
	"getaroom/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
	ListForRoom(ctx context.Context, roomID string) ([]*model.Booking, error)
	IsAvailable(roomID string, start, end time.Time, excludeBookingID string) bool
}

type bookingService struct {
	store     store.BookingStore
	catalog   *catalog.Catalog
	validator *validator.BookingValidator
	publisher events.Publisher
	log       *logger.Logger
	locks     roomLocks
}

func NewBookingService(
	bookings store.BookingStore,
	rooms *catalog.Catalog,
	bookingValidator *validator.BookingValidator,
	publisher events.Publisher,
	log *logger.Logger,
) BookingService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &bookingService{
		store:     bookings,
		catalog:   rooms,
		validator: bookingValidator,
		publisher: publisher,
		log:       log,
	}
}

// roomLocks hands out one mutex per room id so check-then-insert runs as a
// critical section per room while distinct rooms proceed concurrently.
type roomLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *roomLocks) forRoom(roomID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := l.locks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[roomID] = lock
	}
	return lock
}

// Create runs the full booking pipeline: sanitize, validate times, resolve
// the room, check availability, insert. The first failure short-circuits and
// no partial state is committed.
func (s *bookingService) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	s.sanitize(req)

	if err := s.validator.ValidateRequest(req); err != nil {
		s.log.Warn("Booking validation failed", "room_id", req.RoomID, "error", err)
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, apperrors.Validation("Invalid booking request", map[string]any{
				"error": validationErrs.Error(),
			})
		}
		return nil, err
	}

	if _, ok := s.catalog.Get(req.RoomID); !ok {
		return nil, bookingserrors.RoomNotFound(req.RoomID)
	}

	lock := s.locks.forRoom(req.RoomID)
	lock.Lock()
	defer lock.Unlock()

	if !s.IsAvailable(req.RoomID, req.StartTime, req.EndTime, "") {
		return nil, bookingserrors.SlotUnavailable(req.StartTime, req.EndTime)
	}

	booking := s.store.Insert(&model.Booking{
		RoomID:         req.RoomID,
		Title:          req.Title,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		OrganizerEmail: req.OrganizerEmail,
	})

	s.log.Info("Booking created successfully",
		"id", booking.ID,
		"room_id", booking.RoomID,
		"start_time", booking.StartTime,
		"end_time", booking.EndTime,
	)

	if err := s.publisher.BookingCreated(ctx, booking); err != nil {
		s.log.Warn("Failed to publish booking created event", "id", booking.ID, "error", err)
	}

	return booking, nil
}

// Cancel removes the booking. A booking that disappears between lookup and
// removal surfaces as not found rather than corrupting state.
func (s *bookingService) Cancel(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, ok := s.store.Get(bookingID)
	if !ok {
		return bookingserrors.BookingNotFound(bookingID)
	}

	lock := s.locks.forRoom(booking.RoomID)
	lock.Lock()
	removed := s.store.Remove(bookingID)
	lock.Unlock()

	if !removed {
		return bookingserrors.BookingNotFound(bookingID)
	}

	s.log.Info("Booking cancelled", "id", bookingID, "room_id", booking.RoomID)

	if err := s.publisher.BookingCancelled(ctx, booking); err != nil {
		s.log.Warn("Failed to publish booking cancelled event", "id", bookingID, "error", err)
	}

	return nil
}

func (s *bookingService) ListForRoom(ctx context.Context, roomID string) ([]*model.Booking, error) {
	if _, ok := s.catalog.Get(roomID); !ok {
		return nil, bookingserrors.RoomNotFound(roomID)
	}

	return s.store.ListByRoom(roomID), nil
}

func (s *bookingService) sanitize(req *model.CreateBookingRequest) {
	req.Title = sanitizer.NormalizeTitle(req.Title)
	req.OrganizerEmail = sanitizer.NormalizeEmail(req.OrganizerEmail)
}

// IsAvailable reports whether no booking on the room overlaps [start, end);
// excludeBookingID skips one booking, for re-checks during update-style
// flows. A zero-duration candidate overlaps nothing under this predicate and
// is vacuously available; the validator rejects such intervals upstream in
// the normal flow.
func (s *bookingService) IsAvailable(roomID string, start, end time.Time, excludeBookingID string) bool {
	for _, booking := range s.store.ListByRoom(roomID) {
		if excludeBookingID != "" && booking.ID == excludeBookingID {
			continue
		}
		if overlaps(start, end, booking.StartTime, booking.EndTime) {
			return false
		}
	}
	return true
}

// overlaps implements half-open interval overlap: a booking ending exactly
// when another starts does not overlap it.
func overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && end1.After(start2)
}
