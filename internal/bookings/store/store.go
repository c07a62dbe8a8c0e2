package store

import (
	"sync"
	"time"

	"getaroom/pkg/model"

	"github.com/google/uuid"
)

// BookingStore owns the authoritative booking collection. It performs no
// validation: callers are responsible for business rules before Insert.
type BookingStore interface {
	List() []*model.Booking
	Get(id string) (*model.Booking, bool)
	ListByRoom(roomID string) []*model.Booking
	Insert(candidate *model.Booking) *model.Booking
	Remove(id string) bool
}

// inMemoryStore keeps bookings in an id-indexed map plus an insertion-order
// slice so reads are deterministic. All access is guarded by the RWMutex;
// mutations are immediately visible to subsequent reads.
type inMemoryStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]model.Booking
}

func NewInMemoryStore() BookingStore {
	return &inMemoryStore{
		byID: make(map[string]model.Booking),
	}
}

func (s *inMemoryStore) List() []*model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]*model.Booking, 0, len(s.order))
	for _, id := range s.order {
		booking := s.byID[id]
		bookings = append(bookings, &booking)
	}
	return bookings
}

func (s *inMemoryStore) Get(id string) (*model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &booking, true
}

func (s *inMemoryStore) ListByRoom(roomID string) []*model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []*model.Booking
	for _, id := range s.order {
		booking := s.byID[id]
		if booking.RoomID == roomID {
			bookings = append(bookings, &booking)
		}
	}
	return bookings
}

// Insert assigns a fresh id and the current instant as CreatedAt, then
// stores the booking. It never fails and never validates.
func (s *inMemoryStore) Insert(candidate *model.Booking) *model.Booking {
	booking := *candidate
	booking.ID = uuid.NewString()
	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	s.mu.Lock()
	s.byID[booking.ID] = booking
	s.order = append(s.order, booking.ID)
	s.mu.Unlock()

	return &booking
}

// Remove reports whether a booking with the given id existed. Removing a
// nonexistent id is not an error.
func (s *inMemoryStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}

	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
