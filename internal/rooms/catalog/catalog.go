package catalog

import "getaroom/pkg/model"

// Catalog is the fixed set of bookable rooms, built once at process start
// and never mutated afterwards. Lookups of unknown ids report absence, not
// an error.
type Catalog struct {
	rooms []model.Room
	byID  map[string]model.Room
}

func New(rooms []model.Room) *Catalog {
	byID := make(map[string]model.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}
	return &Catalog{
		rooms: rooms,
		byID:  byID,
	}
}

// Default returns the standard office catalog.
func Default() *Catalog {
	return New([]model.Room{
		{
			ID:        "room-001",
			Name:      "Conference Room A",
			Capacity:  10,
			Amenities: []string{"Projector", "Whiteboard", "Video Conferencing", "TV Display"},
		},
		{
			ID:        "room-002",
			Name:      "Meeting Room B",
			Capacity:  6,
			Amenities: []string{"Whiteboard", "TV Display"},
		},
		{
			ID:        "room-003",
			Name:      "Small Room C",
			Capacity:  4,
			Amenities: []string{"Whiteboard"},
		},
		{
			ID:        "room-004",
			Name:      "Executive Boardroom",
			Capacity:  12,
			Amenities: []string{"Projector", "Whiteboard", "Video Conferencing", "TV Display", "Coffee Machine"},
		},
	})
}

// List returns the rooms in catalog order.
func (c *Catalog) List() []model.Room {
	rooms := make([]model.Room, len(c.rooms))
	copy(rooms, c.rooms)
	return rooms
}

func (c *Catalog) Get(id string) (model.Room, bool) {
	room, ok := c.byID[id]
	return room, ok
}
