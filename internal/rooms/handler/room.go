package handler

import (
	"net/http"
	"time"

	bookingservice "getaroom/internal/bookings/service"
	roomservice "getaroom/internal/rooms/service"
	httputil "getaroom/pkg/http"
	"getaroom/pkg/logger"
	"getaroom/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type RoomHandler struct {
	rooms    roomservice.RoomService
	bookings bookingservice.BookingService
	log      *logger.Logger
}

func NewRoomHandler(rooms roomservice.RoomService, bookings bookingservice.BookingService, log *logger.Logger) *RoomHandler {
	return &RoomHandler{
		rooms:    rooms,
		bookings: bookings,
		log:      log,
	}
}

type listRoomsResponse struct {
	Rooms []model.RoomStatus `json:"rooms"`
}

type roomBookingsResponse struct {
	RoomID   string           `json:"roomId"`
	RoomName string           `json:"roomName"`
	Bookings []*model.Booking `json:"bookings"`
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	statuses, err := h.rooms.ListWithStatus(time.Now().UTC())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, listRoomsResponse{Rooms: statuses}); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RoomHandler) ListBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	roomID := ps.ByName("roomId")

	room, ok := h.rooms.Get(roomID)
	if !ok {
		if writeErr := httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{
			Error:   "Not Found",
			Message: "Room with ID '" + roomID + "' not found",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "ListBookings", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	bookings, err := h.bookings.ListForRoom(r.Context(), roomID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListBookings", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}

	if err := httputil.WriteSuccess(w, roomBookingsResponse{
		RoomID:   room.ID,
		RoomName: room.Name,
		Bookings: bookings,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "ListBookings", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/rooms", h.List)
	router.GET("/rooms/:roomId/bookings", h.ListBookings)
}
