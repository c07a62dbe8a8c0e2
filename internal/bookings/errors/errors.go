package errors

import (
	"net/http"
	"time"

	apperrors "getaroom/pkg/errors"
)

const (
	CodePastStartTime   = "PAST_START_TIME"
	CodeInvalidInterval = "INVALID_INTERVAL"
	CodeRoomNotFound    = "ROOM_NOT_FOUND"
	CodeSlotUnavailable = "SLOT_UNAVAILABLE"
	CodeBookingNotFound = "BOOKING_NOT_FOUND"
)

func PastStartTime() *apperrors.AppError {
	return apperrors.New(CodePastStartTime,
		"Booking start time cannot be in the past",
		http.StatusUnprocessableEntity)
}

func InvalidInterval() *apperrors.AppError {
	return apperrors.New(CodeInvalidInterval,
		"Booking start time must be before end time",
		http.StatusUnprocessableEntity)
}

func RoomNotFound(roomID string) *apperrors.AppError {
	return apperrors.New(CodeRoomNotFound,
		"Room not found",
		http.StatusNotFound).WithDetails(map[string]any{
		"room_id": roomID,
	})
}

func SlotUnavailable(start, end time.Time) *apperrors.AppError {
	return apperrors.New(CodeSlotUnavailable,
		"Room is not available for the selected time slot. There is an overlapping booking.",
		http.StatusConflict).WithDetails(map[string]any{
		"start_time": start.Format(time.RFC3339),
		"end_time":   end.Format(time.RFC3339),
	})
}

func BookingNotFound(bookingID string) *apperrors.AppError {
	return apperrors.New(CodeBookingNotFound,
		"Booking not found",
		http.StatusNotFound).WithDetails(map[string]any{
		"booking_id": bookingID,
	})
}
