package validator

import (
	"errors"
	"testing"
	"time"

	bookingserrors "getaroom/internal/bookings/errors"
	apperrors "getaroom/pkg/errors"
	"getaroom/pkg/logger"
	"getaroom/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	v := NewBookingValidator(log)
	// Pin the clock so boundary cases are deterministic.
	fixedNow := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return fixedNow }
	return v
}

func TestValidateTimes(t *testing.T) {
	now := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantCode string
	}{
		{
			name:  "future interval is valid",
			start: now.Add(time.Hour),
			end:   now.Add(2 * time.Hour),
		},
		{
			name:  "start exactly now is valid",
			start: now,
			end:   now.Add(time.Hour),
		},
		{
			name:     "past start is rejected first",
			start:    now.Add(-time.Hour),
			end:      now.Add(time.Hour),
			wantCode: bookingserrors.CodePastStartTime,
		},
		{
			name:     "past start wins over inverted interval",
			start:    now.Add(-2 * time.Hour),
			end:      now.Add(-3 * time.Hour),
			wantCode: bookingserrors.CodePastStartTime,
		},
		{
			name:     "zero-duration interval is rejected",
			start:    now.Add(time.Hour),
			end:      now.Add(time.Hour),
			wantCode: bookingserrors.CodeInvalidInterval,
		},
		{
			name:     "inverted interval is rejected",
			start:    now.Add(2 * time.Hour),
			end:      now.Add(time.Hour),
			wantCode: bookingserrors.CodeInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator()
			err := v.ValidateTimes(tt.start, tt.end)

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateTimes() = %v, want nil", err)
				}
				return
			}

			appErr := apperrors.AsAppError(err)
			if appErr.Code != tt.wantCode {
				t.Errorf("error code = %s, want %s", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestValidateRequest_FieldRules(t *testing.T) {
	now := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	valid := model.CreateBookingRequest{
		RoomID:         "room-001",
		Title:          "Weekly Sync",
		StartTime:      now.Add(time.Hour),
		EndTime:        now.Add(2 * time.Hour),
		OrganizerEmail: "alice@example.com",
	}

	tests := []struct {
		name      string
		mutate    func(req *model.CreateBookingRequest)
		wantField string
	}{
		{
			name:   "valid request passes",
			mutate: func(req *model.CreateBookingRequest) {},
		},
		{
			name:      "missing room id",
			mutate:    func(req *model.CreateBookingRequest) { req.RoomID = "" },
			wantField: "RoomID",
		},
		{
			name:      "missing title",
			mutate:    func(req *model.CreateBookingRequest) { req.Title = "" },
			wantField: "Title",
		},
		{
			name:      "malformed email",
			mutate:    func(req *model.CreateBookingRequest) { req.OrganizerEmail = "not-an-email" },
			wantField: "OrganizerEmail",
		},
		{
			name:      "missing start time",
			mutate:    func(req *model.CreateBookingRequest) { req.StartTime = time.Time{} },
			wantField: "StartTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator()
			req := valid
			tt.mutate(&req)

			err := v.ValidateRequest(&req)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateRequest() = %v, want nil", err)
				}
				return
			}

			var validationErrs ValidationErrors
			if !errors.As(err, &validationErrs) {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}
			found := false
			for _, ve := range validationErrs {
				if ve.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a validation error for field %s, got %v", tt.wantField, validationErrs)
			}
		})
	}
}

func TestValidateRequest_TimeRulesAfterFields(t *testing.T) {
	v := newTestValidator()
	now := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	req := &model.CreateBookingRequest{
		RoomID:         "room-001",
		Title:          "Weekly Sync",
		StartTime:      now.Add(2 * time.Hour),
		EndTime:        now.Add(time.Hour),
		OrganizerEmail: "alice@example.com",
	}

	err := v.ValidateRequest(req)
	appErr := apperrors.AsAppError(err)
	if appErr.Code != bookingserrors.CodeInvalidInterval {
		t.Errorf("error code = %s, want %s", appErr.Code, bookingserrors.CodeInvalidInterval)
	}
}
