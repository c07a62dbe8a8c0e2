package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	bookingserrors "getaroom/internal/bookings/errors"
	"getaroom/pkg/logger"
	"getaroom/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
	now      func() time.Time
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		logger:   log,
		now:      time.Now,
	}
}

// ValidateRequest checks field well-formedness via struct tags, then the
// temporal rules. ValidationErrors from the tags keep per-field detail;
// temporal failures carry their own error kind.
func (v *BookingValidator) ValidateRequest(req *model.CreateBookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return v.ValidateTimes(req.StartTime, req.EndTime)
}

// ValidateTimes applies the temporal rules in order; the first failing rule
// determines the reported reason. The past-start check reads the clock at
// call time, so repeated calls near the boundary are not idempotent.
func (v *BookingValidator) ValidateTimes(start, end time.Time) error {
	if start.Before(v.now()) {
		return bookingserrors.PastStartTime()
	}

	if !start.Before(end) {
		return bookingserrors.InvalidInterval()
	}

	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
