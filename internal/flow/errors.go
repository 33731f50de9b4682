package flow

import (
	"github.com/mathangi54/travel-booking-client/internal/api"
)

// ErrorKind classifies a booking-flow failure for presentation. Raw
// exceptions never cross the controller boundary; every failure is reduced
// to one of these plus a user-facing message.
type ErrorKind string

const (
	ErrorConnectivity ErrorKind = "connectivity"
	ErrorValidation   ErrorKind = "validation"
	ErrorNotFound     ErrorKind = "not_found"
	ErrorAuthRequired ErrorKind = "auth_required"
	ErrorAuthExpired  ErrorKind = "auth_expired"
	ErrorTimeout      ErrorKind = "timeout"
	ErrorServer       ErrorKind = "server"
	ErrorBusy         ErrorKind = "busy"
)

// FlowError is the single error type surfaced by the controller.
type FlowError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *FlowError) Error() string {
	return e.Message
}

func (e *FlowError) Unwrap() error {
	return e.cause
}

func newFlowError(kind ErrorKind, message string, cause error) *FlowError {
	return &FlowError{Kind: kind, Message: message, cause: cause}
}

// User-facing messages. The timeout message is deliberately distinct from
// the generic network and server ones so the three failure modes are
// tellable apart.
const (
	msgSubmitTimeout    = "The booking request timed out. Please check your connection and try again."
	msgNoBackend        = "Cannot reach the booking service. Please check your connection and retry."
	msgNoTours          = "No tours are currently available. Please try again later."
	msgTourGone         = "The selected tour is no longer available."
	msgLoginRequired    = "Please login or register to complete your booking."
	msgSessionExpired   = "Your session has expired. Please login again to complete your booking."
	msgSubmitFallback   = "Failed to create booking. Please try again or contact support."
	msgLoadTourFailed   = "Failed to load booking details. Please try again."
	msgInvalidTravelers = "Please enter a valid number between 1 and 20"
)

// classifySubmitError converts a submission failure into a FlowError,
// inspecting the deadline marker first, then the HTTP status, and falling
// back to the backend message or the generic one.
func classifySubmitError(err error) *FlowError {
	switch {
	case api.IsTimeout(err):
		return newFlowError(ErrorTimeout, msgSubmitTimeout, err)
	case api.IsAuthError(err):
		return newFlowError(ErrorAuthExpired, msgSessionExpired, err)
	case api.IsNotFound(err):
		return newFlowError(ErrorNotFound, msgTourGone, err)
	default:
		return newFlowError(ErrorServer, api.ErrorMessage(err, msgSubmitFallback), err)
	}
}
