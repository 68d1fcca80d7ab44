package api

import (
	"errors"
	"net/http"

	"office-scheduler/internal/domain/attendance"
	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/domain/policy"
	"office-scheduler/internal/handler/dto/response"
	"office-scheduler/internal/handler/httperr"
	"office-scheduler/internal/pkg/errs"
	"office-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Machine-readable rejection codes carried in error responses.
const (
	codeInvalidRequest       = "invalid_request"
	codeInvalidInterval      = "invalid_interval"
	codeDuplicateReservation = "duplicate_reservation"
	codeCapacityExceeded     = "capacity_exceeded"
	codeSchedulingConflict   = "scheduling_conflict"
	codePolicyViolation      = "policy_violation"
	codeRoomInactive         = "room_inactive"
	codeNotFound             = "not_found"
	codeForbidden            = "forbidden"
	codeInternal             = "internal_error"
)

// respondError maps the scheduling error taxonomy onto HTTP. Rejections keep
// their machine-readable code so clients can branch without string matching.
func respondError(c *gin.Context, err error) {
	var policyErr *attendance.PolicyError
	var conflictErr *meetingroom.ConflictError

	switch {
	case errors.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, codeNotFound,
			"Resource not found", nil)
	case errors.Is(err, commands.ErrNotReservationOwner), errors.Is(err, commands.ErrBookingNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, codeForbidden,
			"Not allowed to modify this reservation", nil)
	case errors.As(err, &policyErr):
		httperr.AbortWithError(c, http.StatusConflict, err, codePolicyViolation,
			"Reservation violates office policy", gin.H{"reason": policyErr.Reason})
	case errors.As(err, &conflictErr):
		httperr.AbortWithError(c, http.StatusConflict, err, codeSchedulingConflict,
			"Requested slot overlaps existing bookings",
			response.ConflictEntries(conflictErr.Conflicts))
	case errors.Is(err, errs.ErrDuplicateReservation):
		httperr.AbortWithError(c, http.StatusConflict, err, codeDuplicateReservation,
			"User already has a reservation for this day", nil)
	case errors.Is(err, errs.ErrCapacityExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, codeCapacityExceeded,
			"No office spots left for this day", nil)
	case errors.Is(err, errs.ErrSchedulingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, codeSchedulingConflict,
			"Requested slot overlaps existing bookings", nil)
	case errors.Is(err, errs.ErrPolicyViolation):
		httperr.AbortWithError(c, http.StatusConflict, err, codePolicyViolation,
			"Reservation violates office policy", nil)
	case errors.Is(err, errs.ErrRoomInactive):
		httperr.AbortWithError(c, http.StatusConflict, err, codeRoomInactive,
			"Room is not accepting bookings", nil)
	case errors.Is(err, errs.ErrInvalidInterval):
		httperr.AbortWithError(c, http.StatusBadRequest, err, codeInvalidInterval,
			"Start time must be strictly before end time", nil)
	case errors.Is(err, policy.ErrInvalidConfig), errors.Is(err, commands.ErrInvalidRoom):
		httperr.AbortWithError(c, http.StatusBadRequest, err, codeInvalidRequest,
			"Invalid request parameters", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, codeInternal,
			"Internal server error", nil)
	}
}

// admissionOutcome labels an admission result for the decision counter.
func admissionOutcome(err error) string {
	switch {
	case err == nil:
		return "admitted"
	case errors.Is(err, errs.ErrDuplicateReservation):
		return codeDuplicateReservation
	case errors.Is(err, errs.ErrCapacityExceeded):
		return codeCapacityExceeded
	case errors.Is(err, errs.ErrSchedulingConflict):
		return codeSchedulingConflict
	case errors.Is(err, errs.ErrPolicyViolation):
		return codePolicyViolation
	case errors.Is(err, errs.ErrInvalidInterval):
		return codeInvalidInterval
	case errors.Is(err, errs.ErrRoomInactive):
		return codeRoomInactive
	default:
		return "error"
	}
}

func respondBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, codeInvalidRequest,
		"Invalid request format", nil)
}
