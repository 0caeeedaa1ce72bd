package handler

import (
	"net/http"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	domainerr "github.com/adhishcp/upi-app/internal/domain/error"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/api/dto"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// httpStatus maps a domain error to its HTTP status code
func httpStatus(err error) int {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsKeyConflictError(err):
		return http.StatusConflict
	case domainerr.IsTransientError(err):
		return http.StatusConflict
	case domainerr.IsConflictError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// statusForOutcome maps a replayed failure payload back to the status its
// original request returned, so duplicates are byte-for-byte identical
func statusForOutcome(outcome *entity.Outcome) int {
	if outcome.Success {
		return http.StatusOK
	}
	switch outcome.ErrorCode {
	case domainerr.CodeInsufficientBalance, domainerr.CodeSelfTransfer:
		return http.StatusUnprocessableEntity
	case domainerr.CodeInternalServer, domainerr.CodeSerializationFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

// respondOutcome writes the result of a mutating operation. A non-nil outcome
// is the durable payload, returned even when err carries the domain failure;
// a nil outcome means nothing was persisted and only the error goes out.
func respondOutcome(c *gin.Context, outcome *entity.Outcome, err error) {
	if outcome != nil {
		if outcome.Success {
			middleware.CacheResponse(c, outcome.Marshal())
		}
		c.JSON(statusForOutcome(outcome), outcome)
		return
	}

	respondError(c, err)
}

// respondError writes a standardized error response
func respondError(c *gin.Context, err error) {
	c.JSON(httpStatus(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}
