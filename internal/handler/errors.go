package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/employee_service/internal/domain"
	"github.com/locvowork/employee_service/internal/logger"
)

const internalErrorMessage = "internal server error"

// statusFor maps an error returned by a handler to a status code and the
// message shown to the client.
func statusFor(err error) (int, string) {
	var (
		notFound  *domain.ResourceNotFoundError
		deptErr   *domain.DepartmentError
		httpError *echo.HTTPError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Error()
	case errors.As(err, &deptErr):
		if errors.Is(deptErr, domain.ErrDepartmentNotFound) {
			return http.StatusUnprocessableEntity, deptErr.Error()
		}
		return http.StatusServiceUnavailable, deptErr.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, domain.ErrDuplicateEmail.Error()
	case errors.Is(err, domain.ErrSearchUnavailable):
		return http.StatusServiceUnavailable, domain.ErrSearchUnavailable.Error()
	case errors.As(err, &httpError):
		return httpError.Code, fmt.Sprint(httpError.Message)
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// ErrorHandler renders every error as an ErrorResponse. It is installed as
// the echo HTTPErrorHandler.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorLog(ctx, "%s %s failed: %v", c.Request().Method, c.Path(), err)
	} else {
		logger.DebugLog(ctx, "%s %s rejected with %d: %v", c.Request().Method, c.Path(), status, err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, NewErrorResponse(status, message))
	}
	if writeErr != nil {
		logger.ErrorLog(ctx, "failed to write error response: %v", writeErr)
	}
}
