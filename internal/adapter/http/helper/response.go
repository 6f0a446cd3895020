package helper

import (
	"errors"
	"net/http"

	"heroapp/internal/adapter/http/validation"
	"heroapp/internal/core/domain"
	"heroapp/internal/core/model/response"

	"github.com/gin-gonic/gin"
)

func SendSuccess(c *gin.Context, statusCode int, data any, message ...string) {
	resp := response.SuccessResponse{
		Data: data,
	}

	if len(message) > 0 && message[0] != "" {
		resp.Message = message[0]
	}

	c.JSON(statusCode, resp)
}

func SendError(c *gin.Context, statusCode int, code string, errs []response.ValidationError, details ...any) {
	errorResponse := response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errs,
		},
	}

	if len(details) > 0 {
		errorResponse.Error.Details = details[0]
	}

	c.JSON(statusCode, errorResponse)
}

func SendValidationError(c *gin.Context, err error) {
	validationErrors := validation.FormatValidationErrors(err)
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErrors)
}

func SendInternalError(c *gin.Context, message string, details ...any) {
	errs := []response.ValidationError{
		{
			Field:   "server",
			Message: message,
		},
	}

	SendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", errs, details...)
}

func SendUnauthorizedError(c *gin.Context, message string) {
	errs := []response.ValidationError{
		{
			Field:   "auth",
			Message: message,
		},
	}

	SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", errs)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	errs := []response.ValidationError{
		{
			Field:   field,
			Message: message,
		},
	}

	SendError(c, http.StatusBadRequest, "BAD_REQUEST", errs)
}

func SendNotFoundError(c *gin.Context, message string) {
	errs := []response.ValidationError{
		{
			Field:   "resource",
			Message: message,
		},
	}

	SendError(c, http.StatusNotFound, "NOT_FOUND", errs)
}

// SendDomainError maps the auth error taxonomy onto HTTP responses. The public
// code and message come from the error itself; wrapped internal detail is
// dropped at this boundary.
func SendDomainError(c *gin.Context, err error) {
	var ae *domain.AuthError

	if !errors.As(err, &ae) {
		SendInternalError(c, "unexpected error")
		return
	}

	errs := []response.ValidationError{
		{
			Field:   "auth",
			Message: ae.Message,
		},
	}

	switch ae {
	case domain.ErrUserAlreadyExists:
		SendError(c, http.StatusConflict, ae.Code, errs)
	case domain.ErrInvalidCredentials, domain.ErrUnauthorized:
		SendError(c, http.StatusUnauthorized, ae.Code, errs)
	default:
		SendError(c, http.StatusInternalServerError, ae.Code, errs)
	}
}
