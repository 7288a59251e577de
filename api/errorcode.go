package api

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "reference dataset unavailable",

		1200: "classifier produced an unusable output",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorDatasetUnavailable = errorJSON(1100)

	errorModel = errorJSON(1200)
)

type ErrorResponse struct {
	Code    int64                   `json:"code"`
	Message string                  `json:"message"`
	Fields  []schema.FieldViolation `json:"fields,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// abortWithError maps a pipeline error to its response by kind
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schema.ErrValidation):
		resp := errorInvalidParameters
		var details schema.ValidationDetails
		if errors.As(err, &details) {
			resp.Fields = details
		}
		abortWithEncoding(c, http.StatusBadRequest, resp, err)

	case errors.Is(err, schema.ErrModel):
		log.WithError(err).Error("classifier failure")
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorModel, err)

	default:
		log.WithError(err).Error("request failed")
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
