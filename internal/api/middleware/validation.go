package middleware

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"audio-relay/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateRequest binds the JSON body into req, checks struct tags and then
// domain rules. An empty body or a missing required audio field both yield
// the "No audio data received" error.
func ValidateRequest(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return bindError(err)
	}

	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func bindError(err error) error {
	var maxBytes *http.MaxBytesError
	if stderrors.As(err, &maxBytes) {
		return errors.NewPayloadTooLargeError(err.Error())
	}

	if stderrors.Is(err, io.EOF) {
		return errors.NewNoAudioError()
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		for _, fieldError := range validationErrs {
			if fieldError.Field() == "Audio" && fieldError.Tag() == "required" {
				return errors.NewNoAudioError()
			}
		}
		return errors.NewInvalidInputError(errors.MsgInvalidBody, validationErrs.Error())
	}

	return errors.NewInvalidInputError(errors.MsgInvalidBody, err.Error())
}

// BodyLimit caps the request body at limit bytes
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
