package validators

import (
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/CorrelAid/newsletter_subscription/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	ErrUnsupportedMediaType = errors.New("content type must be " + binding.MIMEPOSTForm)
	ErrMalformedBody        = errors.New("malformed form body")
	ErrMissingField         = errors.New("missing form field")
)

// DecodeForm parses an urlencoded request body into FormData. Every key in
// models.RequiredFields has to be present, but empty values are accepted.
func DecodeForm(r *http.Request) (models.FormData, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != binding.MIMEPOSTForm {
		return models.FormData{}, ErrUnsupportedMediaType
	}

	if err := r.ParseForm(); err != nil {
		return models.FormData{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	for _, field := range models.RequiredFields {
		if _, ok := r.PostForm[field]; !ok {
			return models.FormData{}, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	var formData models.FormData
	if err := binding.FormPost.Bind(r, &formData); err != nil {
		return models.FormData{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return formData, nil
}

// BindForm adapts a handler that takes decoded FormData into a gin handler.
// Requests that fail decoding are answered here and never reach fn.
func BindForm(fn func(*gin.Context, models.FormData)) gin.HandlerFunc {
	return func(c *gin.Context) {
		formData, err := DecodeForm(c.Request)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, ErrUnsupportedMediaType) {
				status = http.StatusUnsupportedMediaType
			}
			slog.Warn("form rejected", "error", err, "status", status, "remote_addr", c.ClientIP())
			c.String(status, err.Error())
			c.Abort()
			return
		}
		fn(c, formData)
	}
}
