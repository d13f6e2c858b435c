package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/logger"
)

// RequestLogger logs one line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("clientIP", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}

// Recovery converts panics into a generic 500 response. Each incident gets
// a correlation id so the logged detail can be found from the client-visible
// message; the panic value itself is only exposed in debug mode.
func Recovery(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				correlationID := uuid.New().String()

				logger.Error().
					Str("correlationID", correlationID).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("Recovered from panic")

				message := "Internal server error (ref: " + correlationID + ")"
				if debug {
					message = message + ": " + panicString(r)
				}

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorEnvelope(message))
			}
		}()

		c.Next()
	}
}

func panicString(r interface{}) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "unexpected error"
}
