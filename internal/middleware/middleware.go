package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/learnify/internal/app/models/dto"
)

// RequestLogger logs one line per request on the given logger
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Int("bytes", c.Writer.Size()).
			Msg("Request handled")
	}
}

// Recovery turns panics into 500 "Server error" responses
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Server error"))
	})
}
