package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

type badRequestError struct {
	err error
}

func (b badRequestError) Error() string {
	return b.err.Error()
}

func (b badRequestError) Unwrap() error {
	return b.err
}

func invalidRequest(err error) error {
	return badRequestError{err: err}
}

func statusOf(err error) int {
	var badRequest badRequestError

	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &badRequest), errors.Is(err, entity.ErrInvalidSearch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorMapper turns the last handler error into the response. Not found
// and server errors carry no body.
func (i *implementation) errorMapper() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		fields := []zap.Field{
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		}

		switch status := statusOf(err); status {
		case http.StatusBadRequest:
			logger.MakeWarn(i.logger, "Got invalid request", fields...)
			c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		case http.StatusNotFound:
			c.AbortWithStatus(status)
		default:
			logger.CheckError(err, i.logger, "Request failed", fields...)
			c.AbortWithStatus(status)
		}
	}
}
