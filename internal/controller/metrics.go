package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/project/catalog/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "catalog_request_duration_seconds",
	Help:    "Duration of catalog HTTP actions in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"action", "status"})

func init() {
	prometheus.MustRegister(RequestDuration)
}

var tracer = otel.Tracer("github.com/project/catalog/internal/controller")

// action runs handler inside a server span named after the action and
// records its duration.
func (i *implementation) action(name log.Action, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx, span := tracer.Start(c.Request.Context(), name, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		span.SetAttributes(
			attribute.String("request_id", c.GetString(requestIDKey)),
			attribute.String("http.route", c.FullPath()),
		)
		c.Request = c.Request.WithContext(ctx)

		handler(c)

		status := c.Writer.Status()
		if err := c.Errors.Last(); err != nil {
			status = statusOf(err.Err)
			span.RecordError(err.Err)
		}

		RequestDuration.WithLabelValues(name, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	}
}
