package monitoring

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	registrationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_registrations_total",
			Help: "Registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	attendanceMarks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "attendance_marks_total",
			Help: "Total attendance upserts",
		},
	)
)

// Registration outcomes.
const (
	OutcomeConfirmed        = "confirmed"
	OutcomeDuplicate        = "duplicate"
	OutcomeCapacityExceeded = "capacity_exceeded"
	OutcomeError            = "error"
)

func CountRegistration(outcome string) {
	registrationOutcomes.WithLabelValues(outcome).Inc()
}

func CountAttendanceMark() {
	attendanceMarks.Inc()
}

// HTTPMiddleware counts every completed request.
func HTTPMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		httpRequests.WithLabelValues(
			c.Method(),
			route,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	}
}

// Handler exposes the prometheus scrape endpoint through Fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
