package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK       = "ok"
	ResultConflict = "conflict"
	ResultError    = "error"
)

var (
	// ReservationsCreated counts successfully stored reservations
	ReservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_reservations_created_total",
		Help: "Total reservations created",
	})

	// ReservationConflicts counts bookings rejected by the overlap check or the exclusion constraint
	ReservationConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_reservation_conflicts_total",
		Help: "Total reservation attempts rejected as overlapping",
	})

	ReservationsCancelled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_reservations_cancelled_total",
		Help: "Total reservations cancelled by actor",
	}, []string{"actor"})

	ReservationsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_reservations_completed_total",
		Help: "Total expired reservations moved to COMPLETED",
	})

	// LibrarianAssignments counts assign/revoke operations by result
	LibrarianAssignments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_librarian_assignments_total",
		Help: "Total librarian assign and revoke operations by result",
	}, []string{"operation", "result"})

	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_events_dropped_total",
		Help: "Domain events that could not be published",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
