package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymflow_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymflow_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymflow_bookings_total",
			Help: "Total number of successful bookings by resulting status",
		},
		[]string{"class_id", "status"},
	)

	BookingRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymflow_booking_rejections_total",
			Help: "Total number of rejected book or cancel calls",
		},
		[]string{"operation", "reason"},
	)

	BookingCancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymflow_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
		[]string{"class_id"},
	)

	WaitlistPromotionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymflow_waitlist_promotions_total",
			Help: "Total number of waitlist promotions",
		},
		[]string{"class_id"},
	)

	ClassOccupancy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gymflow_class_occupancy",
			Help: "Current confirmed bookings per class",
		},
		[]string{"class_id"},
	)

	WaitlistLength = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gymflow_waitlist_length",
			Help: "Current waitlist length per class",
		},
		[]string{"class_id"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymflow_notifications_total",
			Help: "Total number of notifications by type and outcome",
		},
		[]string{"type", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymflow_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(classID, status string) {
	BookingsTotal.WithLabelValues(classID, status).Inc()
}

func RecordRejection(operation, reason string) {
	BookingRejectionsTotal.WithLabelValues(operation, reason).Inc()
}

func RecordCancellation(classID string) {
	BookingCancellationsTotal.WithLabelValues(classID).Inc()
}

func RecordPromotion(classID string) {
	WaitlistPromotionsTotal.WithLabelValues(classID).Inc()
}

// SetClassState publishes the occupancy and waitlist gauges of one class.
func SetClassState(classID string, occupancy, waitlist int) {
	ClassOccupancy.WithLabelValues(classID).Set(float64(occupancy))
	WaitlistLength.WithLabelValues(classID).Set(float64(waitlist))
}

func RecordNotification(notificationType, status string) {
	NotificationsTotal.WithLabelValues(notificationType, status).Inc()
}

func SetNotificationQueueLength(n int64) {
	NotificationQueueLength.Set(float64(n))
}
