package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PointsCredited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loyalty",
		Name:      "points_credited_total",
		Help:      "Points credited to customer accounts.",
	})
	PointsRedeemed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loyalty",
		Name:      "points_redeemed_total",
		Help:      "Points spent on issued rewards.",
	})
	PointsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loyalty",
		Name:      "points_expired_total",
		Help:      "Points removed by the expiry sweeper.",
	})
	VouchersIssued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loyalty",
		Name:      "vouchers_issued_total",
		Help:      "Cancellation vouchers issued.",
	})
	BlocksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loyalty",
		Name:      "booking_blocks_created_total",
		Help:      "Booking blocks created for excessive cancellations.",
	})
	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "loyalty",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of expiry sweep passes.",
	})
)
