package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SubmissionsTotal counts payment submission outcomes per payment path.
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "checkout_payment_submissions_total",
		Help: "Payment submission attempts by payment type and outcome.",
	},
	[]string{"payment_type", "outcome"},
)
