// Package metrics defines and registers all custom Prometheus metrics for
// the registration-auth API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "regauth"

// OTPIssuedTotal counts successfully dispatched challenges.
// Label:
//   - channel: "email" or "mobile"
var OTPIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_issued_total",
		Help:      "Total number of OTP challenges issued and dispatched, by channel.",
	},
	[]string{"channel"},
)

// OTPDeliveryFailuresTotal counts dispatch failures. The challenge stays
// persisted, so these are retryable by re-issuing.
// Label:
//   - channel: "email" or "mobile"
var OTPDeliveryFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_delivery_failures_total",
		Help:      "Total number of OTP dispatch failures, by channel.",
	},
	[]string{"channel"},
)

// OTPVerifyTotal counts verification outcomes.
// Label:
//   - result: "success", "no_challenge", "expired", "mismatch", "not_found", "error"
var OTPVerifyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verify_total",
		Help:      "Total number of OTP verification attempts, by result.",
	},
	[]string{"result"},
)

// OTPVerifyDuration measures a verification end-to-end, including the store
// round-trips and session signing.
var OTPVerifyDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "otp_verify_duration_seconds",
		Help:      "Duration of OTP verification from request decode to response.",
		Buckets:   prometheus.DefBuckets,
	},
)
