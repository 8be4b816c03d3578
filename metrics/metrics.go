package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var submissionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "careerportal",
	Name:      "submissions_total",
	Help:      "Form submissions by form and outcome.",
}, []string{"form", "outcome"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "careerportal",
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request latency by route template.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method", "status"})

func ObserveSubmission(form, outcome string) {
	if len(form) == 0 || len(outcome) == 0 {
		return
	}
	submissionCounter.With(prometheus.Labels{"form": form, "outcome": outcome}).Inc()
}

func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if len(route) == 0 {
		route = "unmatched"
	}
	requestDuration.With(prometheus.Labels{
		"route":  route,
		"method": method,
		"status": strconv.Itoa(status),
	}).Observe(elapsed.Seconds())
}
