/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalogctl_validation_duration_seconds",
			Help:    "Duration of a full catalog validation run in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogctl_validations_total",
			Help: "Total number of catalog validation runs",
		},
		[]string{"verdict"}, // valid or invalid
	)

	findingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogctl_findings_total",
			Help: "Total number of validation findings produced",
		},
		[]string{"severity"},
	)
)

// observeValidation records run metrics. Metrics never influence report
// content; reports stay byte-stable for identical input.
func observeValidation(report *Report, duration time.Duration) {
	validationDuration.Observe(duration.Seconds())

	verdict := "valid"
	if !report.Valid {
		verdict = "invalid"
	}
	validationsTotal.WithLabelValues(verdict).Inc()

	findingsTotal.WithLabelValues(string(SeverityError)).Add(float64(len(report.Errors)))
	findingsTotal.WithLabelValues(string(SeverityWarning)).Add(float64(len(report.Warnings)))
}
