package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Quiz outcomes recorded by QuizOutcomes.
const (
	OutcomeServed           = "served"
	OutcomeExhausted        = "exhausted"
	OutcomeCategoryNotFound = "category_not_found"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trivia_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	QuizOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_quiz_draws_total",
			Help: "Quiz draws by outcome",
		},
		[]string{"outcome"},
	)

	QuestionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trivia_questions_created_total",
			Help: "Number of questions created",
		},
	)

	QuestionsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trivia_questions_deleted_total",
			Help: "Number of questions deleted",
		},
	)

	CategoryCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_category_cache_lookups_total",
			Help: "Category cache lookups by result",
		},
		[]string{"result"},
	)
)
