package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestQuizOutcomes(t *testing.T) {
	before := testutil.ToFloat64(QuizOutcomes.WithLabelValues(OutcomeServed))
	QuizOutcomes.WithLabelValues(OutcomeServed).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(QuizOutcomes.WithLabelValues(OutcomeServed)))
}

func TestHTTPRequestsLabels(t *testing.T) {
	c := HTTPRequests.WithLabelValues("GET", "/categories", "200")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
