package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestDomainCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(QuizSubmissions)
	QuizSubmissions.Inc()
	if got := testutil.ToFloat64(QuizSubmissions); got != before+1 {
		t.Errorf("expected quiz submissions %v, got %v", before+1, got)
	}

	before = testutil.ToFloat64(TopicCompletions)
	TopicCompletions.Inc()
	if got := testutil.ToFloat64(TopicCompletions); got != before+1 {
		t.Errorf("expected topic completions %v, got %v", before+1, got)
	}
}

func TestRequestCounterLabels(t *testing.T) {
	RequestCounter.WithLabelValues("GET", "/api/health", "200").Inc()

	got := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/api/health", "200"))
	if got < 1 {
		t.Errorf("expected labelled request count >= 1, got %v", got)
	}
}
