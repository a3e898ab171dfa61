package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/greeting_processor/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("greetings"))
	beforeProcessed := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("greetings"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("greetings", "store"))
	beforeCommit := testutil.ToFloat64(metrics.KafkaCommitFailures.WithLabelValues("greetings"))

	metrics.KafkaMessagesConsumed.WithLabelValues("greetings").Inc()
	metrics.KafkaMessagesProcessed.WithLabelValues("greetings").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("greetings", "store").Inc()
	metrics.KafkaCommitFailures.WithLabelValues("greetings").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("greetings")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("greetings")); got != beforeProcessed+1 {
		t.Fatalf("KafkaMessagesProcessed: got=%v want=%v", got, beforeProcessed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("greetings", "store")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaCommitFailures.WithLabelValues("greetings")); got != beforeCommit+1 {
		t.Fatalf("KafkaCommitFailures: got=%v want=%v", got, beforeCommit+1)
	}
}

func TestMaintenanceRuns_ByResult(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.MaintenanceRuns.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(metrics.MaintenanceRuns.WithLabelValues("error"))

	metrics.MaintenanceRuns.WithLabelValues("ok").Inc()
	metrics.MaintenanceRuns.WithLabelValues("ok").Inc()

	if got := testutil.ToFloat64(metrics.MaintenanceRuns.WithLabelValues("ok")); got != okBefore+2 {
		t.Fatalf("MaintenanceRuns(ok): got=%v want=%v", got, okBefore+2)
	}
	if got := testutil.ToFloat64(metrics.MaintenanceRuns.WithLabelValues("error")); got != errBefore {
		t.Fatalf("MaintenanceRuns(error): got=%v want=%v", got, errBefore)
	}
}

func TestCacheMetrics(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit"))
	metrics.CacheOps.WithLabelValues("hit").Inc()
	metrics.CacheSize.Set(3)

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit")); got != hitBefore+1 {
		t.Fatalf("CacheOps(hit): got=%v want=%v", got, hitBefore+1)
	}
	if got := testutil.ToFloat64(metrics.CacheSize); got != 3 {
		t.Fatalf("CacheSize: got=%v want=3", got)
	}
}
