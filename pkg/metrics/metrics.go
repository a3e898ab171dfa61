package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greeting_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greeting_messages_processed_total",
			Help: "Number of greetings stored and committed",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greeting_messages_failed_total",
			Help: "Number of messages that stopped the consumer",
		},
		[]string{"topic", "reason"}, // no_payload|decode|missing_headers|invalid|store
	)
	KafkaCommitFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greeting_offset_commit_failures_total",
			Help: "Number of failed offset commits",
		},
		[]string{"topic"},
	)
)

var MaintenanceRuns = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "maintenance_runs_total",
		Help: "generate_logg runs",
	},
	[]string{"result"}, // ok|error
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logs_cache_operations_total",
			Help: "Log page cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "logs_cache_size",
			Help: "Number of log pages currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует метрики в default registry; повторные вызовы ничего не делают.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed,
			KafkaMessagesProcessed,
			KafkaMessagesFailed,
			KafkaCommitFailures,
			MaintenanceRuns,
			CacheOps,
			CacheSize,
		)
	})
}
