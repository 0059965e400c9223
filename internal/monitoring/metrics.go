// Package monitoring exposes prometheus metrics for the shop.
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ChatTurns counts processed user turns.
	ChatTurns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chalis_chat_turns_total",
		Help: "User turns processed by the barista agent",
	})

	// ToolCalls counts tool invocations by tool name and outcome.
	ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chalis_tool_calls_total",
		Help: "Tool calls dispatched by the barista agent",
	}, []string{"tool", "outcome"})

	// OrdersCreated counts orders that passed validation and were persisted.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chalis_orders_created_total",
		Help: "Orders built and persisted",
	})

	// PaymentsProcessed counts recorded payments.
	PaymentsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chalis_payments_processed_total",
		Help: "Payments recorded",
	})

	// ProductionTransfers counts orders handed to the production queue.
	ProductionTransfers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chalis_production_transfers_total",
		Help: "Orders transferred to the production queue",
	})

	// LLMLatency observes model round-trip time per request.
	LLMLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chalis_llm_request_seconds",
		Help:    "Latency of ollama chat requests",
		Buckets: prometheus.DefBuckets,
	})
)

// Handler returns the metrics endpoint handler
func Handler() http.Handler {
	return promhttp.Handler()
}
