// Package metrics defines and registers all custom Prometheus metrics for the
// bookstore API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry via promauto at import
// time; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookstore"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts by terminal outcome.
// Label:
//   - result: "success", "rejected", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by terminal outcome.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts bearer tokens minted by the token issuer.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of signed bearer tokens issued.",
	},
)

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "success", "rejected", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"result"},
)

// ── Repository metrics ────────────────────────────────────────────────────────

// RepositoryOpsTotal counts generic repository operations.
// Labels:
//   - entity: collection name (e.g. "authors", "books")
//   - op: "find_all", "find_by_id", "exists", "create", "update", "delete"
//   - result: "ok", "miss", "conflict", or "error"
var RepositoryOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "repository_ops_total",
		Help:      "Total number of repository operations, by entity, operation, and result.",
	},
	[]string{"entity", "op", "result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
