// Package metrics defines the custom Prometheus collectors shared by the
// service and infrastructure layers. It is the single source of truth for
// metric names, labels, and help strings; collectors self-register with the
// default registry via promauto. HTTP-level metrics are handled separately
// by echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsdesk"

// ── Article metrics ──────────────────────────────────────────────────────────

// ArticlesCreatedTotal counts successfully created articles.
var ArticlesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_created_total",
		Help:      "Total number of articles created.",
	},
)

// ArticlesDeletedTotal counts removed articles.
// Label:
//   - mode: "soft" (lifecycle flag) or "purge" (physical removal)
var ArticlesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_deleted_total",
		Help:      "Total number of article deletions, labelled by mode (soft/purge).",
	},
	[]string{"mode"},
)

// UploadsStoredTotal counts image attachments written to the blob store.
var UploadsStoredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_stored_total",
		Help:      "Total number of uploaded images stored.",
	},
)

// ── Auth metrics ─────────────────────────────────────────────────────────────

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// PasswordHashDuration measures a single bcrypt hash, including time spent
// waiting for a slot in the bounded hashing pool.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of password hashing from enqueue to completion.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Audit pipeline metrics ───────────────────────────────────────────────────

// AuditProcessedTotal counts audit events persisted successfully.
// Label:
//   - action: the article lifecycle action recorded (created/edited/deleted/purged)
var AuditProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_processed_total",
		Help:      "Total number of audit events successfully recorded.",
	},
	[]string{"action"},
)

// AuditErrorsTotal counts audit events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit events that failed processing.",
	},
	[]string{"reason"},
)

// AuditQueueDepth tracks the events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each worker channel.",
	},
	[]string{"worker_id"},
)
