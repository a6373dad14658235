package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "paper_site"

var (
	SignaturesIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "media",
		Name:      "signatures_issued_total",
		Help:      "Upload signatures handed out, by resource kind.",
	}, []string{"kind"})

	Uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "media",
		Name:      "uploads_total",
		Help:      "Server-side uploads to the asset CDN, by resource kind and outcome.",
	}, []string{"kind", "outcome"})

	Destroys = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "media",
		Name:      "destroys_total",
		Help:      "Destroy calls against the asset CDN, by resource kind and result.",
	}, []string{"kind", "result"})

	PurgeWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "media",
		Name:      "purge_warnings_total",
		Help:      "Assets left behind because their destroy call failed.",
	})

	CatalogCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "cache_requests_total",
		Help:      "Public catalog renders, by cache result.",
	}, []string{"result"})

	LeadsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "leads",
		Name:      "submitted_total",
		Help:      "Leads received from the public site.",
	})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
