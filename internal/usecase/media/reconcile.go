package media

import (
	"context"
	"errors"
	"sync"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/metrics"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
)

// DeleteSet returns the members of original absent from candidate, compared
// by exact string equality, without duplicates and in order of first
// appearance in original.
func DeleteSet(original, candidate []string) []string {
	keep := make(map[string]struct{}, len(candidate))
	for _, c := range candidate {
		keep[c] = struct{}{}
	}

	out := make([]string, 0)
	seen := make(map[string]struct{}, len(original))
	for _, o := range original {
		if o == "" {
			continue
		}
		if _, ok := keep[o]; ok {
			continue
		}
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}

// Reconciler removes the CDN assets an entity no longer references.
type Reconciler struct {
	destroyer  port.AssetDestroyer
	hostPrefix string
}

// compile-time check: *Reconciler must satisfy port.MediaPurger
var _ port.MediaPurger = (*Reconciler)(nil)

func NewReconciler(destroyer port.AssetDestroyer, hostPrefix string) *Reconciler {
	return &Reconciler{destroyer: destroyer, hostPrefix: hostPrefix}
}

// Reconcile purges every URL of original that candidate dropped.
func (r *Reconciler) Reconcile(ctx context.Context, original, candidate model.MediaSet) []port.Warning {
	return r.Purge(ctx, DeleteSet(original.URLs(), candidate.URLs()))
}

// Purge destroys the asset behind each managed URL. URLs outside the managed
// host are skipped. Every destroy is attempted once, concurrently, and Purge
// waits for all of them. Failures come back as warnings, in input order.
func (r *Reconciler) Purge(ctx context.Context, urls []string) []port.Warning {
	urls = DeleteSet(urls, nil)

	failures := make([]*port.Warning, len(urls))
	var wg sync.WaitGroup
	for i, url := range urls {
		asset, err := cloudinary.ExtractPublicID(r.hostPrefix, url)
		if err != nil {
			logger.Debugf(ctx, "skipping unmanaged media %q", url)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.destroyer.Destroy(ctx, asset.PublicID, asset.Kind)
			if err != nil {
				metrics.Destroys.WithLabelValues(string(asset.Kind), "failed").Inc()
				logger.Warnf(ctx, "⚠️  could not destroy %s %q: %v", asset.Kind, asset.PublicID, err)
				failures[i] = &port.Warning{URL: url, Message: warningMessage(err)}
				return
			}
			if res == cloudinary.NotFound {
				metrics.Destroys.WithLabelValues(string(asset.Kind), "not_found").Inc()
				logger.Infof(ctx, "%s %q was already gone", asset.Kind, asset.PublicID)
				return
			}
			metrics.Destroys.WithLabelValues(string(asset.Kind), "deleted").Inc()
		}()
	}
	wg.Wait()

	warnings := make([]port.Warning, 0)
	for _, f := range failures {
		if f != nil {
			warnings = append(warnings, *f)
		}
	}
	metrics.PurgeWarnings.Add(float64(len(warnings)))
	return warnings
}

func warningMessage(err error) string {
	var delErr *cloudinary.DeletionFailedError
	if errors.As(err, &delErr) {
		return delErr.Message
	}
	if errors.Is(err, cloudinary.ErrSigning) {
		return "could not sign deletion request"
	}
	return "deletion failed"
}
