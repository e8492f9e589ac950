package aggregation

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"marketplace-admin/internal/adminerrors"
	"marketplace-admin/internal/repository"
	"marketplace-admin/utils"
)

const (
	defaultConcurrency     = 16
	defaultRetries         = 2
	defaultInitialInterval = 50 * time.Millisecond
)

// Resolver batch-fetches referenced documents into an EntityCache
type Resolver struct {
	store           repository.DocumentStore
	concurrency     int
	retries         uint64
	initialInterval time.Duration
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithConcurrency caps the number of in-flight fetches
func WithConcurrency(n int) ResolverOption {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithRetries sets how many times a transient fetch failure is retried
func WithRetries(n uint64) ResolverOption {
	return func(r *Resolver) {
		r.retries = n
	}
}

// WithInitialInterval sets the first backoff delay between retries
func WithInitialInterval(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		if d > 0 {
			r.initialInterval = d
		}
	}
}

// NewResolver creates a Resolver reading from store
func NewResolver(store repository.DocumentStore, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:           store,
		concurrency:     defaultConcurrency,
		retries:         defaultRetries,
		initialInterval: defaultInitialInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches every (collection, id) pair once into a fresh cache. Individual
// failures are logged and leave the ID absent; Resolve itself never fails.
func (r *Resolver) Resolve(ctx context.Context, ids map[string]IDSet) *EntityCache {
	cache := NewEntityCache()
	r.ResolveInto(ctx, cache, ids)
	return cache
}

// ResolveInto fills an existing cache, skipping pairs it already holds
func (r *Resolver) ResolveInto(ctx context.Context, cache *EntityCache, ids map[string]IDSet) {
	var g errgroup.Group
	g.SetLimit(r.concurrency)

	for collection, set := range ids {
		for _, id := range set.Sorted() {
			if cache.Has(collection, id) {
				continue
			}
			collection, id := collection, id
			g.Go(func() error {
				doc, err := r.fetch(ctx, collection, id)
				if err != nil {
					logResolveFailure(collection, id, err)
					return nil
				}
				cache.Put(collection, doc)
				return nil
			})
		}
	}

	// goroutines never return an error
	_ = g.Wait()
}

// ResolveFor collects the references of records and resolves them in one batch
func (r *Resolver) ResolveFor(ctx context.Context, records []repository.Document, rules ...[]ReferenceRule) *EntityCache {
	cache := NewEntityCache()
	r.ResolveMore(ctx, cache, records, rules...)
	return cache
}

// ResolveMore resolves the references of records into an existing cache. It is
// used for second-level references such as the creator of a reported group.
func (r *Resolver) ResolveMore(ctx context.Context, cache *EntityCache, records []repository.Document, rules ...[]ReferenceRule) {
	ids := make(map[string]IDSet)
	for _, set := range rules {
		ids = Merge(ids, Collect(records, set))
	}
	r.ResolveInto(ctx, cache, ids)
}

func (r *Resolver) fetch(ctx context.Context, collection, id string) (repository.Document, error) {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.initialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, r.retries), ctx)

	return backoff.RetryWithData(func() (repository.Document, error) {
		if err := ctx.Err(); err != nil {
			return repository.Document{}, backoff.Permanent(err)
		}
		doc, err := r.store.GetByID(ctx, collection, id)
		if errors.Is(err, adminerrors.ErrNotFound) {
			return repository.Document{}, backoff.Permanent(err)
		}
		return doc, err
	}, policy)
}

func logResolveFailure(collection, id string, err error) {
	fields := map[string]any{
		"collection": collection,
		"id":         id,
		"error":      err.Error(),
	}
	switch {
	case errors.Is(err, adminerrors.ErrNotFound):
		utils.Debug("reference not found", fields)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		utils.Debug("reference fetch cancelled", fields)
	default:
		utils.Warn("failed to resolve reference", fields)
	}
}
