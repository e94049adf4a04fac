package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	dErrors "atlas/pkg/domain-errors"
)

// RefreshResult summarizes a completed dataset refresh.
type RefreshResult struct {
	Fetched   int       `json:"fetched"`
	Refreshed time.Time `json:"refreshedAt"`
}

// Refresh replaces the full dataset from the upstream provider. Store and
// cache replacement run concurrently; a store failure fails the refresh, a
// cache failure is logged and left for the next read to repair. Derived cache
// entries are invalidated afterwards so they recompute against the new data.
// The operation is idempotent: re-running it converges store and cache.
func (s *Service) Refresh(ctx context.Context) (*RefreshResult, error) {
	ctx, span := s.tracer.Start(ctx, "country.Refresh")
	start := time.Now()
	var err error
	defer func() {
		span.End(err)
		if s.metrics != nil {
			s.metrics.ObserveRefresh(start, err)
		}
	}()

	countries, fetchErr := s.provider.FetchAll(ctx)
	if fetchErr != nil {
		err = fetchErr
		return nil, err
	}
	if len(countries) == 0 {
		err = dErrors.New(dErrors.CodeUpstream, "country provider returned an empty dataset")
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if replaceErr := s.store.ReplaceAll(gctx, countries); replaceErr != nil {
			return dErrors.Wrap(replaceErr, dErrors.CodeInternal, "failed to replace countries")
		}
		return nil
	})
	g.Go(func() error {
		if delErr := s.cache.DeleteList(gctx); delErr != nil {
			s.logger.WarnContext(gctx, "list cache invalidation failed", "error", delErr)
			return nil
		}
		if setErr := s.cache.SetList(gctx, countries); setErr != nil {
			s.logger.WarnContext(gctx, "list cache replacement failed", "error", setErr)
		}
		return nil
	})
	if waitErr := g.Wait(); waitErr != nil {
		err = waitErr
		return nil, err
	}

	if derivedErr := s.cache.DeleteDerived(ctx); derivedErr != nil {
		s.logger.WarnContext(ctx, "derived cache invalidation failed", "error", derivedErr)
	}

	s.logger.InfoContext(ctx, "country dataset refreshed", "countries", len(countries))
	return &RefreshResult{Fetched: len(countries), Refreshed: time.Now().UTC()}, nil
}
