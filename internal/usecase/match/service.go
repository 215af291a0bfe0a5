// Package match implements the affinity matching and ranking engine.
package match

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	dommatch "github.com/meetgrid/affinity/internal/domain/match"
	"github.com/meetgrid/affinity/internal/domain/profile"
	"github.com/meetgrid/affinity/internal/domain/taxonomy"
	"github.com/meetgrid/affinity/internal/logger"
	"github.com/meetgrid/affinity/internal/metrics"
)

// Match operation targets, used in cache keys and metric labels.
const (
	TargetPeople = "people"
	TargetJobs   = "jobs"
)

// Service orchestrates one match computation per request: cache
// lookup, pool retrieval, concurrent scoring, blending, ranking.
type Service struct {
	retriever   Retriever
	catalogs    CatalogProvider
	blocks      Blocklist
	conns       Connections
	cache       ResponseCache
	scorer      *Scorer
	concurrency int
}

// New creates a match service. concurrency bounds parallel candidate
// scoring; <= 0 selects a sane default.
func New(
	retriever Retriever,
	catalogs CatalogProvider,
	blocks Blocklist,
	conns Connections,
	cache ResponseCache,
	scorer *Scorer,
	concurrency int,
) *Service {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &Service{
		retriever:   retriever,
		catalogs:    catalogs,
		blocks:      blocks,
		conns:       conns,
		cache:       cache,
		scorer:      scorer,
		concurrency: concurrency,
	}
}

// MatchPeople ranks user profiles against the actor.
func (s *Service) MatchPeople(ctx context.Context, req dommatch.Request) (dommatch.Page, error) {
	return s.match(ctx, TargetPeople, profile.KindUser, req)
}

// MatchJobs ranks job postings against the actor.
func (s *Service) MatchJobs(ctx context.Context, req dommatch.Request) (dommatch.Page, error) {
	return s.match(ctx, TargetJobs, profile.KindJob, req)
}

func (s *Service) match(
	ctx context.Context, target string, kind profile.Kind, req dommatch.Request,
) (page dommatch.Page, err error) {
	start := time.Now()
	log := logger.FromContext(ctx).With(
		zap.String("match_id", uuid.NewString()),
		zap.String("target", target),
	)
	ctx = logger.ContextWithLogger(ctx, log)

	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.MatchRequestsTotal.WithLabelValues(target, status).Inc()
		metrics.MatchDuration.WithLabelValues(target).Observe(time.Since(start).Seconds())
	}()

	var actor profile.Profile
	if !req.IsAnonymous() {
		actor, err = s.retriever.Actor(ctx, req.ActorID())
		if err != nil {
			return dommatch.Page{}, fmt.Errorf("load actor: %w", err)
		}
	}
	cfg := dommatch.ResolveConfig(actor.Prefs, req.ConfigOverride())

	if cached, ok := s.cache.Get(ctx, target, req, cfg); ok {
		log.Debug("match served from cache")
		return cached, nil
	}

	// Connection statuses serve both the connections-only restriction
	// and per-item annotation; fetch them once.
	statuses := map[string]dommatch.Status{}
	if !req.IsAnonymous() {
		statuses, err = s.conns.StatusesFor(ctx, req.ActorID())
		if err != nil {
			return dommatch.Page{}, fmt.Errorf("load connections: %w", err)
		}
	}

	if req.Filters().ConnectionsOnly {
		connected := connectedSet(statuses)
		if len(connected) == 0 {
			page = dommatch.EmptyPage()
			s.cache.Set(ctx, target, req, cfg, page)
			return page, nil
		}
	}

	exclude := map[string]struct{}{}
	if !req.IsAnonymous() {
		exclude, err = s.blocks.BlockedIDs(ctx, req.ActorID())
		if err != nil {
			return dommatch.Page{}, fmt.Errorf("load blocklist: %w", err)
		}
	}

	candidates, err := s.retriever.Retrieve(
		ctx, req.ActorID(), kind, req.Filters(), exclude, req.Limit(), req.Offset(),
	)
	if err != nil {
		return dommatch.Page{}, err
	}

	if req.Filters().ConnectionsOnly {
		connected := connectedSet(statuses)
		kept := candidates[:0]
		for _, c := range candidates {
			if _, ok := connected[c.ID]; ok {
				kept = append(kept, c)
			}
		}
		candidates = kept
	}

	metrics.MatchCandidatePoolSize.WithLabelValues(target).Observe(float64(len(candidates)))

	results, err := s.score(ctx, actor, candidates, req, cfg)
	if err != nil {
		return dommatch.Page{}, err
	}

	for i := range results {
		status, ok := statuses[results[i].Profile.ID]
		if !ok {
			status = dommatch.StatusNone
		}
		results[i].ConnectionStatus = status
	}

	page = Rank(results, req.Filters().ConnectionStatuses, req.Offset(), req.Limit())
	s.cache.Set(ctx, target, req, cfg, page)

	log.Info("match computed",
		zap.Int("pool", len(candidates)),
		zap.Int("count", page.Count),
		zap.Int("returned", len(page.Items)),
		zap.Bool("bidirectional", cfg.Bidirectional),
		zap.String("formula", string(cfg.Formula)),
	)
	return page, nil
}

// score runs the scorer over the pool with bounded parallelism. An
// anonymous actor has no wants to score against, so every candidate
// keeps percent 0 and ranking falls through to recency.
func (s *Service) score(
	ctx context.Context,
	actor profile.Profile,
	candidates []profile.Profile,
	req dommatch.Request,
	cfg dommatch.Config,
) ([]dommatch.Result, error) {
	results := make([]dommatch.Result, len(candidates))

	if req.IsAnonymous() {
		for i, cand := range candidates {
			results[i] = dommatch.Result{Profile: cand, Breakdown: map[taxonomy.Level]float64{}}
		}
		return results, nil
	}

	catalog, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, cand := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			own, breakdown := s.scorer.Score(actor.Wants, cand.Offers, catalog)
			percent := own
			if cfg.Bidirectional {
				reverse, _ := s.scorer.Score(cand.Wants, actor.Offers, catalog)
				percent = Combine(own, reverse, cfg.Formula)
			}

			results[i] = dommatch.Result{Profile: cand, Percent: percent, Breakdown: breakdown}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func connectedSet(statuses map[string]dommatch.Status) map[string]struct{} {
	connected := make(map[string]struct{})
	for id, status := range statuses {
		if status == dommatch.StatusConnected {
			connected[id] = struct{}{}
		}
	}
	return connected
}
