package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medisearch-be/internal/dto"
	"medisearch-be/internal/pkg/logger"
	"medisearch-be/internal/repository/unitofwork"
	"medisearch-be/pkg/events"
	"medisearch-be/pkg/fedsearch"
	pktNats "medisearch-be/pkg/nats"
	"medisearch-be/pkg/store"

	"github.com/google/uuid"
)

type ISearchService interface {
	SearchTrials(ctx context.Context, req *dto.SearchRequest) (*dto.TrialSearchResponse, error)
	SearchPublications(ctx context.Context, req *dto.SearchRequest) (*dto.PublicationSearchResponse, error)
	SearchResearchers(ctx context.Context, req *dto.SearchRequest, viewerId *uuid.UUID) (*dto.ResearcherSearchResponse, error)
}

// searchService runs the full pipeline for every request: normalize, cache
// probe, fan-out, dedupe, rank, paginate, cache fill, async analytics.
type searchService struct {
	uowFactory        unitofwork.RepositoryFactory
	cache             store.CacheStore
	logger            logger.ILogger
	trialSources      []fedsearch.Source[fedsearch.Trial]
	pubSources        []fedsearch.Source[fedsearch.Publication]
	researcherSources []fedsearch.Source[fedsearch.Researcher]
	fanOutTimeout     time.Duration
	publisherService  IPublisherService
	eventPublisher    *pktNats.Publisher
}

func NewSearchService(
	uowFactory unitofwork.RepositoryFactory,
	cache store.CacheStore,
	log logger.ILogger,
	trialSources []fedsearch.Source[fedsearch.Trial],
	pubSources []fedsearch.Source[fedsearch.Publication],
	researcherSources []fedsearch.Source[fedsearch.Researcher],
	fanOutTimeout time.Duration,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) ISearchService {
	if fanOutTimeout <= 0 {
		fanOutTimeout = fedsearch.DefaultFanOutTimeout
	}
	return &searchService{
		uowFactory:        uowFactory,
		cache:             cache,
		logger:            log,
		trialSources:      trialSources,
		pubSources:        pubSources,
		researcherSources: researcherSources,
		fanOutTimeout:     fanOutTimeout,
		publisherService:  publisherService,
		eventPublisher:    eventPublisher,
	}
}

// applicableSources filters the configured sources by the query's source
// selector. The local store answers for "all" and "internal"; a named
// external selector runs only that source.
func applicableSources[T any](q fedsearch.Query, sources []fedsearch.Source[T]) []fedsearch.Source[T] {
	var out []fedsearch.Source[T]
	for _, src := range sources {
		if src.Name() == fedsearch.SourceInternal {
			if q.WantsInternal() {
				out = append(out, src)
			}
			continue
		}
		if !q.InternalOnly() && q.WantsSource(src.Name()) {
			out = append(out, src)
		}
	}
	return out
}

func (s *searchService) SearchTrials(ctx context.Context, req *dto.SearchRequest) (*dto.TrialSearchResponse, error) {
	start := time.Now()

	q, err := fedsearch.Normalize(req.ToParams())
	if err != nil {
		return nil, err
	}

	key := q.CacheKey(fedsearch.KindTrials)
	if cached := s.cacheGet(ctx, key); cached != nil {
		var resp dto.TrialSearchResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			resp.Cached = true
			s.recordSearch(ctx, fedsearch.KindTrials, q, resp.Pagination.TotalCount, true, start)
			return &resp, nil
		}
		// A poisoned entry behaves like a miss.
		s.logger.Warn("search", "discarding unreadable cache entry", map[string]interface{}{"key": key})
	}

	result := fedsearch.FanOut(ctx, q, applicableSources(q, s.trialSources), s.fanOutTimeout)
	s.logWarnings(fedsearch.KindTrials, q, result.Warnings)

	merged := fedsearch.RankTrials(fedsearch.DedupeTrials(result.Records))

	internal := 0
	for _, t := range merged {
		if t.IsInternal {
			internal++
		}
	}

	items, pagination := fedsearch.Paginate(merged, q.Page, q.Limit)

	resp := &dto.TrialSearchResponse{
		Items:      items,
		Pagination: pagination,
		Internal:   internal,
		External:   len(merged) - internal,
		Source:     q.Source,
		Cached:     false,
		Message:    emptyResultMessage(q, len(merged)),
		Warnings:   result.Warnings,
	}

	s.cacheSet(ctx, key, resp, store.TrialTTL)
	s.recordSearch(ctx, fedsearch.KindTrials, q, pagination.TotalCount, false, start)
	return resp, nil
}

func (s *searchService) SearchPublications(ctx context.Context, req *dto.SearchRequest) (*dto.PublicationSearchResponse, error) {
	start := time.Now()

	q, err := fedsearch.Normalize(req.ToParams())
	if err != nil {
		return nil, err
	}

	key := q.CacheKey(fedsearch.KindPublications)
	if cached := s.cacheGet(ctx, key); cached != nil {
		var resp dto.PublicationSearchResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			resp.Cached = true
			s.recordSearch(ctx, fedsearch.KindPublications, q, resp.Pagination.TotalCount, true, start)
			return &resp, nil
		}
		s.logger.Warn("search", "discarding unreadable cache entry", map[string]interface{}{"key": key})
	}

	result := fedsearch.FanOut(ctx, q, applicableSources(q, s.pubSources), s.fanOutTimeout)
	s.logWarnings(fedsearch.KindPublications, q, result.Warnings)

	merged := fedsearch.RankPublications(fedsearch.DedupePublications(result.Records))

	internal := 0
	for _, p := range merged {
		if p.IsInternal {
			internal++
		}
	}

	items, pagination := fedsearch.Paginate(merged, q.Page, q.Limit)

	resp := &dto.PublicationSearchResponse{
		Items:      items,
		Pagination: pagination,
		Internal:   internal,
		External:   len(merged) - internal,
		Source:     q.Source,
		Cached:     false,
		Message:    emptyResultMessage(q, len(merged)),
		Warnings:   result.Warnings,
	}

	s.cacheSet(ctx, key, resp, store.PublicationTTL)
	s.recordSearch(ctx, fedsearch.KindPublications, q, pagination.TotalCount, false, start)
	return resp, nil
}

func (s *searchService) SearchResearchers(ctx context.Context, req *dto.SearchRequest, viewerId *uuid.UUID) (*dto.ResearcherSearchResponse, error) {
	start := time.Now()

	q, err := fedsearch.Normalize(req.ToParams())
	if err != nil {
		return nil, err
	}

	// The cache key is viewer independent; connection status is layered
	// onto the page after the hit or miss resolves.
	key := q.CacheKey(fedsearch.KindResearchers)
	if cached := s.cacheGet(ctx, key); cached != nil {
		var resp dto.ResearcherSearchResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			resp.Cached = true
			s.applyConnectionStatus(ctx, resp.Items, viewerId)
			s.recordSearch(ctx, fedsearch.KindResearchers, q, resp.Pagination.TotalCount, true, start)
			return &resp, nil
		}
		s.logger.Warn("search", "discarding unreadable cache entry", map[string]interface{}{"key": key})
	}

	result := fedsearch.FanOut(ctx, q, applicableSources(q, s.researcherSources), s.fanOutTimeout)
	s.logWarnings(fedsearch.KindResearchers, q, result.Warnings)

	merged := fedsearch.RankResearchers(fedsearch.DedupeResearchers(result.Records), q.Location)

	internal := 0
	for _, r := range merged {
		if r.IsInternal {
			internal++
		}
	}

	items, pagination := fedsearch.Paginate(merged, q.Page, q.Limit)

	resp := &dto.ResearcherSearchResponse{
		Items:      items,
		Pagination: pagination,
		Internal:   internal,
		External:   len(merged) - internal,
		Source:     q.Source,
		Cached:     false,
		Message:    emptyResultMessage(q, len(merged)),
		Warnings:   result.Warnings,
	}

	// Cached before connection status is applied so entries stay shareable
	// across viewers.
	s.cacheSet(ctx, key, resp, store.ResearcherTTL)
	s.applyConnectionStatus(ctx, resp.Items, viewerId)
	s.recordSearch(ctx, fedsearch.KindResearchers, q, pagination.TotalCount, false, start)
	return resp, nil
}

// applyConnectionStatus decorates internal researchers on the current page
// with the viewer's connection state. Anonymous viewers see no status.
func (s *searchService) applyConnectionStatus(ctx context.Context, items []fedsearch.Researcher, viewerId *uuid.UUID) {
	if viewerId == nil || len(items) == 0 {
		return
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	for i := range items {
		if !items[i].IsInternal {
			continue
		}
		researcherId, err := uuid.Parse(items[i].ID)
		if err != nil {
			continue
		}
		status, err := uow.ConnectionRepository().StatusBetween(ctx, *viewerId, researcherId)
		if err != nil {
			s.logger.Warn("search", "connection status lookup failed", map[string]interface{}{
				"researcher_id": researcherId,
				"error":         err.Error(),
			})
			continue
		}
		items[i].ConnectionStatus = status
	}
}

func (s *searchService) cacheGet(ctx context.Context, key string) []byte {
	b, err := s.cache.Get(ctx, key)
	if err != nil {
		// A broken cache degrades to an always-miss cache.
		s.logger.Warn("search", "cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		return nil
	}
	return b
}

func (s *searchService) cacheSet(ctx context.Context, key string, resp interface{}, ttl time.Duration) {
	b, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("search", "cache marshal failed", map[string]interface{}{"key": key, "error": err.Error()})
		return
	}
	// Entries expire by TTL only. Writes to the local store do not
	// invalidate; a freshly added record may stay invisible until expiry.
	if err := s.cache.Set(ctx, key, b, ttl); err != nil {
		s.logger.Warn("search", "cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (s *searchService) logWarnings(kind fedsearch.Kind, q fedsearch.Query, warnings []string) {
	for _, w := range warnings {
		s.logger.Warn("search", "source failed during fan-out", map[string]interface{}{
			"kind":    string(kind),
			"term":    q.Term,
			"warning": w,
		})
	}
}

// recordSearch hands the completed search to the async analytics pipeline
// and emits the bus event. Neither can fail the request.
func (s *searchService) recordSearch(ctx context.Context, kind fedsearch.Kind, q fedsearch.Query, resultCount int, cached bool, start time.Time) {
	term := q.Term
	if term == "" {
		term = q.NameFilter
	}

	if s.publisherService != nil {
		payload := dto.PublishSearchLogMessage{
			Kind:        string(kind),
			Term:        term,
			Location:    q.Location,
			Source:      q.Source,
			ResultCount: resultCount,
			Cached:      cached,
			DurationMs:  time.Since(start).Milliseconds(),
		}
		if msgJson, err := json.Marshal(payload); err == nil {
			if err := s.publisherService.Publish(ctx, msgJson); err != nil {
				s.logger.Warn("search", "failed to publish search log", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewSearchCompleted(string(kind), term, q.Source, resultCount, cached)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("search", "failed to publish SEARCH_COMPLETED event", map[string]interface{}{"error": err.Error()})
		}
	}
}

func emptyResultMessage(q fedsearch.Query, total int) string {
	if total > 0 {
		return ""
	}
	term := q.Term
	if term == "" {
		term = q.NameFilter
	}
	return fmt.Sprintf("No results found for %s. Try different keywords.", term)
}
