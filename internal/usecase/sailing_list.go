package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/logger"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/timeutil"
)

// DefaultFetchTimeout bounds the time spent gathering sailings from all sources.
const DefaultFetchTimeout = 5 * time.Second

// SailingListUseCase defines the interface for listing operations.
type SailingListUseCase interface {
	// List gathers sailings from every source, runs them through the listing
	// pipeline and replays the requested actions. Source failures degrade to
	// fewer (or zero) sailings; only cancellation of ctx is returned as an error.
	List(ctx context.Context, opts ListOptions) (*domain.ListingPage, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// FetchTimeout bounds the gather phase
	FetchTimeout time.Duration

	// PageSize is the default number of sailings per page
	PageSize int

	// Calendar parses departure dates for ordering
	Calendar timeutil.Calendar
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		FetchTimeout: DefaultFetchTimeout,
		PageSize:     domain.DefaultPageSize,
		Calendar:     timeutil.NewUSCalendar(),
	}
}

type sailingListUseCase struct {
	sources      []domain.SailingSource
	fetchTimeout time.Duration
	pageSize     int
	cal          timeutil.Calendar
	log          *logger.Logger
}

// NewSailingListUseCase creates a new SailingListUseCase over the given sources.
// If config is nil, defaults are used. A nil logger disables logging.
func NewSailingListUseCase(sources []domain.SailingSource, config *Config, log *logger.Logger) SailingListUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.FetchTimeout > 0 {
			cfg.FetchTimeout = config.FetchTimeout
		}
		if config.PageSize > 0 {
			cfg.PageSize = min(config.PageSize, domain.MaxPageSize)
		}
		if config.Calendar != nil {
			cfg.Calendar = config.Calendar
		}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &sailingListUseCase{
		sources:      sources,
		fetchTimeout: cfg.FetchTimeout,
		pageSize:     cfg.PageSize,
		cal:          cfg.Calendar,
		log:          log,
	}
}

// sourceResult holds the outcome of fetching a single source.
type sourceResult struct {
	Source   string
	Sailings []domain.Sailing
	Error    error
	Duration time.Duration
}

// List implements SailingListUseCase.List.
func (uc *sailingListUseCase) List(ctx context.Context, opts ListOptions) (*domain.ListingPage, error) {
	start := time.Now()

	raw := uc.gather(ctx)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list sailings: %w", err)
	}

	pageSize := uc.pageSize
	if opts.PageSize > 0 {
		pageSize = min(opts.PageSize, domain.MaxPageSize)
	}

	state := Initialize(raw, pageSize, WithCalendar(uc.cal))
	if opts.Reset {
		state = state.Reset()
	} else {
		for _, spec := range opts.Sorts {
			state = state.ApplySort(spec)
		}
		for _, key := range opts.Toggles {
			state = state.Toggle(key)
		}
	}

	scroll := false
	if opts.HasPage() {
		state, scroll = state.ChangePage(opts.Page)
	}

	listing := state.Listing(scroll)

	uc.log.Debug().
		Int("fetched", len(raw)).
		Int("distinct", listing.TotalResults).
		Int("page", listing.Page).
		Str("sort_key", string(listing.Sort.Key)).
		Str("sort_direction", string(listing.Sort.Direction)).
		Dur("duration", time.Since(start)).
		Msg("listing built")

	return &listing, nil
}

// gather fetches all sources concurrently and concatenates their sailings in
// source order. Failed sources are logged and skipped.
func (uc *sailingListUseCase) gather(ctx context.Context) []domain.Sailing {
	if len(uc.sources) == 0 {
		uc.log.Warn().Msg("no sailing sources configured")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancel()

	results := make([]sourceResult, len(uc.sources))

	var wg sync.WaitGroup
	for i, source := range uc.sources {
		wg.Add(1)
		go func(i int, src domain.SailingSource) {
			defer wg.Done()
			results[i] = uc.fetchSource(ctx, src)
		}(i, source)
	}
	wg.Wait()

	var sailings []domain.Sailing
	for _, r := range results {
		if r.Error != nil {
			uc.log.WithSource(r.Source).Warn().
				Err(r.Error).
				Dur("duration", r.Duration).
				Msg("sailing source failed, continuing without it")
			continue
		}
		sailings = append(sailings, r.Sailings...)
	}

	return sailings
}

// fetchSource fetches a single source with panic recovery.
func (uc *sailingListUseCase) fetchSource(ctx context.Context, source domain.SailingSource) (result sourceResult) {
	start := time.Now()
	name := source.Name()

	defer func() {
		if r := recover(); r != nil {
			result = sourceResult{
				Source:   name,
				Error:    domain.NewSourceError(name, fmt.Errorf("source panic: %v", r)),
				Duration: time.Since(start),
			}
		}
	}()

	sailings, err := source.Fetch(ctx)
	return sourceResult{
		Source:   name,
		Sailings: sailings,
		Error:    err,
		Duration: time.Since(start),
	}
}

// Ensure sailingListUseCase implements SailingListUseCase at compile time.
var _ SailingListUseCase = (*sailingListUseCase)(nil)
