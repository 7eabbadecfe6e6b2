// Package pipeline owns the regeneration cycle and the in-memory
// content state. A run generates and validates a fresh batch for every
// kind, archives each previously current snapshot into the rolling
// history, swaps the snapshots in, and persists best-effort. The
// in-memory state is authoritative for the running process.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/nlamendino/dealday/internal/config"
	"github.com/nlamendino/dealday/internal/generator"
	"github.com/nlamendino/dealday/internal/models"
	"github.com/nlamendino/dealday/internal/storage"
	"github.com/nlamendino/dealday/internal/validator"
)

// Counts reports the per-kind snapshot sizes after a run.
type Counts struct {
	Deals    int `json:"deals"`
	Articles int `json:"articles"`
	News     int `json:"news"`
	Videos   int `json:"videos"`
}

// Snapshot is a point-in-time view of all current collections. The
// slices are replaced wholesale on every commit and never mutated, so
// they are safe to share with readers.
type Snapshot struct {
	Deals      []models.Deal
	Articles   []models.Article
	News       []models.NewsItem
	Videos     []models.VideoItem
	LastUpdate time.Time
}

// Pipeline orchestrates regeneration and serves the committed state.
type Pipeline struct {
	gen      *generator.Generator
	store    *storage.Store
	validate *validator.Validator
	cfg      *config.Config

	// Coalesces concurrent triggers: a trigger arriving while a run is
	// in flight joins that run instead of starting a second one.
	group singleflight.Group

	mu         sync.RWMutex
	deals      []models.Deal
	articles   []models.Article
	news       []models.NewsItem
	videos     []models.VideoItem
	history    []models.ArchiveEntry
	lastUpdate time.Time

	now func() time.Time
}

// New creates a Pipeline with empty snapshots.
func New(gen *generator.Generator, store *storage.Store, cfg *config.Config) *Pipeline {
	return &Pipeline{
		gen:      gen,
		store:    store,
		validate: validator.New(),
		cfg:      cfg,
		deals:    []models.Deal{},
		articles: []models.Article{},
		news:     []models.NewsItem{},
		videos:   []models.VideoItem{},
		history:  []models.ArchiveEntry{},
		now:      time.Now,
	}
}

// LoadFromDisk restores previously persisted snapshots and history.
// Missing or corrupt files degrade to empty collections.
func (p *Pipeline) LoadFromDisk() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.store.Load(string(models.KindDeals), &p.deals)
	p.store.Load(string(models.KindArticles), &p.articles)
	p.store.Load(string(models.KindNews), &p.news)
	p.store.Load(string(models.KindVideos), &p.videos)
	p.store.Load("history", &p.history)
	p.history = p.trimHistory(p.history)

	if len(p.deals) > 0 || len(p.articles) > 0 || len(p.news) > 0 || len(p.videos) > 0 {
		p.lastUpdate = p.now()
		slog.Info("Restored content from disk",
			"deals", len(p.deals), "articles", len(p.articles),
			"news", len(p.news), "videos", len(p.videos),
			"history", len(p.history))
	}
}

// RunAll executes one full regeneration sequence, one batch per kind
// in fixed order. Concurrent callers are coalesced: at most one run is
// active at a time and every caller receives that run's result.
func (p *Pipeline) RunAll(ctx context.Context) (Counts, error) {
	v, err, _ := p.group.Do("regenerate", func() (any, error) {
		return p.runAll(ctx)
	})
	if err != nil {
		return Counts{}, err
	}
	return v.(Counts), nil
}

func (p *Pipeline) runAll(ctx context.Context) (Counts, error) {
	started := p.now()

	// Generate and validate every batch before committing anything, so
	// a failed run leaves all prior snapshots untouched.
	deals := p.gen.Deals(ctx, p.cfg.DealsCount)
	if err := validator.ValidateBatch(p.validate, deals); err != nil {
		return Counts{}, fmt.Errorf("deals batch invalid: %w", err)
	}
	articles := p.gen.Articles(ctx, p.cfg.ArticlesCount)
	if err := validator.ValidateBatch(p.validate, articles); err != nil {
		return Counts{}, fmt.Errorf("articles batch invalid: %w", err)
	}
	news := p.gen.News(ctx, p.cfg.NewsCount)
	if err := validator.ValidateBatch(p.validate, news); err != nil {
		return Counts{}, fmt.Errorf("news batch invalid: %w", err)
	}
	videos := p.gen.Videos(ctx, p.cfg.VideosCount)
	if err := validator.ValidateBatch(p.validate, videos); err != nil {
		return Counts{}, fmt.Errorf("videos batch invalid: %w", err)
	}

	p.mu.Lock()
	p.archiveLocked(models.KindDeals, p.deals)
	p.deals = deals
	p.archiveLocked(models.KindArticles, p.articles)
	p.articles = articles
	p.archiveLocked(models.KindNews, p.news)
	p.news = news
	p.archiveLocked(models.KindVideos, p.videos)
	p.videos = videos
	p.lastUpdate = p.now()
	history := p.history
	p.mu.Unlock()

	// Best-effort durability: a failed write is logged, the in-memory
	// commit stands.
	p.persist(string(models.KindDeals), deals)
	p.persist(string(models.KindArticles), articles)
	p.persist(string(models.KindNews), news)
	p.persist(string(models.KindVideos), videos)
	p.persist("history", history)

	counts := Counts{
		Deals:    len(deals),
		Articles: len(articles),
		News:     len(news),
		Videos:   len(videos),
	}
	slog.Info("Regeneration complete",
		"deals", counts.Deals, "articles", counts.Articles,
		"news", counts.News, "videos", counts.Videos,
		"took", p.now().Sub(started))
	return counts, nil
}

// archiveLocked wraps the previous snapshot of a kind into an archive
// entry, prepends it to the history and applies both retention caps.
// Empty snapshots (first run) are not archived. Caller holds p.mu.
func (p *Pipeline) archiveLocked(kind models.Kind, prev any) {
	switch v := prev.(type) {
	case []models.Deal:
		if len(v) == 0 {
			return
		}
	case []models.Article:
		if len(v) == 0 {
			return
		}
	case []models.NewsItem:
		if len(v) == 0 {
			return
		}
	case []models.VideoItem:
		if len(v) == 0 {
			return
		}
	}

	payload, err := json.Marshal(prev)
	if err != nil {
		slog.Warn("Failed to archive previous snapshot", "kind", kind, "error", err)
		return
	}

	entry := models.ArchiveEntry{Date: p.now(), Kind: kind, Payload: payload}
	p.history = append([]models.ArchiveEntry{entry}, p.history...)
	p.history = p.trimHistory(p.history)
}

// trimHistory applies the retention policy: entries beyond the count
// cap or older than the age window are dropped, whichever cap is
// stricter.
func (p *Pipeline) trimHistory(history []models.ArchiveEntry) []models.ArchiveEntry {
	if len(history) > p.cfg.HistoryMaxEntries {
		history = history[:p.cfg.HistoryMaxEntries]
	}

	cutoff := p.now().Add(-p.cfg.HistoryMaxAge)
	kept := make([]models.ArchiveEntry, 0, len(history))
	for _, e := range history {
		if e.Date.After(cutoff) {
			kept = append(kept, e)
		}
	}
	return kept
}

func (p *Pipeline) persist(name string, v any) {
	if err := p.store.Save(name, v); err != nil {
		slog.Warn("Failed to persist collection", "name", name, "error", err)
	}
}

// Snapshot returns the current committed state.
func (p *Pipeline) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Snapshot{
		Deals:      p.deals,
		Articles:   p.articles,
		News:       p.news,
		Videos:     p.videos,
		LastUpdate: p.lastUpdate,
	}
}

// History returns up to limit most recent archive entries; limit <= 0
// returns the full retained history.
func (p *Pipeline) History(limit int) []models.ArchiveEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if limit <= 0 || limit > len(p.history) {
		limit = len(p.history)
	}
	out := make([]models.ArchiveEntry, limit)
	copy(out, p.history[:limit])
	return out
}
