// Package generator produces the synthetic content batches: deals,
// articles, news items and video reviews. Generation is pure given a
// randomness source; the optional enrichment capability only replaces
// description text and every failure degrades to a static fallback so
// a batch always completes.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/nlamendino/dealday/internal/catalog"
	"github.com/nlamendino/dealday/internal/models"
	"github.com/nlamendino/dealday/internal/util"
)

// Enricher is the external text-generation capability. Implementations
// fail with ai.ErrUnavailable; callers substitute a fallback string.
type Enricher interface {
	Generate(ctx context.Context, prompt string, maxOutputLen int) (string, error)
}

const (
	// dedupeAttempts bounds random re-sampling when a drawn seed is
	// already in the batch, before falling back to a pool scan.
	dedupeAttempts = 5

	excerptMaxLen = 180

	discountMin = 10
	discountMax = 50
	ratingMin   = 3.5
	ratingSpan  = 1.4 // keeps rounded ratings inside [3.5, 4.9]
	reviewsMin  = 50
	reviewsSpan = 4950
)

// Generator builds content batches from the static catalog.
type Generator struct {
	rng        *rand.Rand
	enricher   Enricher // nil means template-only mode
	maxDescLen int
	fallback   string
	now        func() time.Time
}

// New creates a Generator. enricher may be nil; the decision whether
// enrichment is available is made once at startup, not per call.
func New(rng *rand.Rand, enricher Enricher, maxDescLen int, fallback string) *Generator {
	return &Generator{
		rng:        rng,
		enricher:   enricher,
		maxDescLen: maxDescLen,
		fallback:   fallback,
		now:        time.Now,
	}
}

// pickSeeds draws up to count distinct indexes into a pool of size n.
// Each draw retries a bounded number of times on a duplicate, then
// scans for any unused seed; when the pool is exhausted the batch
// simply stays smaller than requested.
func (g *Generator) pickSeeds(n, count int) []int {
	if n == 0 || count <= 0 {
		return nil
	}
	used := make([]bool, n)
	picked := make([]int, 0, count)
	for len(picked) < count {
		idx := -1
		for attempt := 0; attempt < dedupeAttempts; attempt++ {
			if c := g.rng.IntN(n); !used[c] {
				idx = c
				break
			}
		}
		if idx == -1 {
			start := g.rng.IntN(n)
			for off := 0; off < n; off++ {
				if c := (start + off) % n; !used[c] {
					idx = c
					break
				}
			}
		}
		if idx == -1 {
			break
		}
		used[idx] = true
		picked = append(picked, idx)
	}
	return picked
}

// Deals generates a batch of at most count deals, unique by title.
func (g *Generator) Deals(ctx context.Context, count int) []models.Deal {
	idxs := g.pickSeeds(len(catalog.Products), count)
	deals := make([]models.Deal, 0, len(idxs))
	for i, idx := range idxs {
		deals = append(deals, g.deal(ctx, i+1, catalog.Products[idx]))
	}
	return deals
}

func (g *Generator) deal(ctx context.Context, id int, p catalog.Product) models.Deal {
	discount := discountMin + g.rng.IntN(discountMax-discountMin+1)
	original := util.Round2(p.BasePrice)
	pool := catalog.ImagePool(p.Category)

	return models.Deal{
		ID:            id,
		Title:         p.Name,
		Category:      p.Category,
		OriginalPrice: original,
		DiscountPrice: util.Round2(original * (1 - float64(discount)/100)),
		Discount:      discount,
		Rating:        g.rating(),
		Reviews:       reviewsMin + g.rng.IntN(reviewsSpan),
		Description:   g.dealDescription(ctx, p, discount),
		Image:         pool[g.rng.IntN(len(pool))],
		AddedAt:       g.now(),
	}
}

func (g *Generator) rating() float64 {
	return util.Round1(ratingMin + g.rng.Float64()*ratingSpan)
}

func (g *Generator) dealDescription(ctx context.Context, p catalog.Product, discount int) string {
	if g.enricher == nil {
		return util.Truncate(fmt.Sprintf(catalog.DescriptionTemplate(p.Category), p.Name), g.maxDescLen)
	}

	prompt := fmt.Sprintf(
		"Scrivi una breve descrizione accattivante in italiano, massimo due frasi, per questa offerta: %s con sconto del %d%%. Solo il testo della descrizione.",
		p.Name, discount)
	text, err := g.enricher.Generate(ctx, prompt, g.maxDescLen)
	if err != nil {
		slog.Warn("Enrichment failed, using fallback description", "product", p.Name, "error", err)
		return g.fallback
	}
	return util.Truncate(text, g.maxDescLen)
}

// Articles generates a batch of at most count articles, unique by title.
func (g *Generator) Articles(ctx context.Context, count int) []models.Article {
	idxs := g.pickSeeds(len(catalog.ArticleSeeds), count)
	articles := make([]models.Article, 0, len(idxs))
	for i, idx := range idxs {
		articles = append(articles, g.article(ctx, i+1, catalog.ArticleSeeds[idx]))
	}
	return articles
}

func (g *Generator) article(ctx context.Context, id int, seed catalog.ArticleSeed) models.Article {
	content := g.articleContent(ctx, seed)

	return models.Article{
		ID:         id,
		Title:      seed.Topic,
		Excerpt:    util.Truncate(content, excerptMaxLen),
		Content:    content,
		Conclusion: fmt.Sprintf("In conclusione: seguire le offerte giuste fa la differenza, e %q è il punto di partenza ideale.", seed.Topic),
		Category:   seed.Category,
		Date:       g.now().Format("2006-01-02"),
		ReadTime:   fmt.Sprintf("%d min", 3+g.rng.IntN(10)),
	}
}

func (g *Generator) articleContent(ctx context.Context, seed catalog.ArticleSeed) string {
	if g.enricher == nil {
		return fmt.Sprintf(
			"Abbiamo selezionato per voi i prodotti migliori del momento nella categoria %s. In questa guida, %q, trovate consigli pratici, confronti sui prezzi e indicazioni su quando conviene davvero acquistare.",
			seed.Category, seed.Topic)
	}

	prompt := fmt.Sprintf(
		"Scrivi un breve articolo in italiano, tre o quattro frasi, dal titolo %q per un sito di offerte, categoria %s. Solo il testo dell'articolo.",
		seed.Topic, seed.Category)
	text, err := g.enricher.Generate(ctx, prompt, g.maxDescLen*3)
	if err != nil {
		slog.Warn("Enrichment failed, using fallback article body", "topic", seed.Topic, "error", err)
		return g.fallback
	}
	return text
}

// News generates a batch of at most count news items, unique by title.
func (g *Generator) News(_ context.Context, count int) []models.NewsItem {
	idxs := g.pickSeeds(len(catalog.NewsSeeds), count)
	items := make([]models.NewsItem, 0, len(idxs))
	for i, idx := range idxs {
		seed := catalog.NewsSeeds[idx]
		content := fmt.Sprintf(
			"%s. La redazione segue la promozione in tempo reale: tutti i dettagli, le condizioni e la durata sono riportati nella pagina dedicata alla categoria %s.",
			seed.Title, seed.Category)
		items = append(items, models.NewsItem{
			ID:       i + 1,
			Title:    seed.Title,
			Excerpt:  util.Truncate(content, excerptMaxLen),
			Content:  content,
			Icon:     seed.Icon,
			Category: seed.Category,
			Author:   catalog.Authors[g.rng.IntN(len(catalog.Authors))],
			Date:     g.now().Format("2006-01-02"),
		})
	}
	return items
}

// Videos generates a batch of at most count video reviews, unique by
// product.
func (g *Generator) Videos(_ context.Context, count int) []models.VideoItem {
	idxs := g.pickSeeds(len(catalog.VideoSeeds), count)
	videos := make([]models.VideoItem, 0, len(idxs))
	for i, idx := range idxs {
		seed := catalog.VideoSeeds[idx]
		videoID := g.videoID()
		videos = append(videos, models.VideoItem{
			ID:          i + 1,
			Product:     seed.Product,
			Youtuber:    seed.Youtuber,
			Channel:     seed.Channel,
			VideoID:     videoID,
			Thumbnail:   fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", videoID),
			Views:       util.FormatViews(1000 + g.rng.IntN(2_000_000)),
			Rating:      g.rating(),
			Description: fmt.Sprintf("Recensione completa di %s a cura di %s: unboxing, prova sul campo e verdetto finale.", seed.Product, seed.Youtuber),
			Category:    seed.Category,
		})
	}
	return videos
}

const videoIDChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

func (g *Generator) videoID() string {
	b := make([]byte, 11)
	for i := range b {
		b[i] = videoIDChars[g.rng.IntN(len(videoIDChars))]
	}
	return string(b)
}
