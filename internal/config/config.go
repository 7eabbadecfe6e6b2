package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config carries all runtime settings, sourced from the process
// environment. Absence of the enrichment credential is not an error:
// the service degrades to template-only descriptions.
type Config struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string
	DataDir      string
	PublicDir    string

	// RegenHour/RegenMinute is the local wall-clock time of the daily
	// regeneration run.
	RegenHour   int
	RegenMinute int

	DealsCount    int
	ArticlesCount int
	NewsCount     int
	VideosCount   int

	HistoryMaxEntries int
	HistoryMaxAge     time.Duration

	DescriptionMaxLen   int
	FallbackDescription string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		slog.Info("Defaulting to port", "port", port)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		slog.Warn("GEMINI_API_KEY not set, descriptions will use templates only")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "public"
	}

	regenTime := os.Getenv("REGEN_TIME")
	if regenTime == "" {
		regenTime = "08:00"
	}
	regenAt, err := time.Parse("15:04", regenTime)
	if err != nil {
		return nil, fmt.Errorf("invalid REGEN_TIME %q: %w", regenTime, err)
	}

	dealsCount, err := intEnv("DEALS_COUNT", 12)
	if err != nil {
		return nil, err
	}
	articlesCount, err := intEnv("ARTICLES_COUNT", 3)
	if err != nil {
		return nil, err
	}
	newsCount, err := intEnv("NEWS_COUNT", 5)
	if err != nil {
		return nil, err
	}
	videosCount, err := intEnv("VIDEOS_COUNT", 5)
	if err != nil {
		return nil, err
	}

	historyMaxEntries, err := intEnv("HISTORY_MAX_ENTRIES", 500)
	if err != nil {
		return nil, err
	}

	historyMaxAgeStr := os.Getenv("HISTORY_MAX_AGE")
	if historyMaxAgeStr == "" {
		historyMaxAgeStr = "720h" // 30 days
	}
	historyMaxAge, err := time.ParseDuration(historyMaxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_MAX_AGE %q: %w", historyMaxAgeStr, err)
	}

	descriptionMaxLen, err := intEnv("DESCRIPTION_MAX_LEN", 220)
	if err != nil {
		return nil, err
	}

	fallback := os.Getenv("FALLBACK_DESCRIPTION")
	if fallback == "" {
		fallback = "Offerta del giorno su un prodotto selezionato: disponibilità limitata."
	}

	return &Config{
		Port:                port,
		GeminiAPIKey:        apiKey,
		GeminiModel:         model,
		DataDir:             dataDir,
		PublicDir:           publicDir,
		RegenHour:           regenAt.Hour(),
		RegenMinute:         regenAt.Minute(),
		DealsCount:          dealsCount,
		ArticlesCount:       articlesCount,
		NewsCount:           newsCount,
		VideosCount:         videosCount,
		HistoryMaxEntries:   historyMaxEntries,
		HistoryMaxAge:       historyMaxAge,
		DescriptionMaxLen:   descriptionMaxLen,
		FallbackDescription: fallback,
	}, nil
}

func intEnv(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return parsed, nil
}
