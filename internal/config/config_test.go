package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("REGEN_TIME", "")
	t.Setenv("DEALS_COUNT", "")
	t.Setenv("HISTORY_MAX_ENTRIES", "")
	t.Setenv("HISTORY_MAX_AGE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("Expected empty API key, got %s", cfg.GeminiAPIKey)
	}
	if cfg.RegenHour != 8 || cfg.RegenMinute != 0 {
		t.Errorf("Expected default regen time 08:00, got %02d:%02d", cfg.RegenHour, cfg.RegenMinute)
	}
	if cfg.DealsCount != 12 || cfg.ArticlesCount != 3 || cfg.NewsCount != 5 || cfg.VideosCount != 5 {
		t.Errorf("Unexpected default batch sizes: %d/%d/%d/%d",
			cfg.DealsCount, cfg.ArticlesCount, cfg.NewsCount, cfg.VideosCount)
	}
	if cfg.HistoryMaxEntries != 500 {
		t.Errorf("Expected default HistoryMaxEntries 500, got %d", cfg.HistoryMaxEntries)
	}
	if cfg.HistoryMaxAge != 720*time.Hour {
		t.Errorf("Expected default HistoryMaxAge 720h, got %s", cfg.HistoryMaxAge)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-test")
	t.Setenv("REGEN_TIME", "06:30")
	t.Setenv("DEALS_COUNT", "4")
	t.Setenv("HISTORY_MAX_AGE", "48h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected 9090, got %s", cfg.Port)
	}
	if cfg.GeminiAPIKey != "test-key" || cfg.GeminiModel != "gemini-test" {
		t.Errorf("Unexpected Gemini settings: %s / %s", cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	if cfg.RegenHour != 6 || cfg.RegenMinute != 30 {
		t.Errorf("Expected regen time 06:30, got %02d:%02d", cfg.RegenHour, cfg.RegenMinute)
	}
	if cfg.DealsCount != 4 {
		t.Errorf("Expected DealsCount 4, got %d", cfg.DealsCount)
	}
	if cfg.HistoryMaxAge != 48*time.Hour {
		t.Errorf("Expected 48h, got %s", cfg.HistoryMaxAge)
	}
}

func TestLoad_InvalidRegenTime(t *testing.T) {
	t.Setenv("REGEN_TIME", "not-a-time")

	_, err := Load()
	if err == nil {
		t.Error("Load() should return error for invalid REGEN_TIME")
	}
}

func TestLoad_InvalidCount(t *testing.T) {
	t.Setenv("REGEN_TIME", "")
	t.Setenv("DEALS_COUNT", "twelve")

	_, err := Load()
	if err == nil {
		t.Error("Load() should return error for invalid DEALS_COUNT")
	}
}

func TestLoad_InvalidHistoryMaxAge(t *testing.T) {
	t.Setenv("DEALS_COUNT", "")
	t.Setenv("HISTORY_MAX_AGE", "30days")

	_, err := Load()
	if err == nil {
		t.Error("Load() should return error for invalid HISTORY_MAX_AGE")
	}
}
