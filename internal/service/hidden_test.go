package service

import (
	"context"
	"testing"

	"github.com/requestarr/requestarr/internal/domain"
)

func TestHiddenMediaFiltersBothSets(t *testing.T) {
	settings := newFakeSettings()
	settings.hiddenKeys = []string{"550:movie"}
	settings.blacklistKeys = []string{"1399:tv"}

	h := NewHiddenMedia(settings, nil)
	if h.Loaded() {
		t.Fatal("sets must not report loaded before Refresh")
	}
	if err := h.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !h.Loaded() {
		t.Fatal("Loaded should be true after a successful refresh")
	}

	hiddenCard := domain.MediaCard{TmdbID: 550, MediaType: domain.MediaTypeMovie}
	blacklisted := domain.MediaCard{TmdbID: 1399, MediaType: domain.MediaTypeTV}
	visible := domain.MediaCard{TmdbID: 680, MediaType: domain.MediaTypeMovie}

	if h.Visible(hiddenCard) {
		t.Fatal("hidden card leaked through the filter")
	}
	if h.Visible(blacklisted) {
		t.Fatal("blacklisted card leaked through the filter")
	}
	if !h.Visible(visible) {
		t.Fatal("unrelated card was filtered")
	}
}

func TestUnhideUpdatesLocalSet(t *testing.T) {
	settings := newFakeSettings()
	settings.hiddenKeys = []string{"550:movie"}

	h := NewHiddenMedia(settings, nil)
	if err := h.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if err := h.Unhide(context.Background(), 550, domain.MediaTypeMovie); err != nil {
		t.Fatalf("Unhide: %v", err)
	}
	if h.IsHidden(550, domain.MediaTypeMovie) {
		t.Fatal("item still hidden locally after Unhide")
	}
	if len(settings.unhidden) != 1 || settings.unhidden[0] != "550:movie" {
		t.Fatalf("backend unhide calls = %v", settings.unhidden)
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	settings := newFakeSettings()
	h := NewHiddenMedia(settings, nil)
	if err := h.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	h.Invalidate()
	if h.Loaded() {
		t.Fatal("Invalidate must mark the sets stale")
	}
}
