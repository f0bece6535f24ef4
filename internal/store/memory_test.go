package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyyur/internal/models"
)

func newClockedMemory(now time.Time) *Memory {
	m := NewMemory()
	m.SetClock(func() time.Time { return now })
	return m
}

func TestMemoryCreateVenueSharesAreaPerCityState(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first, err := m.CreateVenue(ctx, &models.Venue{Name: "Venue A", City: "Austin", State: "TX"})
	if err != nil {
		t.Fatalf("CreateVenue error: %v", err)
	}
	second, err := m.CreateVenue(ctx, &models.Venue{Name: "Venue B", City: "Austin", State: "TX"})
	if err != nil {
		t.Fatalf("CreateVenue error: %v", err)
	}
	third, err := m.CreateVenue(ctx, &models.Venue{Name: "Venue C", City: "Austin", State: "MN"})
	if err != nil {
		t.Fatalf("CreateVenue error: %v", err)
	}

	if first.AreaID != second.AreaID {
		t.Fatalf("expected shared area, got %d and %d", first.AreaID, second.AreaID)
	}
	if third.AreaID == first.AreaID {
		t.Fatalf("expected a separate area for a different state")
	}
	if areas, venues, _, _ := m.Counts(); areas != 2 || venues != 3 {
		t.Fatalf("expected 2 areas and 3 venues, got %d and %d", areas, venues)
	}

	area, err := m.GetArea(ctx, "Austin", "TX")
	if err != nil {
		t.Fatalf("GetArea error: %v", err)
	}
	if area.ID != first.AreaID {
		t.Fatalf("expected area %d, got %d", first.AreaID, area.ID)
	}
	if _, err := m.GetArea(ctx, "Boston", "MA"); !errors.Is(err, ErrAreaNotFound) {
		t.Fatalf("expected ErrAreaNotFound, got %v", err)
	}
}

func TestMemoryShowCountsFollowStartTime(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newClockedMemory(now)

	venue, _ := m.CreateVenue(ctx, &models.Venue{Name: "Hop", City: "SF", State: "CA"})
	artist, _ := m.CreateArtist(ctx, &models.Artist{Name: "Petals"})

	for _, start := range []time.Time{now.Add(-time.Hour), now, now.Add(24 * time.Hour)} {
		if _, err := m.CreateShow(ctx, &models.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: start}); err != nil {
			t.Fatalf("CreateShow error: %v", err)
		}
	}

	gotVenue, _ := m.GetVenue(ctx, venue.ID)
	if gotVenue.PastShowsCount != 1 || gotVenue.UpcomingShowsCount != 2 {
		t.Fatalf("expected 1 past and 2 upcoming, got %d and %d", gotVenue.PastShowsCount, gotVenue.UpcomingShowsCount)
	}
	gotArtist, _ := m.GetArtist(ctx, artist.ID)
	if gotArtist.PastShowsCount != 1 || gotArtist.UpcomingShowsCount != 2 {
		t.Fatalf("expected 1 past and 2 upcoming, got %d and %d", gotArtist.PastShowsCount, gotArtist.UpcomingShowsCount)
	}

	shows, _ := m.ListShows(ctx)
	if len(shows) != 3 || shows[0].Upcoming || !shows[1].Upcoming || !shows[2].Upcoming {
		t.Fatalf("unexpected show ordering or flags: %+v", shows)
	}
}

func TestMemoryCreateShowRequiresVenueAndArtist(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	venue, _ := m.CreateVenue(ctx, &models.Venue{Name: "Hop"})

	if _, err := m.CreateShow(ctx, &models.Show{VenueID: 42, ArtistID: 1}); !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
	if _, err := m.CreateShow(ctx, &models.Show{VenueID: venue.ID, ArtistID: 42}); !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
	if _, _, _, shows := m.Counts(); shows != 0 {
		t.Fatalf("expected no shows, got %d", shows)
	}
}

func TestMemoryDeleteVenueRemovesItsShows(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	venue, _ := m.CreateVenue(ctx, &models.Venue{Name: "Hop"})
	artist, _ := m.CreateArtist(ctx, &models.Artist{Name: "Petals"})
	if _, err := m.CreateShow(ctx, &models.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: time.Now().Add(time.Hour)}); err != nil {
		t.Fatalf("CreateShow error: %v", err)
	}

	if err := m.DeleteVenue(ctx, venue.ID); err != nil {
		t.Fatalf("DeleteVenue error: %v", err)
	}
	if _, err := m.GetVenue(ctx, venue.ID); !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
	got, _ := m.GetArtist(ctx, artist.ID)
	if got.UpcomingShowsCount != 0 {
		t.Fatalf("expected artist count to drop with the venue's shows, got %d", got.UpcomingShowsCount)
	}
	if err := m.DeleteVenue(ctx, venue.ID); !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound on second delete, got %v", err)
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	created, _ := m.CreateArtist(ctx, &models.Artist{Name: "Original"})

	created.Name = "Mutated"

	got, _ := m.GetArtist(ctx, created.ID)
	if got.Name != "Original" {
		t.Fatalf("expected stored artist to be unaffected, got %q", got.Name)
	}
}
