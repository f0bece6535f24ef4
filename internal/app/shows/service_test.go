package shows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

func TestCreateIncrementsUpcomingCountsByOne(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	mem := store.NewMemory()
	mem.SetClock(func() time.Time { return now })

	venue, err := mem.CreateVenue(ctx, &models.Venue{Name: "Venue 1", City: "Austin", State: "TX"})
	require.NoError(t, err)
	filler, err := mem.CreateArtist(ctx, &models.Artist{Name: "Artist 1"})
	require.NoError(t, err)
	artist, err := mem.CreateArtist(ctx, &models.Artist{Name: "Artist 2"})
	require.NoError(t, err)
	require.Equal(t, int64(1), venue.ID)
	require.Equal(t, int64(2), artist.ID)

	// Artist 2 already has three upcoming shows elsewhere.
	other, err := mem.CreateVenue(ctx, &models.Venue{Name: "Other", City: "Austin", State: "TX"})
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		_, err := mem.CreateShow(ctx, &models.Show{VenueID: other.ID, ArtistID: artist.ID, StartTime: now.AddDate(0, 0, i)})
		require.NoError(t, err)
	}
	_, err = mem.CreateShow(ctx, &models.Show{VenueID: other.ID, ArtistID: filler.ID, StartTime: now.AddDate(0, 0, 1)})
	require.NoError(t, err)

	before, err := mem.GetArtist(ctx, artist.ID)
	require.NoError(t, err)
	require.Equal(t, 3, before.UpcomingShowsCount)
	beforeVenue, err := mem.GetVenue(ctx, venue.ID)
	require.NoError(t, err)
	require.Equal(t, 0, beforeVenue.UpcomingShowsCount)

	start := now.AddDate(0, 1, 0)
	show, err := New(mem).Create(ctx, NewShow{VenueID: venue.ID, ArtistID: artist.ID, StartTime: start})
	require.NoError(t, err)
	require.NotZero(t, show.ID)

	afterVenue, err := mem.GetVenue(ctx, venue.ID)
	require.NoError(t, err)
	require.Equal(t, 1, afterVenue.UpcomingShowsCount)
	afterArtist, err := mem.GetArtist(ctx, artist.ID)
	require.NoError(t, err)
	require.Equal(t, 4, afterArtist.UpcomingShowsCount)

	listed, err := mem.ListShowsByVenue(ctx, venue.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, artist.ID, listed[0].ArtistID)
	require.True(t, listed[0].StartTime.Equal(start))
}

func TestCreateRejectsIncompleteShow(t *testing.T) {
	svc := New(store.NewMemory())

	_, err := svc.Create(context.Background(), NewShow{VenueID: 1, ArtistID: 2})
	require.ErrorIs(t, err, ErrInvalidShow)

	_, err = svc.Create(context.Background(), NewShow{ArtistID: 2, StartTime: time.Now()})
	require.ErrorIs(t, err, ErrInvalidShow)
}

func TestCreateUnknownVenueWritesNothing(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	artist, err := mem.CreateArtist(ctx, &models.Artist{Name: "Artist"})
	require.NoError(t, err)

	_, err = New(mem).Create(ctx, NewShow{VenueID: 7, ArtistID: artist.ID, StartTime: time.Now().Add(time.Hour)})
	require.ErrorIs(t, err, store.ErrVenueNotFound)

	shows, err := New(mem).List(ctx)
	require.NoError(t, err)
	require.Empty(t, shows)
}
